package routes

import (
	"teamup-backend/internal/api/handlers"
	"teamup-backend/internal/api/middleware"
	"teamup-backend/internal/auth"
	"teamup-backend/internal/config"
	"teamup-backend/internal/repository"
	"teamup-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Services groups the application services shared by the HTTP layer and background jobs
type Services struct {
	Teams       service.TeamServiceInterface
	Memberships service.MembershipServiceInterface
	Users       service.UserServiceInterface
}

// NewServices wires repositories and services. cache may be nil, in which case
// recommendations are computed on every request.
func NewServices(db *gorm.DB, cfg *config.Config, locks service.LockAcquirer, cache service.Cache) *Services {
	store := repository.NewGormStore(db)
	validate := validator.New()

	limits := service.Limits{
		MaxTeamsPerOwner: cfg.MaxTeamsPerOwner,
		MaxJoinedTeams:   cfg.MaxJoinedTeams,
	}
	lockSettings := service.LockSettings{
		Wait:  cfg.LockMaxWait(),
		Lease: cfg.LockLease(),
	}

	return &Services{
		Teams:       service.NewTeamService(store, locks, validate, limits, lockSettings),
		Memberships: service.NewMembershipService(store, locks, limits, lockSettings),
		Users:       service.NewUserService(store.Users(), cache, cfg.RecommendCacheTTL()),
	}
}

// SetupRoutes configures all the routes for the application. redisClient may be nil.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient redis.UniversalClient, tokens *auth.TokenService, services *Services) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	teamHandler := handlers.NewTeamHandler(services.Teams, services.Memberships)
	userHandler := handlers.NewUserHandler(services.Users)
	authMiddleware := auth.NewAuthMiddleware(tokens)

	// Health check routes (no auth)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/mine/created", teamHandler.ListMyCreatedTeams)
			teams.GET("/mine/joined", teamHandler.ListMyJoinedTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/join", teamHandler.JoinTeam)
			teams.POST("/:id/quit", teamHandler.QuitTeam)
		}

		users := v1.Group("/users")
		{
			users.GET("/current", userHandler.GetCurrentUser)
			users.GET("/search", userHandler.SearchUsers)
			users.GET("/match", userHandler.MatchUsers)
			users.GET("/recommend", userHandler.RecommendUsers)
		}
	}

	return router
}
