package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamup-backend/internal/api/routes"
	"teamup-backend/internal/auth"
	"teamup-backend/internal/cache"
	"teamup-backend/internal/config"
	"teamup-backend/internal/database"
	"teamup-backend/internal/jobs"
	"teamup-backend/internal/lock"
	"teamup-backend/internal/logger"
	"teamup-backend/internal/metrics"
	"teamup-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

//	@title			Team-Up Backend API
//	@version		1.0
//	@description	Backend API for forming teams: team management, membership, and tag-based user matching.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	if cfg.MetricsEnabled {
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			logrus.Fatal("Failed to register metrics:", err)
		}
	}

	// Redis backs the distributed lock and the recommendation cache. Without it the
	// lock is process-local, which is only safe for a single replica.
	var (
		redisClient redis.UniversalClient
		locker      lock.Locker
		recCache    service.Cache
	)
	if cfg.RedisEnabled {
		client, err := cache.NewClient(context.Background(), cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			logrus.Fatal("Failed to connect to Redis:", err)
		}
		defer client.Close()
		redisClient = client
		locker = lock.NewRedisLocker(client)
		recCache = cache.NewRedisCache(client)
	} else {
		logrus.Warn("Redis disabled: using in-process locks and no recommendation cache")
		locker = lock.NewLocalLocker()
	}

	locks := lock.NewAcquirer(locker, lock.Options{
		Prefix:          cfg.LockKeyPrefix,
		InitialInterval: cfg.LockRetryBase(),
		MaxInterval:     cfg.LockRetryMax(),
		MaxWait:         cfg.LockMaxWait(),
	})

	tokens, err := auth.NewTokenService(cfg.JWTSecret, 0)
	if err != nil {
		logrus.Fatal("Failed to initialize token service:", err)
	}

	services := routes.NewServices(db, cfg, locks, recCache)

	if recCache != nil {
		job := jobs.NewPrecacheJob(services.Users, locks, jobs.PrecacheConfig{
			Spec:     cfg.RecommendCacheCron,
			UserIDs:  parseUserIDs(cfg.RecommendWarmUserIDs),
			PageSize: cfg.RecommendWarmPageSize,
		})
		if err := job.Start(); err != nil {
			logrus.Fatal("Failed to schedule recommendation precache:", err)
		}
		defer job.Stop()
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, redisClient, tokens, services)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shut down: %v", err)
	}
}

func parseUserIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			logrus.Warnf("Ignoring invalid warm-up user id %q", s)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
