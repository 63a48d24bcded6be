package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"teamup-backend/internal/config"
	"teamup-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "teamup"
	pgPassword = "teamup"
	pgDatabase = "teamup_test"
)

// Postgres is started once per test binary and shared by every suite in it
var (
	pgOnce     sync.Once
	pgInitErr  error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
	pgConfig   *config.Config
)

// tables are truncated between tests, children first
var tables = []string{"memberships", "teams", "users"}

// BaseTestSuite gives integration suites a migrated database and matching config
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and returns a handle to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	pgOnce.Do(func() { pgInitErr = startPostgres() })
	if pgInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", pgInitErr)
	}
	return &BaseTestSuite{DB: pgDB, Config: pgConfig}
}

// RunWithTestSuite runs testFunc against a clean database
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	s.CleanTestDB()
	defer s.TeardownTestSuite()
	testFunc(s)
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans data; the container outlives individual suites
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every application table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range tables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" RESTART IDENTITY CASCADE`)
		}
	}
}

// CleanupSharedContainer purges the Postgres and Redis containers. Call it from TestMain
// once all tests of the package have run.
func CleanupSharedContainer() {
	cleanupSharedRedis()

	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool != nil && pgResource != nil {
		log.Printf("Purging Docker container: %s", pgResource.Container.Name)
		if err := pgPool.Purge(pgResource); err != nil {
			log.Printf("WARN: could not purge postgres resource: %v", err)
		}
		pgResource = nil
		pgPool = nil
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		// a plain database/sql ping is cheaper than a failed gorm migration
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
		if err != nil {
			return err
		}
		pgDB = db
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	pgConfig = &config.Config{
		Environment:      "test",
		Port:             "8080",
		LogLevel:         "debug",
		DatabaseURL:      dsn,
		DatabaseName:     pgDatabase,
		MaxTeamsPerOwner: 5,
		MaxJoinedTeams:   5,
	}

	log.Printf("Shared Postgres ready on port %s", port)
	return nil
}
