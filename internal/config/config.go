package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration; when disabled, locks are process-local and nothing is cached
	RedisEnabled  bool   `mapstructure:"REDIS_ENABLED"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Join lock configuration
	LockKeyPrefix   string `mapstructure:"LOCK_KEY_PREFIX"`
	LockLeaseMs     int    `mapstructure:"LOCK_LEASE_MS"`
	LockRetryBaseMs int    `mapstructure:"LOCK_RETRY_BASE_MS"`
	LockRetryMaxMs  int    `mapstructure:"LOCK_RETRY_MAX_MS"`
	LockMaxWaitMs   int    `mapstructure:"LOCK_MAX_WAIT_MS"`

	// Team policy
	MaxTeamsPerOwner int `mapstructure:"MAX_TEAMS_PER_OWNER"`
	MaxJoinedTeams   int `mapstructure:"MAX_JOINED_TEAMS"`

	// Recommendation cache
	RecommendCacheTTLSec  int      `mapstructure:"RECOMMEND_CACHE_TTL_SEC"`
	RecommendCacheCron    string   `mapstructure:"RECOMMEND_CACHE_CRON"`
	RecommendWarmUserIDs  []string `mapstructure:"RECOMMEND_WARM_USER_IDS"`
	RecommendWarmPageSize int      `mapstructure:"RECOMMEND_WARM_PAGE_SIZE"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.RecommendWarmUserIDs = splitList(config.RecommendWarmUserIDs)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "teamup")
	v.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8000"})

	// Redis defaults
	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	// Lock defaults; a lease of 0 holds the lock until it is released
	v.SetDefault("LOCK_KEY_PREFIX", "teamup:")
	v.SetDefault("LOCK_LEASE_MS", 0)
	v.SetDefault("LOCK_RETRY_BASE_MS", 10)
	v.SetDefault("LOCK_RETRY_MAX_MS", 200)
	v.SetDefault("LOCK_MAX_WAIT_MS", 3000)

	v.SetDefault("MAX_TEAMS_PER_OWNER", 5)
	v.SetDefault("MAX_JOINED_TEAMS", 5)

	v.SetDefault("RECOMMEND_CACHE_TTL_SEC", 3600)
	v.SetDefault("RECOMMEND_CACHE_CRON", "0 0 6 * * *")
	v.SetDefault("RECOMMEND_WARM_USER_IDS", []string{})
	v.SetDefault("RECOMMEND_WARM_PAGE_SIZE", 20)

	v.SetDefault("METRICS_ENABLED", true)
}

// splitList flattens comma-separated entries, which is how list values arrive from the environment
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.RedisEnabled && config.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required when REDIS_ENABLED is true")
	}

	if config.LockRetryBaseMs <= 0 || config.LockRetryMaxMs < config.LockRetryBaseMs {
		return fmt.Errorf("lock retry bounds are invalid: base=%dms max=%dms", config.LockRetryBaseMs, config.LockRetryMaxMs)
	}
	if config.LockMaxWaitMs < 0 || config.LockLeaseMs < 0 {
		return fmt.Errorf("lock wait and lease must not be negative")
	}

	if config.MaxTeamsPerOwner < 1 || config.MaxJoinedTeams < 1 {
		return fmt.Errorf("team limits must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LockLease returns the configured lock lease; 0 means no expiry
func (c *Config) LockLease() time.Duration {
	return time.Duration(c.LockLeaseMs) * time.Millisecond
}

// LockMaxWait returns the retry budget for a contended lock
func (c *Config) LockMaxWait() time.Duration {
	return time.Duration(c.LockMaxWaitMs) * time.Millisecond
}

// LockRetryBase returns the first backoff interval
func (c *Config) LockRetryBase() time.Duration {
	return time.Duration(c.LockRetryBaseMs) * time.Millisecond
}

// LockRetryMax returns the largest backoff interval
func (c *Config) LockRetryMax() time.Duration {
	return time.Duration(c.LockRetryMaxMs) * time.Millisecond
}

// RecommendCacheTTL returns how long a cached recommendation page lives
func (c *Config) RecommendCacheTTL() time.Duration {
	return time.Duration(c.RecommendCacheTTLSec) * time.Second
}
