package database

import (
	"fmt"
	"time"

	"teamup-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and schema handling. Zero values use the defaults below.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipMigrate leaves the schema untouched, for deployments migrated out of band
	SkipMigrate bool
}

func (o *Options) withDefaults() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.LogLevel == 0 {
		out.LogLevel = logger.Error
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 20
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 10
	}
	if out.ConnMaxLifetime == 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime == 0 {
		out.ConnMaxIdleTime = 10 * time.Minute
	}
	return out
}

// secondary indexes AutoMigrate cannot express from struct tags
var indexes = []string{
	// seniority scan for leadership transfer
	`CREATE INDEX IF NOT EXISTS idx_memberships_team_seniority ON memberships (team_id, join_time, id)`,
	// tag containment search (tags @> '["go"]')
	`CREATE INDEX IF NOT EXISTS idx_users_tags ON users USING GIN (tags jsonb_path_ops)`,
}

// Initialize opens a Postgres connection and, unless disabled, migrates the user/team/membership schema.
// Unique and foreign-key violations surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := opts.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(o.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(o.MaxOpenConns)
		sqlDB.SetMaxIdleConns(o.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)
	}

	if o.SkipMigrate {
		return db, nil
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	// gen_random_uuid() backs BaseModel ids
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Team{}, &models.Membership{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
