package database

import (
	"fmt"
	"time"

	"event-dashboard-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	db, err := Open(postgres.Open(dsn), opts)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Open connects through any GORM dialector. Tests use it with an in-memory SQLite dialector.
func Open(dialector gorm.Dialector, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the events and teams tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Event{}, &models.Team{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
