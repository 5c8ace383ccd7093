package repository

import (
	"context"
	"fmt"

	"event-dashboard-backend/internal/config"
	"event-dashboard-backend/internal/database"
	apperrors "event-dashboard-backend/internal/errors"
)

// Connect opens the store selected by cfg.DatabaseDriver and wires its repositories.
func Connect(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.DatabaseDriver {
	case config.DriverMongo:
		db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, nil)
		if err != nil {
			return nil, err
		}
		return NewMongoRepositories(cfg.DatabaseDriver, db), nil
	case config.DriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, err
		}
		return NewGormRepositories(cfg.DatabaseDriver, db), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDriver, cfg.DatabaseDriver)
	}
}
