package repository

import (
	"context"

	"event-dashboard-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Count(ctx context.Context) (int64, error)
	ListByTitle(ctx context.Context) ([]models.Event, error)
	ListByDate(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id string) (*models.Event, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Event, error)
	GetByTitle(ctx context.Context, title string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Count(ctx context.Context) (int64, error)
	// CountByEvent returns the number of teams per referenced event id.
	// Teams without an event reference are not counted.
	CountByEvent(ctx context.Context) (map[string]int64, error)
	CountForEvent(ctx context.Context, eventID string) (int64, error)
	// GetRecent returns up to limit teams, newest createdAt first.
	GetRecent(ctx context.Context, limit int) ([]models.Team, error)
	List(ctx context.Context, eventID *string, limit, offset int) ([]models.Team, int64, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
}
