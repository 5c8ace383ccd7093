package repository

import (
	"context"
	"errors"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"

	"gorm.io/gorm"
)

// EventRepository handles SQL operations for events
type EventRepository struct {
	db *gorm.DB
}

// Ensure EventRepository implements EventRepositoryInterface
var _ EventRepositoryInterface = (*EventRepository)(nil)

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Count returns the number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListByTitle returns every event ordered by title ascending
func (r *EventRepository) ListByTitle(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("title ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListByDate returns every event ordered by date ascending
func (r *EventRepository) ListByDate(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID retrieves an event by its ID
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// GetByIDs retrieves the events whose IDs are in ids. Unknown IDs are ignored.
func (r *EventRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Event, error) {
	if len(ids) == 0 {
		return []models.Event{}, nil
	}

	var events []models.Event
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByTitle retrieves the oldest event with the given title
func (r *EventRepository) GetByTitle(ctx context.Context, title string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).Where("title = ?", title).Order("created_at ASC").First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}
