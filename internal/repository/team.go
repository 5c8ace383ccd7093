package repository

import (
	"context"
	"errors"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"

	"gorm.io/gorm"
)

// TeamRepository handles SQL operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type eventTeamCount struct {
	EventID   string
	TeamCount int64
}

// Count returns the number of teams
func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Team{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountByEvent groups teams by event reference
func (r *TeamRepository) CountByEvent(ctx context.Context) (map[string]int64, error) {
	var rows []eventTeamCount
	err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Select("event_id, COUNT(*) AS team_count").
		Where("event_id IS NOT NULL AND event_id <> ''").
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.EventID] = row.TeamCount
	}
	return counts, nil
}

// CountForEvent returns the number of teams registered for one event
func (r *TeamRepository) CountForEvent(ctx context.Context, eventID string) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Team{}).Where("event_id = ?", eventID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetRecent returns the most recently created teams
func (r *TeamRepository) GetRecent(ctx context.Context, limit int) ([]models.Team, error) {
	var teams []models.Team
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// List returns a page of teams, newest first, optionally restricted to one event
func (r *TeamRepository) List(ctx context.Context, eventID *string, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	byEvent := func(db *gorm.DB) *gorm.DB {
		if eventID != nil {
			return db.Where("event_id = ?", *eventID)
		}
		return db
	}

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Team{}).Scopes(byEvent).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Fetch page
	if err := r.db.WithContext(ctx).Scopes(byEvent).Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&teams).Error; err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetByID retrieves a team by its ID
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Create inserts a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}
