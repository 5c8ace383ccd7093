package service

import (
	"context"
	"fmt"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/repository"
)

// Pagination bounds for team listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// TeamService handles read access to teams
type TeamService struct {
	teamRepo  repository.TeamRepositoryInterface
	eventRepo repository.EventRepositoryInterface
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(teamRepo repository.TeamRepositoryInterface, eventRepo repository.EventRepositoryInterface) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		eventRepo: eventRepo,
	}
}

// LeaderResponse is a team leader's contact details
type LeaderResponse struct {
	Name  string `json:"name" example:"Ananya Sen"`
	Email string `json:"email" example:"ananya@example.com"`
	Phone string `json:"phone" example:"+91 98300 00000"`
}

// TeamResponse represents a team as served to clients
type TeamResponse struct {
	ID        string         `json:"_id" example:"67b8a1f29a01ff3f0a3c8611"`
	Name      string         `json:"name" example:"Code Wizards"`
	EventID   *string        `json:"eventId" example:"67b7102b9a01ff3f0a3c85e1"`
	EventName *string        `json:"eventName" example:"HydroBlasters"`
	Leader    LeaderResponse `json:"leader"`
	CreatedAt string         `json:"createdAt" example:"2025-03-01T09:04:00.000Z"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ListTeams returns a page of teams, newest first, optionally for a single event
func (s *TeamService) ListTeams(ctx context.Context, eventID *string, page, pageSize int) (*TeamListResponse, error) {
	if eventID != nil && !models.IsValidID(*eventID) {
		return nil, apperrors.ErrInvalidEventID
	}

	// Set pagination defaults
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	offset := (page - 1) * pageSize

	teams, total, err := s.teamRepo.List(ctx, eventID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	refs := make([]*string, 0, len(teams))
	for i := range teams {
		refs = append(refs, teams[i].EventID)
	}
	titles := map[string]string{}
	if ids := eventRefs(refs); len(ids) > 0 {
		events, err := s.eventRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve event titles: %w", err)
		}
		for _, event := range events {
			titles[event.ID] = event.Title
		}
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		var ref *string
		if team.HasEvent() {
			id := *team.EventID
			ref = &id
		}
		responses[i] = TeamResponse{
			ID:        team.ID,
			Name:      team.Name,
			EventID:   ref,
			EventName: eventNameFor(ref, titles),
			Leader: LeaderResponse{
				Name:  team.Leader.Name,
				Email: team.Leader.Email,
				Phone: team.Leader.Phone,
			},
			CreatedAt: formatTime(team.CreatedAt),
		}
	}

	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
