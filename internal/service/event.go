package service

import (
	"context"
	"fmt"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/repository"
)

// EventService handles read access to events
type EventService struct {
	eventRepo repository.EventRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
}

// Ensure EventService implements EventServiceInterface
var _ EventServiceInterface = (*EventService)(nil)

// NewEventService creates a new event service
func NewEventService(eventRepo repository.EventRepositoryInterface, teamRepo repository.TeamRepositoryInterface) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
	}
}

// EventResponse represents an event as served to clients
type EventResponse struct {
	ID                   string `json:"_id" example:"67b7102b9a01ff3f0a3c85e1"`
	Title                string `json:"title" example:"HydroBlasters"`
	Description          string `json:"description"`
	Date                 string `json:"date" example:"2025-04-04T00:00:00.000Z"`
	Venue                string `json:"venue" example:"Jadavpur University"`
	MaxTeamSize          int    `json:"maxTeamSize" example:"4"`
	MinTeamSize          int    `json:"minTeamSize" example:"2"`
	RegistrationDeadline string `json:"registrationDeadline" example:"2025-03-30T00:00:00.000Z"`
}

// EventListResponse wraps the event listing
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// EventDetailResponse is a single event with its registered team count
type EventDetailResponse struct {
	EventResponse
	TeamCount int64 `json:"teamCount" example:"12"`
}

// ListEvents returns every event ordered by date
func (s *EventService) ListEvents(ctx context.Context) (*EventListResponse, error) {
	events, err := s.eventRepo.ListByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = toEventResponse(&events[i])
	}
	return &EventListResponse{Events: responses}, nil
}

// GetEvent returns one event and how many teams registered for it
func (s *EventService) GetEvent(ctx context.Context, id string) (*EventDetailResponse, error) {
	if !models.IsValidID(id) {
		return nil, apperrors.ErrEventNotFound
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	count, err := s.teamRepo.CountForEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams for event: %w", err)
	}

	return &EventDetailResponse{
		EventResponse: toEventResponse(event),
		TeamCount:     count,
	}, nil
}

func toEventResponse(event *models.Event) EventResponse {
	return EventResponse{
		ID:                   event.ID,
		Title:                event.Title,
		Description:          event.Description,
		Date:                 formatTime(event.Date),
		Venue:                event.Venue,
		MaxTeamSize:          event.MaxTeamSize,
		MinTeamSize:          event.MinTeamSize,
		RegistrationDeadline: formatTime(event.RegistrationDeadline),
	}
}
