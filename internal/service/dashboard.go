package service

import (
	"context"

	"event-dashboard-backend/internal/database/models"
	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// RecentRegistrationsLimit is how many of the newest teams the dashboard reports.
const RecentRegistrationsLimit = 5

// DashboardService aggregates event and team statistics for the admin dashboard
type DashboardService struct {
	eventRepo repository.EventRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(eventRepo repository.EventRepositoryInterface, teamRepo repository.TeamRepositoryInterface) *DashboardService {
	return &DashboardService{
		eventRepo: eventRepo,
		teamRepo:  teamRepo,
	}
}

// DashboardStats is the dashboard snapshot
type DashboardStats struct {
	TotalTeams          int64                `json:"totalTeams" example:"4"`
	TotalEvents         int64                `json:"totalEvents" example:"2"`
	EventsList          []EventSummary       `json:"eventsList"`
	RecentRegistrations []RecentRegistration `json:"recentRegistrations"`
}

// EventSummary is one event with its registered team count
type EventSummary struct {
	ID        string `json:"_id" example:"67b7102b9a01ff3f0a3c85e1"`
	Title     string `json:"title" example:"HydroBlasters"`
	TeamCount int64  `json:"teamCount" example:"2"`
}

// RecentRegistration is a recently created team with its event title resolved
type RecentRegistration struct {
	ID        string  `json:"_id" example:"67b8a1f29a01ff3f0a3c8611"`
	Name      string  `json:"name" example:"Code Wizards"`
	CreatedAt string  `json:"createdAt" example:"2025-03-01T09:04:00.000Z"`
	EventID   *string `json:"eventId" example:"67b7102b9a01ff3f0a3c85e1"`
	EventName *string `json:"eventName" example:"HydroBlasters"`
}

// GetStats builds the dashboard snapshot. Counts, the title-ordered event list,
// per-event team counts and the newest teams are read concurrently; titles for
// the newest teams are looked up once those reads finish.
// Any store failure yields an aggregation error and no partial result.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	var (
		totalEvents int64
		totalTeams  int64
		events      []models.Event
		teamCounts  map[string]int64
		recent      []models.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.eventRepo.Count(gctx)
		if err != nil {
			return apperrors.NewAggregationError("count events", err)
		}
		totalEvents = n
		return nil
	})
	g.Go(func() error {
		n, err := s.teamRepo.Count(gctx)
		if err != nil {
			return apperrors.NewAggregationError("count teams", err)
		}
		totalTeams = n
		return nil
	})
	g.Go(func() error {
		list, err := s.eventRepo.ListByTitle(gctx)
		if err != nil {
			return apperrors.NewAggregationError("list events", err)
		}
		events = list
		return nil
	})
	g.Go(func() error {
		counts, err := s.teamRepo.CountByEvent(gctx)
		if err != nil {
			return apperrors.NewAggregationError("count teams by event", err)
		}
		teamCounts = counts
		return nil
	})
	g.Go(func() error {
		teams, err := s.teamRepo.GetRecent(gctx, RecentRegistrationsLimit)
		if err != nil {
			return apperrors.NewAggregationError("recent teams", err)
		}
		recent = teams
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, EventSummary{
			ID:        event.ID,
			Title:     event.Title,
			TeamCount: teamCounts[event.ID],
		})
	}

	registrations, err := s.enrichRecent(ctx, recent)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalTeams:          totalTeams,
		TotalEvents:         totalEvents,
		EventsList:          summaries,
		RecentRegistrations: registrations,
	}, nil
}

// enrichRecent attaches event titles to teams with a single batched lookup
func (s *DashboardService) enrichRecent(ctx context.Context, teams []models.Team) ([]RecentRegistration, error) {
	if len(teams) > RecentRegistrationsLimit {
		teams = teams[:RecentRegistrationsLimit]
	}

	refs := make([]*string, 0, len(teams))
	for i := range teams {
		refs = append(refs, teams[i].EventID)
	}

	titles := map[string]string{}
	if ids := eventRefs(refs); len(ids) > 0 {
		found, err := s.eventRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, apperrors.NewAggregationError("resolve event titles", err)
		}
		for _, event := range found {
			titles[event.ID] = event.Title
		}
	}

	registrations := make([]RecentRegistration, 0, len(teams))
	for _, team := range teams {
		var eventID *string
		if team.HasEvent() {
			id := *team.EventID
			eventID = &id
		}
		registrations = append(registrations, RecentRegistration{
			ID:        team.ID,
			Name:      team.Name,
			CreatedAt: formatTime(team.CreatedAt),
			EventID:   eventID,
			EventName: eventNameFor(eventID, titles),
		})
	}
	return registrations, nil
}
