package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DashboardServiceInterface defines the interface for dashboard service
type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}

// EventServiceInterface defines the interface for event service
type EventServiceInterface interface {
	ListEvents(ctx context.Context) (*EventListResponse, error)
	GetEvent(ctx context.Context, id string) (*EventDetailResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListTeams(ctx context.Context, eventID *string, page, pageSize int) (*TeamListResponse, error)
}
