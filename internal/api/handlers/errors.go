package handlers

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Client-facing messages; causes are logged, never returned.
const (
	msgDashboardFailed = "Failed to fetch dashboard statistics"
	msgEventsFailed    = "Failed to fetch events"
	msgEventFailed     = "Failed to fetch event"
	msgEventNotFound   = "Event not found"
	msgTeamsFailed     = "Failed to fetch teams"
	msgInvalidEventID  = "Invalid event ID"
)
