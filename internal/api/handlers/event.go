package handlers

import (
	"net/http"

	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventHandler handles HTTP requests for events
type EventHandler struct {
	eventService service.EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService service.EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents handles GET /api/events
// @Summary List events
// @Description All events sorted by date
// @Tags events
// @Accept json
// @Produce json
// @Success 200 {object} service.EventListResponse "Successfully retrieved events"
// @Failure 500 {object} ErrorResponse "Failed to fetch events"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		logger.WithContext(c).WithError(err).Error("Error fetching events")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgEventsFailed})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/events/:id
// @Summary Get event by ID
// @Description A single event with the number of teams registered for it
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (24-character hex)"
// @Success 200 {object} service.EventDetailResponse "Successfully retrieved event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Failed to fetch event"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: msgEventNotFound})
			return
		}
		logger.WithContext(c).WithError(err).WithField("event_id", c.Param("id")).Error("Error fetching event")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgEventFailed})
		return
	}

	c.JSON(http.StatusOK, event)
}
