package handlers

import (
	"net/http"
	"strconv"

	apperrors "event-dashboard-backend/internal/errors"
	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /api/teams (optional event_id parameter)
// @Summary List teams
// @Description Teams newest first with leader contact and event title, optionally filtered by event
// @Tags teams
// @Accept json
// @Produce json
// @Param event_id query string false "Event ID to filter teams"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 500 {object} ErrorResponse "Failed to fetch teams"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var eventID *string
	if id, ok := c.GetQuery("event_id"); ok {
		eventID = &id
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(service.DefaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > service.MaxPageSize {
		pageSize = service.DefaultPageSize
	}

	teams, err := h.teamService.ListTeams(c.Request.Context(), eventID, page, pageSize)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidEventID})
			return
		}
		logger.WithContext(c).WithError(err).Error("Error fetching teams")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgTeamsFailed})
		return
	}

	c.JSON(http.StatusOK, teams)
}
