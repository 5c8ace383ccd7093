package handlers

import (
	"net/http"

	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/metrics"
	"event-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the admin dashboard
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles GET /api/dashboard
// @Summary Dashboard statistics
// @Description Total events and teams, per-event team counts sorted by title, and the five most recent registrations
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} service.DashboardStats "Dashboard snapshot"
// @Failure 500 {object} ErrorResponse "Failed to fetch dashboard statistics"
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		metrics.DashboardAggregations.WithLabelValues(metrics.ResultFailure).Inc()
		logger.WithContext(c).WithError(err).Error("Error fetching dashboard stats")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgDashboardFailed})
		return
	}

	metrics.DashboardAggregations.WithLabelValues(metrics.ResultSuccess).Inc()
	c.JSON(http.StatusOK, stats)
}
