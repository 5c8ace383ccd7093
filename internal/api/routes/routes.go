package routes

import (
	"event-dashboard-backend/internal/api/handlers"
	"event-dashboard-backend/internal/api/middleware"
	"event-dashboard-backend/internal/config"
	"event-dashboard-backend/internal/repository"
	"event-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(repos *repository.Repositories, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	// Initialize services
	dashboardService := service.NewDashboardService(repos.Events, repos.Teams)
	eventService := service.NewEventService(repos.Events, repos.Teams)
	teamService := service.NewTeamService(repos.Teams, repos.Events)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(repos, repos.Driver)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	eventHandler := handlers.NewEventHandler(eventService)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := router.Group("/api")
	{
		api.GET("/dashboard", dashboardHandler.GetStats)

		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)
		}

		api.GET("/teams", teamHandler.ListTeams)
	}

	return router
}
