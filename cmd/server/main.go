package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"event-dashboard-backend/internal/api/routes"
	"event-dashboard-backend/internal/config"
	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "event-dashboard-backend/docs" // This is needed for swag
)

//	@title			Event Dashboard Backend API
//	@version		1.0
//	@description	Read-only statistics API for the event registration admin dashboard: totals, per-event team counts and recent registrations.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect the configured store
	repos, err := repository.Connect(ctx, cfg)
	if err != nil {
		logrus.WithField("driver", cfg.DatabaseDriver).Fatal("Failed to connect to store: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(repos, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("driver", repos.Driver).Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
	if err := repos.Close(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Failed to close store")
	}
}
