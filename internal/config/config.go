package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "event-dashboard-backend/internal/errors"

	"github.com/spf13/viper"
)

// Supported DATABASE_DRIVER values
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Store selection
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`

	// Document store configuration
	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`

	// SQL store configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	MetricsEnabled  bool          `mapstructure:"METRICS_ENABLED"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DATABASE_DRIVER", DriverMongo)

	// Document store defaults
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "event_registration")

	// SQL store defaults
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "event_registration")
	v.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", 15*time.Second)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.DatabaseDriver {
	case DriverMongo:
		if config.MongoURI == "" {
			return apperrors.NewConfigurationError("MONGODB_URI is required for the mongo driver")
		}
		if config.MongoDatabase == "" {
			return apperrors.NewConfigurationError("MONGODB_DATABASE is required for the mongo driver")
		}
	case DriverPostgres:
		if config.DatabaseName == "" {
			return apperrors.NewConfigurationError("database name is required")
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedDriver, config.DatabaseDriver)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
