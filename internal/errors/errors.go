package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// AggregationError is raised when any store read behind the dashboard fails.
// Op names the read that failed; the cause is kept for logging only.
type AggregationError struct {
	Op  string
	Err error
}

func (e *AggregationError) Error() string {
	if e.Op == "" {
		return ErrDashboardStatsFailed.Error()
	}
	return fmt.Sprintf("%s: %s: %v", ErrDashboardStatsFailed.Error(), e.Op, e.Err)
}

// Unwrap exposes the underlying store error
func (e *AggregationError) Unwrap() error {
	return e.Err
}

// Is makes every AggregationError match ErrDashboardStatsFailed
func (e *AggregationError) Is(target error) bool {
	if target == ErrDashboardStatsFailed {
		return true
	}
	_, ok := target.(*AggregationError)
	return ok
}

// Entity Not Found Errors
var (
	ErrEventNotFound = &NotFoundError{Entity: "event"}
	ErrTeamNotFound  = &NotFoundError{Entity: "team"}
)

// Business Logic Errors
var (
	ErrDashboardStatsFailed    = errors.New("failed to fetch dashboard statistics")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidEventID          = &ValidationError{Field: "event_id", Message: "must be a 24 character hex object id"}
)

// Configuration Errors
var (
	ErrUnsupportedDriver = &ConfigurationError{Message: "unsupported database driver"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsAggregation checks if an error is an AggregationError
func IsAggregation(err error) bool {
	var aggErr *AggregationError
	return errors.As(err, &aggErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewAggregationError wraps a failed dashboard read
func NewAggregationError(op string, err error) error {
	return &AggregationError{Op: op, Err: err}
}
