package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// RequestIDKey is the gin context key and log field used for request ids.
const RequestIDKey = "request_id"

type requestIDCtxKey struct{}

// ContextWithRequestID returns a copy of ctx carrying the request id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// RequestIDFromContext returns the request id stored in ctx, if any.
// Both request contexts and *gin.Context values are understood.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDCtxKey{}).(string); ok {
		return id
	}
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// Setup configures the standard logrus logger: JSON output and the given level.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)
	logrus.SetLevel(ParseLevel(level))
}

// ParseLevel maps LOG_LEVEL values to logrus levels, falling back to info.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the request id found in ctx
func WithContext(ctx context.Context) *Logger {
	logger := New()
	if id := RequestIDFromContext(ctx); id != "" {
		return logger.WithField(RequestIDKey, id)
	}
	return logger.WithField(RequestIDKey, "unknown")
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}

// WithError attaches err under the standard "error" field
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
