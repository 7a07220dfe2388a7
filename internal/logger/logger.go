package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Context keys read by WithContext. The auth and request id middleware store them
// on the gin context, which resolves string keys through Value.
const (
	UserIDKey    = "user_id"
	RequestIDKey = "request_id"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Setup configures the standard logrus logger: JSON output to stdout, teed to a
// rotating file when file is not empty.
func Setup(level, file string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	var out io.Writer = os.Stdout
	if file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	logrus.SetOutput(out)
	logrus.SetLevel(ParseLevel(level))
}

// ParseLevel maps LOG_LEVEL values to logrus levels, defaulting to info
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithContext creates a logger carrying the authenticated user and the request id
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if userID := contextString(ctx, UserIDKey); userID != "" {
		logger.Entry = logger.Entry.WithField("user", userID)
	} else {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	}
	if requestID := contextString(ctx, RequestIDKey); requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

func contextString(ctx context.Context, key string) string {
	if ctx == nil {
		return ""
	}
	switch value := ctx.Value(key).(type) {
	case string:
		return value
	case interface{ String() string }:
		return value.String()
	}
	return ""
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

// WithError adds an error to the logger
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Entry: l.Entry.WithError(err),
	}
}
