package domain

import (
	"time"

	"github.com/google/uuid"
)

// LogEntry is one structured diagnostic event. Entries are immutable and
// expire after the configured retention period.
type LogEntry struct {
	ID        uuid.UUID      `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Level     LogLevel       `json:"level"`
	Context   string         `json:"context"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	RequestID *string        `json:"requestId,omitempty"`
	UserID    *string        `json:"userId,omitempty"`
	IPAddress *string        `json:"ipAddress,omitempty"`
	UserAgent *string        `json:"userAgent,omitempty"`
	Error     *LogError      `json:"error,omitempty"`
}

// LogError captures an error attached to a log entry.
type LogError struct {
	Name    string  `json:"name"`
	Message string  `json:"message"`
	Stack   *string `json:"stack,omitempty"`
}

// NewLogError builds a LogError from a Go error. Returns nil for a nil error.
func NewLogError(name string, err error) *LogError {
	if err == nil {
		return nil
	}
	return &LogError{Name: name, Message: err.Error()}
}
