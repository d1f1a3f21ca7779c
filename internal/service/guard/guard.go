// Package guard implements the sliding-window submission guard used by the
// public intake endpoint.
//
// The guard only counts; the intake pipeline decides what to do with the
// count. The count and the later insert are separate statements, so two
// submissions racing near the threshold may both be admitted.
package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// LogContext tags the diagnostic entries written by the guard.
const LogContext = "submission-guard"

type submissionCounter interface {
	CountSince(ctx context.Context, email string, since time.Time) (int, error)
}

type eventSink interface {
	Append(ctx context.Context, entry domain.LogEntry)
}

// Guard counts recent submissions per identity.
type Guard struct {
	repo submissionCounter
	sink eventSink
	now  func() time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// New creates a new Guard.
func New(repo submissionCounter, sink eventSink, opts ...Option) *Guard {
	g := &Guard{repo: repo, sink: sink, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CountRecentSubmissions returns how many applications identity submitted
// at or after now - windowHours. The lower bound is inclusive, so a window
// of 0 only counts rows stamped exactly now. Query failures are returned.
func (g *Guard) CountRecentSubmissions(ctx context.Context, identity string, windowHours int) (int, error) {
	if windowHours < 0 {
		return 0, domain.NewValidationError("windowHours", "must be non-negative")
	}

	identity = domain.NormalizeEmail(identity)
	since := g.now().UTC().Add(-time.Duration(windowHours) * time.Hour)

	count, err := g.repo.CountSince(ctx, identity, since)
	if err != nil {
		return 0, fmt.Errorf("count recent submissions: %w", err)
	}

	if count > 0 {
		g.sink.Append(ctx, domain.LogEntry{
			Level:   domain.LogLevelWarn,
			Context: LogContext,
			Message: "repeat submission within window",
			Data: map[string]any{
				"identity":    identity,
				"windowHours": windowHours,
				"count":       count,
			},
		})
	}

	return count, nil
}
