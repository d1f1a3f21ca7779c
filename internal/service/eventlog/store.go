// Package eventlog is the structured event log every component writes to.
// Appends never fail from the caller's point of view: write errors are
// reported to the process logger and a metric instead.
package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/metrics"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

type logRepo interface {
	Insert(ctx context.Context, entry domain.LogEntry) error
	Query(ctx context.Context, q domain.LogQuery, notBefore time.Time) ([]domain.LogEntry, error)
}

// Store persists log entries asynchronously and serves admin queries.
type Store struct {
	repo    logRepo
	log     *slog.Logger
	metrics *metrics.Metrics
	cfg     config.LogsConfig
	now     func() time.Time

	wg sync.WaitGroup
}

// NewStore creates a new Store.
func NewStore(log *slog.Logger, repo logRepo, m *metrics.Metrics, cfg config.LogsConfig) *Store {
	return &Store{
		repo:    repo,
		log:     log.With("service", "eventlog"),
		metrics: m,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Append records entry in the background. Missing ID, Timestamp and Level
// are filled in, and RequestID is taken from ctx when unset. The write uses
// its own timeout and outlives cancellation of ctx.
func (s *Store) Append(ctx context.Context, entry domain.LogEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	if entry.Level == "" {
		entry.Level = domain.LogLevelInfo
	}
	if entry.RequestID == nil {
		if rid := ctxutil.RequestIDFromCtx(ctx); rid != "" {
			entry.RequestID = &rid
		}
	}

	writeCtx := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.write(writeCtx, entry)
	}()
}

func (s *Store) write(ctx context.Context, entry domain.LogEntry) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.WriteTimeout)
	defer cancel()

	if err := s.repo.Insert(ctx, entry); err != nil {
		s.metrics.IncrementLogWriteFailures()
		s.log.Error("log entry write failed",
			slog.String("entry_id", entry.ID.String()),
			slog.String("level", entry.Level.String()),
			slog.String("context", entry.Context),
			slog.String("message", entry.Message),
			slog.String("error", err.Error()),
		)
		return
	}
	s.metrics.IncrementLogWritten(entry.Level.String())
}

// Close waits for in-flight writes to finish.
func (s *Store) Close() {
	s.wg.Wait()
}

// Query returns matching entries newest first. Limit 0 selects the default
// limit and larger values are capped. Entries past retention are never
// returned, whether or not the purge has removed them yet.
func (s *Store) Query(ctx context.Context, q domain.LogQuery) ([]domain.LogEntry, error) {
	if q.Level != nil && !q.Level.IsValid() {
		return nil, domain.NewValidationError("level", "must be one of debug, info, warn, error")
	}
	if q.Limit < 0 {
		return nil, domain.NewValidationError("limit", "must be non-negative")
	}
	if q.StartDate != nil && q.EndDate != nil && q.EndDate.Before(*q.StartDate) {
		return nil, domain.NewValidationError("endDate", "must not be before startDate")
	}

	q.Limit = s.resolveLimit(q.Limit)
	notBefore := s.now().UTC().Add(-s.cfg.Retention())

	entries, err := s.repo.Query(ctx, q, notBefore)
	if err != nil {
		return nil, fmt.Errorf("query log entries: %w", err)
	}
	return entries, nil
}

func (s *Store) resolveLimit(limit int) int {
	switch {
	case limit == 0:
		return s.cfg.DefaultLimit
	case limit > s.cfg.MaxLimit:
		return s.cfg.MaxLimit
	default:
		return limit
	}
}
