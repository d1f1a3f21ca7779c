// Package intake accepts public application submissions: it validates the
// form, consults the submission guard, and stores the application.
package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/metrics"
)

// LogContext tags the log entries written by the intake pipeline.
const LogContext = "intake"

type submissionGuard interface {
	CountRecentSubmissions(ctx context.Context, identity string, windowHours int) (int, error)
}

type applicationCreator interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
}

type eventSink interface {
	Append(ctx context.Context, entry domain.LogEntry)
}

// Service handles public submissions.
type Service struct {
	guard    submissionGuard
	apps     applicationCreator
	sink     eventSink
	metrics  *metrics.Metrics
	cfg      config.IntakeConfig
	validate *validator.Validate
	log      *slog.Logger
}

// NewService creates a new intake Service.
func NewService(
	log *slog.Logger,
	guard submissionGuard,
	apps applicationCreator,
	sink eventSink,
	m *metrics.Metrics,
	cfg config.IntakeConfig,
) *Service {
	return &Service{
		guard:    guard,
		apps:     apps,
		sink:     sink,
		metrics:  m,
		cfg:      cfg,
		validate: newValidator(),
		log:      log.With("service", "intake"),
	}
}

// Submit validates and stores one application. It returns
// domain.ErrRateLimited when the email already reached the per-window limit,
// and fails closed when the guard cannot be evaluated.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Application, error) {
	input = input.normalize()
	if err := input.validate(s.validate); err != nil {
		s.metrics.IncrementSubmissions(metrics.OutcomeInvalid)
		return nil, err
	}

	count, err := s.guard.CountRecentSubmissions(ctx, input.Email, s.cfg.WindowHours)
	if err != nil {
		s.fail(ctx, input, "submission guard unavailable", err)
		return nil, fmt.Errorf("submit application: %w", err)
	}

	if count >= s.cfg.MaxPerWindow {
		s.metrics.IncrementSubmissions(metrics.OutcomeRateLimited)
		s.sink.Append(ctx, domain.LogEntry{
			Level:     domain.LogLevelWarn,
			Context:   LogContext,
			Message:   "submission rejected by guard",
			Data:      map[string]any{"count": count, "limit": s.cfg.MaxPerWindow, "windowHours": s.cfg.WindowHours},
			IPAddress: &input.IPAddress,
			UserAgent: &input.UserAgent,
		})
		return nil, domain.ErrRateLimited
	}

	app, err := s.apps.Create(ctx, input.toDomain())
	if err != nil {
		s.fail(ctx, input, "application create failed", err)
		return nil, fmt.Errorf("submit application: %w", err)
	}

	s.metrics.IncrementSubmissions(metrics.OutcomeAccepted)
	s.sink.Append(ctx, domain.LogEntry{
		Level:     domain.LogLevelInfo,
		Context:   LogContext,
		Message:   "application submitted",
		Data:      map[string]any{"applicationId": app.ID.String()},
		IPAddress: &input.IPAddress,
		UserAgent: &input.UserAgent,
	})
	s.log.InfoContext(ctx, "application submitted", slog.String("application_id", app.ID.String()))

	return app, nil
}

func (s *Service) fail(ctx context.Context, input SubmitInput, msg string, err error) {
	s.metrics.IncrementSubmissions(metrics.OutcomeError)
	s.log.ErrorContext(ctx, msg, slog.String("error", err.Error()))

	name := "Error"
	if errors.Is(err, domain.ErrPersistence) {
		name = "PersistenceError"
	}
	s.sink.Append(ctx, domain.LogEntry{
		Level:     domain.LogLevelError,
		Context:   LogContext,
		Message:   msg,
		IPAddress: &input.IPAddress,
		UserAgent: &input.UserAgent,
		Error:     domain.NewLogError(name, err),
	})
}
