// Package review implements the admin back-office operations over submitted
// applications and the event log.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

// LogContext tags the audit entries written for admin mutations.
const LogContext = "admin"

type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	List(ctx context.Context, filter domain.ApplicationFilter) (domain.ApplicationPage, error)
	Stats(ctx context.Context) (domain.ApplicationStats, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (bool, error)
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status domain.ApplicationStatus) (int, error)
	AppendNote(ctx context.Context, id uuid.UUID, text string) (bool, error)
	AppendEmailLog(ctx context.Context, id uuid.UUID, subject string, template *string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type logQuerier interface {
	Query(ctx context.Context, q domain.LogQuery) ([]domain.LogEntry, error)
}

type eventSink interface {
	Append(ctx context.Context, entry domain.LogEntry)
}

// Service provides admin review operations.
type Service struct {
	apps applicationRepo
	logs logQuerier
	sink eventSink
	cfg  config.AdminConfig
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new review Service.
func NewService(
	log *slog.Logger,
	apps applicationRepo,
	logs logQuerier,
	sink eventSink,
	cfg config.AdminConfig,
) *Service {
	return &Service{
		apps: apps,
		logs: logs,
		sink: sink,
		cfg:  cfg,
		log:  log.With("service", "review"),
		now:  time.Now,
	}
}

// audit records an admin mutation in the event log.
func (s *Service) audit(ctx context.Context, message string, data map[string]any) {
	entry := domain.LogEntry{
		Level:   domain.LogLevelInfo,
		Context: LogContext,
		Message: message,
		Data:    data,
	}
	if admin, ok := ctxutil.AdminFromCtx(ctx); ok {
		entry.UserID = &admin
	}
	if ip := ctxutil.ClientIPFromCtx(ctx); ip != "" {
		entry.IPAddress = &ip
	}
	s.sink.Append(ctx, entry)
}
