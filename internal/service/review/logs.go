package review

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// QueryLogs serves the admin log viewer. Hours restricts results to the
// trailing window; the store applies the default and maximum limits.
func (s *Service) QueryLogs(ctx context.Context, input LogsInput) ([]domain.LogEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	q := domain.LogQuery{
		Context:   input.Context,
		RequestID: input.RequestID,
		Limit:     input.Limit,
	}
	if input.Level != "" {
		lvl := domain.LogLevel(input.Level)
		q.Level = &lvl
	}
	if input.Hours > 0 {
		start := s.now().UTC().Add(-time.Duration(input.Hours) * time.Hour)
		q.StartDate = &start
	}

	entries, err := s.logs.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	return entries, nil
}
