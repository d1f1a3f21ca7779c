package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// List returns one page of applications.
func (s *Service) List(ctx context.Context, input ListInput) (domain.ApplicationPage, error) {
	if err := input.Validate(s.cfg); err != nil {
		return domain.ApplicationPage{}, err
	}

	page, err := s.apps.List(ctx, input.toFilter())
	if err != nil {
		return domain.ApplicationPage{}, fmt.Errorf("list applications: %w", err)
	}
	return page, nil
}

// Stats returns application counts by status.
func (s *Service) Stats(ctx context.Context) (domain.ApplicationStats, error) {
	stats, err := s.apps.Stats(ctx)
	if err != nil {
		return domain.ApplicationStats{}, fmt.Errorf("application stats: %w", err)
	}
	return stats, nil
}

// Get returns a single application or domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}
