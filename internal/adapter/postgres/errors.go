package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
// pgx.ErrNoRows becomes domain.ErrNotFound. Timeouts, cancellations, and
// every other driver or server error become domain.ErrPersistence; the
// original cause stays in the chain for errors.Is checks.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != uuid.Nil {
		label = fmt.Sprintf("%s %s", entity, id)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", label, domain.ErrPersistence, err)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514": // check_violation
			return fmt.Errorf("%s: %w: %s", label, domain.ErrPersistence, pgErr.ConstraintName)
		case "22P02": // invalid_text_representation
			return fmt.Errorf("%s: %w: %w", label, domain.ErrPersistence, err)
		}
	}

	return fmt.Errorf("%s: %w: %w", label, domain.ErrPersistence, err)
}

// EscapeLike escapes LIKE/ILIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
