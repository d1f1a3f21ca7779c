package review

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// BulkResult reports the outcome of a bulk status change. Modified counts
// rows that actually changed; Skipped counts ids that were unparsable or
// repeated. Missing ids are neither.
type BulkResult struct {
	Modified int `json:"modified"`
	Skipped  int `json:"skipped"`
}

// UpdateStatus changes one application's status. It reports false, not an
// error, when the application is missing or already has that status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error) {
	st, err := parseStatus(status)
	if err != nil {
		return false, err
	}

	modified, err := s.apps.UpdateStatus(ctx, id, st)
	if err != nil {
		return false, fmt.Errorf("update application status: %w", err)
	}

	if modified {
		s.audit(ctx, "application status updated", map[string]any{
			"applicationId": id.String(),
			"status":        st.String(),
		})
	}
	return modified, nil
}

// BulkUpdateStatus applies status to every listed id in one statement.
// The update is not retried and not rolled back: on failure some rows may
// already have changed, and callers re-query to find out.
func (s *Service) BulkUpdateStatus(ctx context.Context, rawIDs []string, status string) (BulkResult, error) {
	st, err := parseStatus(status)
	if err != nil {
		return BulkResult{}, err
	}
	if len(rawIDs) == 0 {
		return BulkResult{}, domain.NewValidationError("ids", "required")
	}
	if len(rawIDs) > MaxBulkIDs {
		return BulkResult{}, domain.NewValidationError("ids", "max "+strconv.Itoa(MaxBulkIDs)+" ids")
	}

	ids, skipped := parseIDs(rawIDs)
	if len(ids) == 0 {
		return BulkResult{Skipped: skipped}, nil
	}

	modified, err := s.apps.BulkUpdateStatus(ctx, ids, st)
	if err != nil {
		s.log.ErrorContext(ctx, "bulk status update failed",
			slog.Int("ids", len(ids)),
			slog.String("status", st.String()),
			slog.String("error", err.Error()),
		)
		return BulkResult{}, fmt.Errorf("bulk update application status: %w", err)
	}

	if modified > 0 {
		s.audit(ctx, "application status bulk updated", map[string]any{
			"requested": len(ids),
			"modified":  modified,
			"status":    st.String(),
		})
	}
	return BulkResult{Modified: modified, Skipped: skipped}, nil
}

// AddNote appends an admin note. Reports false when the application is missing.
func (s *Service) AddNote(ctx context.Context, id uuid.UUID, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, domain.NewValidationError("text", "required")
	}
	if utf8.RuneCountInString(text) > MaxNoteLength {
		return false, domain.NewValidationError("text", "max "+strconv.Itoa(MaxNoteLength)+" characters")
	}

	modified, err := s.apps.AppendNote(ctx, id, text)
	if err != nil {
		return false, fmt.Errorf("append note: %w", err)
	}

	if modified {
		s.audit(ctx, "application note added", map[string]any{
			"applicationId": id.String(),
			"length":        utf8.RuneCountInString(text),
		})
	}
	return modified, nil
}

// RecordEmail appends a sent-email record on behalf of the email dispatcher.
// Reports false when the application is missing.
func (s *Service) RecordEmail(ctx context.Context, id uuid.UUID, subject string, template *string) (bool, error) {
	var errs domain.FieldErrors

	subject = strings.TrimSpace(subject)
	if subject == "" {
		errs.Add("subject", "required")
	}
	if utf8.RuneCountInString(subject) > MaxSubjectLength {
		errs.Add("subject", "max " + strconv.Itoa(MaxSubjectLength) + " characters")
	}
	if template != nil {
		t := strings.TrimSpace(*template)
		switch {
		case t == "":
			template = nil
		case utf8.RuneCountInString(t) > MaxTemplateLen:
			errs.Add("template", "max " + strconv.Itoa(MaxTemplateLen) + " characters")
		default:
			template = &t
		}
	}
	if err := errs.Err(); err != nil {
		return false, err
	}

	modified, err := s.apps.AppendEmailLog(ctx, id, subject, template)
	if err != nil {
		return false, fmt.Errorf("append email log: %w", err)
	}

	if modified {
		data := map[string]any{"applicationId": id.String(), "subject": subject}
		if template != nil {
			data["template"] = *template
		}
		s.audit(ctx, "application email recorded", data)
	}
	return modified, nil
}

// Delete removes an application permanently. Reports false when it was
// already gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.apps.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete application: %w", err)
	}

	if deleted {
		s.audit(ctx, "application deleted", map[string]any{"applicationId": id.String()})
	}
	return deleted, nil
}
