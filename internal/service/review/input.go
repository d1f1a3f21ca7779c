package review

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/config"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

const (
	// StatusAll disables the status filter.
	StatusAll = "all"

	MaxNoteLength    = 5000
	MaxSubjectLength = 500
	MaxTemplateLen   = 100
	MaxSearchLength  = 200
	MaxBulkIDs       = 500
	MaxLogHours      = 90 * 24
)

// ListInput holds the parameters for listing applications.
type ListInput struct {
	Status    string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate(cfg config.AdminConfig) error {
	var errs domain.FieldErrors

	if i.Status != "" && i.Status != StatusAll && !domain.ApplicationStatus(i.Status).IsValid() {
		errs.Add("status", "must be one of all, pending, reviewing, accepted, rejected")
	}
	if utf8.RuneCountInString(i.Search) > MaxSearchLength {
		errs.Add("search", "max " + strconv.Itoa(MaxSearchLength) + " characters")
	}
	if i.SortBy != "" && !domain.SortField(i.SortBy).IsValid() {
		errs.Add("sortBy", "must be one of createdAt, name, email, status")
	}
	if i.SortOrder != "" && !domain.SortOrder(i.SortOrder).IsValid() {
		errs.Add("sortOrder", "must be asc or desc")
	}
	if i.Page < 1 {
		errs.Add("page", "must be at least 1")
	}
	if !cfg.IsPageSizeAllowed(i.PageSize) {
		errs.Add("pageSize", "must be one of " + cfg.PageSizesRaw)
	}

	return errs.Err()
}

func (i ListInput) toFilter() domain.ApplicationFilter {
	f := domain.ApplicationFilter{
		Search:    domain.NormalizeSearch(i.Search),
		SortBy:    domain.SortFieldCreatedAt,
		SortOrder: domain.SortOrderDesc,
		Page:      i.Page,
		PageSize:  i.PageSize,
	}
	if i.Status != "" && i.Status != StatusAll {
		st := domain.ApplicationStatus(i.Status)
		f.Status = &st
	}
	if i.SortBy != "" {
		f.SortBy = domain.SortField(i.SortBy)
	}
	if i.SortOrder != "" {
		f.SortOrder = domain.SortOrder(i.SortOrder)
	}
	return f
}

// LogsInput holds the parameters for the admin log viewer.
type LogsInput struct {
	Level     string
	Context   string
	RequestID string
	Hours     int // 0 means no time filter beyond retention
	Limit     int // 0 means the store default
}

// Validate checks all fields and collects all errors.
func (i LogsInput) Validate() error {
	var errs domain.FieldErrors

	if i.Level != "" && !domain.LogLevel(i.Level).IsValid() {
		errs.Add("level", "must be one of debug, info, warn, error")
	}
	if i.Hours < 0 || i.Hours > MaxLogHours {
		errs.Add("hours", "must be between 0 and " + strconv.Itoa(MaxLogHours))
	}
	if i.Limit < 0 {
		errs.Add("limit", "must be non-negative")
	}

	return errs.Err()
}

// parseStatus validates a target status for mutations ("all" is not allowed).
func parseStatus(raw string) (domain.ApplicationStatus, error) {
	st := domain.ApplicationStatus(raw)
	if !st.IsValid() {
		return "", domain.NewValidationError("status", "must be one of pending, reviewing, accepted, rejected")
	}
	return st, nil
}

// parseIDs parses ids, dropping unparsable and duplicate values while
// keeping first-seen order. It returns the parsed ids and how many inputs
// were skipped.
func parseIDs(raw []string) ([]uuid.UUID, int) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil || id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, len(raw) - len(ids)
}
