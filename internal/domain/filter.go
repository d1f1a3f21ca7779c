package domain

import "time"

// ApplicationFilter describes one page of the admin application list.
// Status nil means "all". Page is 1-based; PageSize must be positive
// (callers validate it before reaching the repository).
type ApplicationFilter struct {
	Status    *ApplicationStatus
	Search    string
	SortBy    SortField
	SortOrder SortOrder
	Page      int
	PageSize  int
}

// ApplicationPage is a page of applications with totals computed from the
// filtered predicate before pagination.
type ApplicationPage struct {
	Items       []Application `json:"items"`
	TotalCount  int           `json:"totalCount"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// LogQuery filters the stored event log. Zero values mean "no filter";
// Limit 0 means the default limit.
type LogQuery struct {
	Level     *LogLevel
	Context   string
	RequestID string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}
