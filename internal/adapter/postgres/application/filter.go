package application

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// searchColumns are matched case-insensitively against the search term.
var searchColumns = []string{"name", "email", "project_type", "trade_type", "project_description"}

// sortColumns maps API sort fields to columns.
var sortColumns = map[domain.SortField]string{
	domain.SortFieldCreatedAt: "created_at",
	domain.SortFieldName:      "name",
	domain.SortFieldEmail:     "email",
	domain.SortFieldStatus:    "status",
}

// List returns one page of applications matching the filter together with
// totals computed over the whole filtered set. A page beyond the last one
// yields no items but accurate totals.
func (r *Repo) List(ctx context.Context, filter domain.ApplicationFilter) (domain.ApplicationPage, error) {
	if filter.PageSize <= 0 {
		return domain.ApplicationPage{}, fmt.Errorf("list applications: page size must be positive: %w", domain.ErrValidation)
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	where := buildWhere(filter)

	total, err := r.count(ctx, postgres.Builder().Select("count(*)").From(table).Where(where))
	if err != nil {
		return domain.ApplicationPage{}, err
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(buildOrderBy(filter.SortBy, filter.SortOrder)...).
		Limit(uint64(filter.PageSize)).
		Offset(uint64((page - 1) * filter.PageSize))

	items, err := r.selectApplications(ctx, query)
	if err != nil {
		return domain.ApplicationPage{}, err
	}

	return domain.ApplicationPage{
		Items:       items,
		TotalCount:  total,
		TotalPages:  totalPages(total, filter.PageSize),
		CurrentPage: page,
	}, nil
}

// Stats counts all applications and each status. The five counts run
// concurrently and are not taken from a single snapshot.
func (r *Repo) Stats(ctx context.Context) (domain.ApplicationStats, error) {
	var stats domain.ApplicationStats

	targets := []struct {
		status *domain.ApplicationStatus
		dst    *int
	}{
		{nil, &stats.Total},
		{statusPtr(domain.ApplicationStatusPending), &stats.Pending},
		{statusPtr(domain.ApplicationStatusReviewing), &stats.Reviewing},
		{statusPtr(domain.ApplicationStatusAccepted), &stats.Accepted},
		{statusPtr(domain.ApplicationStatusRejected), &stats.Rejected},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			query := postgres.Builder().Select("count(*)").From(table)
			if target.status != nil {
				query = query.Where(squirrel.Eq{"status": string(*target.status)})
			}
			n, err := r.count(gctx, query)
			if err != nil {
				return err
			}
			*target.dst = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ApplicationStats{}, err
	}
	return stats, nil
}

func (r *Repo) selectApplications(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Application, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select applications: %w", err)
	}

	var rows []applicationRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "applications", uuid.Nil)
	}

	items := make([]domain.Application, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

func buildWhere(filter domain.ApplicationFilter) squirrel.And {
	where := squirrel.And{}

	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}

	if search := domain.NormalizeSearch(filter.Search); search != "" {
		pattern := "%" + postgres.EscapeLike(search) + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, col := range searchColumns {
			or = append(or, squirrel.ILike{col: pattern})
		}
		where = append(where, or)
	}

	return where
}

// buildOrderBy returns the ORDER BY terms. Ties on the primary key fall back
// to newest first, and id makes the order total so pages never overlap.
func buildOrderBy(field domain.SortField, order domain.SortOrder) []string {
	col, ok := sortColumns[field]
	if !ok {
		col = "created_at"
	}

	dir := "DESC"
	if order == domain.SortOrderAsc {
		dir = "ASC"
	}

	terms := []string{col + " " + dir}
	if col != "created_at" {
		terms = append(terms, "created_at DESC")
	}
	return append(terms, "id ASC")
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func statusPtr(s domain.ApplicationStatus) *domain.ApplicationStatus {
	return &s
}
