// Package application implements the Application repository using PostgreSQL.
// Notes and sent-email records live in JSONB array columns and are only ever
// appended to, each append being a single UPDATE statement.
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tradedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

const table = "applications"

var columns = []string{
	"id", "project_type", "project_description", "timeline", "trade_type",
	"trade_description", "name", "email", "website", "additional_info",
	"ip_address", "user_agent", "referrer", "status", "notes", "emails",
	"created_at", "updated_at",
}

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	q       postgres.Querier
	timeout time.Duration
	now     func() time.Time
}

// New creates a new application repository. timeout bounds every call;
// zero means postgres.DefaultQueryTimeout.
func New(q postgres.Querier, timeout time.Duration) *Repo {
	return &Repo{q: q, timeout: timeout, now: postgres.Now}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores a new application in status pending with CreatedAt and
// UpdatedAt set to the current time. A nil ID is replaced by a fresh UUID.
func (r *Repo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	created := *app
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	now := r.now()
	created.Status = domain.ApplicationStatusPending
	created.Notes = []domain.Note{}
	created.Emails = []domain.SentEmail{}
	created.CreatedAt = now
	created.UpdatedAt = now

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			created.ID, created.ProjectType, created.ProjectDescription, created.Timeline,
			created.TradeType, created.TradeDescription, created.Name, created.Email,
			created.Website, created.AdditionalInfo, created.IPAddress, created.UserAgent,
			created.Referrer, string(created.Status), []byte("[]"), []byte("[]"),
			created.CreatedAt, created.UpdatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert application: %w", err)
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", created.ID)
	}

	return &created, nil
}

// UpdateStatus sets the status of an application. It reports false when the
// application does not exist or already has that status.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) (bool, error) {
	query := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", r.touch()).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": string(status)})

	n, err := r.exec(ctx, query, "application", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// BulkUpdateStatus sets the status of every listed application in a single
// statement and returns how many rows actually changed. Missing ids and
// applications already in the target status are skipped.
func (r *Repo) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status domain.ApplicationStatus) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("updated_at", r.touch()).
		Where(squirrel.Expr("id = ANY(?::uuid[])", ids)).
		Where(squirrel.NotEq{"status": string(status)})

	n, err := r.exec(ctx, query, "applications", uuid.Nil)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// AppendNote appends a note stamped with the current time. Existing notes are
// never rewritten. Reports false when the application does not exist.
func (r *Repo) AppendNote(ctx context.Context, id uuid.UUID, text string) (bool, error) {
	note := domain.Note{Text: text, CreatedAt: r.now()}
	return r.appendJSON(ctx, id, "notes", note)
}

// AppendEmailLog appends a sent-email record stamped with the current time.
// Reports false when the application does not exist.
func (r *Repo) AppendEmailLog(ctx context.Context, id uuid.UUID, subject string, template *string) (bool, error) {
	email := domain.SentEmail{Subject: subject, Template: template, SentAt: r.now()}
	return r.appendJSON(ctx, id, "emails", email)
}

// Delete removes an application permanently. Reports false when it did not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id})

	n, err := r.exec(ctx, query, "application", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the application or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select application: %w", err)
	}

	var row applicationRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	app := row.toDomain()
	return &app, nil
}

// CountSince counts applications submitted by email at or after since.
// The email comparison is case-insensitive.
func (r *Repo) CountSince(ctx context.Context, email string, since time.Time) (int, error) {
	query := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Where(squirrel.GtOrEq{"created_at": since})

	return r.count(ctx, query)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// touch keeps updated_at monotonic even if the wall clock steps backwards.
func (r *Repo) touch() squirrel.Sqlizer {
	return squirrel.Expr("GREATEST(updated_at, ?)", r.now())
}

func (r *Repo) appendJSON(ctx context.Context, id uuid.UUID, column string, item any) (bool, error) {
	payload, err := json.Marshal([]any{item})
	if err != nil {
		return false, fmt.Errorf("application %s marshal %s: %w", id, column, err)
	}

	query := postgres.Builder().
		Update(table).
		Set(column, squirrel.Expr(column+" || ?::jsonb", payload)).
		Set("updated_at", r.touch()).
		Where(squirrel.Eq{"id": id})

	n, err := r.exec(ctx, query, "application", id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) exec(ctx context.Context, query squirrel.Sqlizer, entity string, id uuid.UUID) (int64, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s statement: %w", entity, err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, id)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) count(ctx context.Context, query squirrel.SelectBuilder) (int, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count applications: %w", err)
	}

	var n int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "applications", uuid.Nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

type applicationRow struct {
	ID                 uuid.UUID          `db:"id"`
	ProjectType        string             `db:"project_type"`
	ProjectDescription string             `db:"project_description"`
	Timeline           string             `db:"timeline"`
	TradeType          string             `db:"trade_type"`
	TradeDescription   string             `db:"trade_description"`
	Name               string             `db:"name"`
	Email              string             `db:"email"`
	Website            *string            `db:"website"`
	AdditionalInfo     *string            `db:"additional_info"`
	IPAddress          string             `db:"ip_address"`
	UserAgent          string             `db:"user_agent"`
	Referrer           *string            `db:"referrer"`
	Status             string             `db:"status"`
	Notes              []domain.Note      `db:"notes"`
	Emails             []domain.SentEmail `db:"emails"`
	CreatedAt          time.Time          `db:"created_at"`
	UpdatedAt          time.Time          `db:"updated_at"`
}

func (row applicationRow) toDomain() domain.Application {
	notes := row.Notes
	if notes == nil {
		notes = []domain.Note{}
	}
	emails := row.Emails
	if emails == nil {
		emails = []domain.SentEmail{}
	}

	return domain.Application{
		ID:                 row.ID,
		ProjectType:        row.ProjectType,
		ProjectDescription: row.ProjectDescription,
		Timeline:           row.Timeline,
		TradeType:          row.TradeType,
		TradeDescription:   row.TradeDescription,
		Name:               row.Name,
		Email:              row.Email,
		Website:            row.Website,
		AdditionalInfo:     row.AdditionalInfo,
		IPAddress:          row.IPAddress,
		UserAgent:          row.UserAgent,
		Referrer:           row.Referrer,
		Status:             domain.ApplicationStatus(row.Status),
		Notes:              notes,
		Emails:             emails,
		CreatedAt:          row.CreatedAt.UTC(),
		UpdatedAt:          row.UpdatedAt.UTC(),
	}
}
