// Package logentry implements the structured event log repository using
// PostgreSQL. Entries are insert-only; expired rows are filtered out of reads
// and removed in bulk by PurgeBefore.
package logentry

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

const table = "logs"

var columns = []string{
	"id", "timestamp", "level", "context", "message", "data",
	"request_id", "user_id", "ip_address", "user_agent", "error",
}

// Repo provides log entry persistence backed by PostgreSQL.
type Repo struct {
	q       postgres.Querier
	timeout time.Duration
}

// New creates a new log entry repository.
func New(q postgres.Querier, timeout time.Duration) *Repo {
	return &Repo{q: q, timeout: timeout}
}

// Insert writes a single entry.
func (r *Repo) Insert(ctx context.Context, entry domain.LogEntry) error {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	data, err := marshalNullable(entry.Data, len(entry.Data) == 0)
	if err != nil {
		return fmt.Errorf("log_entry %s marshal data: %w", entry.ID, err)
	}
	errJSON, err := marshalNullable(entry.Error, entry.Error == nil)
	if err != nil {
		return fmt.Errorf("log_entry %s marshal error: %w", entry.ID, err)
	}

	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			entry.ID, entry.Timestamp, string(entry.Level), entry.Context, entry.Message, data,
			entry.RequestID, entry.UserID, entry.IPAddress, entry.UserAgent, errJSON,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert log_entry: %w", err)
	}

	if _, err := r.q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "log_entry", entry.ID)
	}
	return nil
}

// Query returns entries matching q, newest first, never older than notBefore.
// The caller resolves the limit; Query applies it as given.
func (r *Repo) Query(ctx context.Context, q domain.LogQuery, notBefore time.Time) ([]domain.LogEntry, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"timestamp": notBefore})

	if q.Level != nil {
		query = query.Where(squirrel.Eq{"level": string(*q.Level)})
	}
	if q.Context != "" {
		query = query.Where(squirrel.Eq{"context": q.Context})
	}
	if q.RequestID != "" {
		query = query.Where(squirrel.Eq{"request_id": q.RequestID})
	}
	if q.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"timestamp": *q.StartDate})
	}
	if q.EndDate != nil {
		query = query.Where(squirrel.LtOrEq{"timestamp": *q.EndDate})
	}

	query = query.OrderBy("timestamp DESC", "id ASC")
	if q.Limit > 0 {
		query = query.Limit(uint64(q.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select log_entries: %w", err)
	}

	var rows []logRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "log_entries", uuid.Nil)
	}

	entries := make([]domain.LogEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

// PurgeBefore deletes every entry with a timestamp strictly before cutoff and
// returns how many were removed.
func (r *Repo) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := postgres.WithTimeout(ctx, r.timeout)
	defer cancel()

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"timestamp": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge log_entries: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "log_entries", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

// marshalNullable encodes v as JSON, or returns nil (SQL NULL) when empty.
func marshalNullable(v any, empty bool) ([]byte, error) {
	if empty {
		return nil, nil
	}
	return json.Marshal(v)
}

// ---------------------------------------------------------------------------
// Mapping helpers: row -> domain
// ---------------------------------------------------------------------------

type logRow struct {
	ID        uuid.UUID        `db:"id"`
	Timestamp time.Time        `db:"timestamp"`
	Level     string           `db:"level"`
	Context   string           `db:"context"`
	Message   string           `db:"message"`
	Data      map[string]any   `db:"data"`
	RequestID *string          `db:"request_id"`
	UserID    *string          `db:"user_id"`
	IPAddress *string          `db:"ip_address"`
	UserAgent *string          `db:"user_agent"`
	Error     *domain.LogError `db:"error"`
}

func (row logRow) toDomain() domain.LogEntry {
	return domain.LogEntry{
		ID:        row.ID,
		Timestamp: row.Timestamp.UTC(),
		Level:     domain.LogLevel(row.Level),
		Context:   row.Context,
		Message:   row.Message,
		Data:      row.Data,
		RequestID: row.RequestID,
		UserID:    row.UserID,
		IPAddress: row.IPAddress,
		UserAgent: row.UserAgent,
		Error:     row.Error,
	}
}
