package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueEmail returns an email address no other test has used.
func UniqueEmail() string {
	return "applicant-" + uniqueSuffix() + "@example.com"
}

// ApplicationOption customises a seeded application.
type ApplicationOption func(*domain.Application)

// WithEmail sets the applicant email.
func WithEmail(email string) ApplicationOption {
	return func(a *domain.Application) { a.Email = email }
}

// WithName sets the applicant name.
func WithName(name string) ApplicationOption {
	return func(a *domain.Application) { a.Name = name }
}

// WithStatus sets the workflow status.
func WithStatus(s domain.ApplicationStatus) ApplicationOption {
	return func(a *domain.Application) { a.Status = s }
}

// WithCreatedAt sets both CreatedAt and UpdatedAt.
func WithCreatedAt(t time.Time) ApplicationOption {
	return func(a *domain.Application) {
		a.CreatedAt = t.UTC().Truncate(time.Microsecond)
		a.UpdatedAt = a.CreatedAt
	}
}

// WithProjectType sets the project type.
func WithProjectType(v string) ApplicationOption {
	return func(a *domain.Application) { a.ProjectType = v }
}

// NewApplication returns an unsaved application with plausible field values.
func NewApplication(opts ...ApplicationOption) domain.Application {
	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	app := domain.Application{
		ID:                 uuid.New(),
		ProjectType:        "renovation",
		ProjectDescription: "Kitchen remodel " + suffix,
		Timeline:           "1-3 months",
		TradeType:          "carpentry",
		TradeDescription:   "Cabinets and trim",
		Name:               "Applicant " + suffix,
		Email:              "applicant-" + suffix + "@example.com",
		IPAddress:          "203.0.113.10",
		UserAgent:          "test-agent",
		Status:             domain.ApplicationStatusPending,
		Notes:              []domain.Note{},
		Emails:             []domain.SentEmail{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(&app)
	}
	return app
}

// SeedApplication inserts an application directly, bypassing the repository,
// so tests can control CreatedAt and Status.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, opts ...ApplicationOption) domain.Application {
	t.Helper()
	ctx := context.Background()

	app := NewApplication(opts...)

	_, err := pool.Exec(ctx,
		`INSERT INTO applications (id, project_type, project_description, timeline, trade_type,
		    trade_description, name, email, website, additional_info, ip_address, user_agent,
		    referrer, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		app.ID, app.ProjectType, app.ProjectDescription, app.Timeline, app.TradeType,
		app.TradeDescription, app.Name, app.Email, app.Website, app.AdditionalInfo,
		app.IPAddress, app.UserAgent, app.Referrer, string(app.Status), app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}

	return app
}

// SeedLogEntry inserts a log entry with the given timestamp.
func SeedLogEntry(t *testing.T, pool *pgxpool.Pool, level domain.LogLevel, logContext string, ts time.Time) domain.LogEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.LogEntry{
		ID:        uuid.New(),
		Timestamp: ts.UTC().Truncate(time.Microsecond),
		Level:     level,
		Context:   logContext,
		Message:   "seeded " + uniqueSuffix(),
		Data:      map[string]any{"seed": true},
	}

	data, err := json.Marshal(entry.Data)
	if err != nil {
		t.Fatalf("testhelper: SeedLogEntry marshal: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO logs (id, timestamp, level, context, message, data)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Timestamp, string(entry.Level), entry.Context, entry.Message, data,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLogEntry: %v", err)
	}

	return entry
}
