package domain

import (
	"time"

	"github.com/google/uuid"
)

// Application is one trade-intake submission plus its review workflow state.
// Submission fields are written once at creation; only Status, Notes, Emails
// and UpdatedAt change afterwards.
type Application struct {
	ID uuid.UUID `json:"id"`

	ProjectType        string  `json:"projectType"`
	ProjectDescription string  `json:"projectDescription"`
	Timeline           string  `json:"timeline"`
	TradeType          string  `json:"tradeType"`
	TradeDescription   string  `json:"tradeDescription"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Website            *string `json:"website,omitempty"`
	AdditionalInfo     *string `json:"additionalInfo,omitempty"`
	IPAddress          string  `json:"ipAddress"`
	UserAgent          string  `json:"userAgent"`
	Referrer           *string `json:"referrer,omitempty"`

	Status ApplicationStatus `json:"status"`
	Notes  []Note            `json:"notes"`
	Emails []SentEmail       `json:"emails"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Note is an admin remark appended to an application. Notes are never edited.
type Note struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// SentEmail records an outbound email that the dispatcher sent for an application.
type SentEmail struct {
	Subject  string    `json:"subject"`
	Template *string   `json:"template,omitempty"`
	SentAt   time.Time `json:"sentAt"`
}

// ApplicationStats holds aggregate counts by status. The counts are taken
// independently, so Total may differ from the sum while rows change status.
type ApplicationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewing int `json:"reviewing"`
	Accepted  int `json:"accepted"`
	Rejected  int `json:"rejected"`
}
