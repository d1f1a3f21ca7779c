package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/service/review"
)

type reviewService interface {
	List(ctx context.Context, input review.ListInput) (domain.ApplicationPage, error)
	Stats(ctx context.Context) (domain.ApplicationStats, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
	BulkUpdateStatus(ctx context.Context, ids []string, status string) (review.BulkResult, error)
	AddNote(ctx context.Context, id uuid.UUID, text string) (bool, error)
	RecordEmail(ctx context.Context, id uuid.UUID, subject string, template *string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	QueryLogs(ctx context.Context, input review.LogsInput) ([]domain.LogEntry, error)
}

// AdminHandler serves the back-office REST endpoints. Routes are expected
// to sit behind middleware.RequireAdmin.
type AdminHandler struct {
	review          reviewService
	defaultPageSize int
	log             *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc reviewService, defaultPageSize int, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		review:          svc,
		defaultPageSize: defaultPageSize,
		log:             logger.With("handler", "admin"),
	}
}

// Register mounts the admin routes on r.
func (h *AdminHandler) Register(r chi.Router) {
	r.Route("/applications", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/stats", h.Stats)
		r.Post("/bulk-status", h.BulkUpdateStatus)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}/status", h.UpdateStatus)
		r.Post("/{id}/notes", h.AddNote)
		r.Post("/{id}/emails", h.RecordEmail)
		r.Delete("/{id}", h.Delete)
	})
	r.Get("/logs", h.Logs)
}

// List returns one page of applications.
// GET /api/admin/applications?status=&search=&sortBy=&sortOrder=&page=&pageSize=
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := queryInt(r, "page", 1)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	pageSize, err := queryInt(r, "pageSize", h.defaultPageSize)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.review.List(r.Context(), review.ListInput{
		Status:    q.Get("status"),
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if result.Items == nil {
		result.Items = []domain.Application{}
	}
	writeJSON(w, http.StatusOK, result)
}

// Stats returns application counts by status.
// GET /api/admin/applications/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.review.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get returns one application.
// GET /api/admin/applications/{id}
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.review.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus changes one application's status.
// PATCH /api/admin/applications/{id}/status
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modified, err := h.review.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modifiedResponse{Modified: modified})
}

type bulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// BulkUpdateStatus changes the status of many applications at once.
// POST /api/admin/applications/bulk-status
func (h *AdminHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.review.BulkUpdateStatus(r.Context(), req.IDs, req.Status)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type addNoteRequest struct {
	Text string `json:"text"`
}

// AddNote appends an admin note.
// POST /api/admin/applications/{id}/notes
func (h *AdminHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modified, err := h.review.AddNote(r.Context(), id, req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modifiedResponse{Modified: modified})
}

type recordEmailRequest struct {
	Subject  string  `json:"subject"`
	Template *string `json:"template"`
}

// RecordEmail appends a sent-email record.
// POST /api/admin/applications/{id}/emails
func (h *AdminHandler) RecordEmail(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req recordEmailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	modified, err := h.review.RecordEmail(r.Context(), id, req.Subject, req.Template)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modifiedResponse{Modified: modified})
}

// Delete removes an application.
// DELETE /api/admin/applications/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	deleted, err := h.review.Delete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, modifiedResponse{Modified: deleted})
}

type logsResponse struct {
	Items []domain.LogEntry `json:"items"`
}

// Logs serves the admin log viewer.
// GET /api/admin/logs?level=&context=&requestId=&hours=&limit=
func (h *AdminHandler) Logs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	hours, err := queryInt(r, "hours", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.review.QueryLogs(r.Context(), review.LogsInput{
		Level:     q.Get("level"),
		Context:   q.Get("context"),
		RequestID: q.Get("requestId"),
		Hours:     hours,
		Limit:     limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if entries == nil {
		entries = []domain.LogEntry{}
	}
	writeJSON(w, http.StatusOK, logsResponse{Items: entries})
}
