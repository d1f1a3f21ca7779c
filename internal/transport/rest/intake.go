package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/tradedesk-backend/internal/domain"
	"github.com/heartmarshall/tradedesk-backend/internal/service/intake"
	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

type intakeService interface {
	Submit(ctx context.Context, input intake.SubmitInput) (*domain.Application, error)
}

// IntakeHandler serves the public application form endpoint.
type IntakeHandler struct {
	svc intakeService
	log *slog.Logger
}

// NewIntakeHandler creates an IntakeHandler.
func NewIntakeHandler(svc intakeService, logger *slog.Logger) *IntakeHandler {
	return &IntakeHandler{
		svc: svc,
		log: logger.With("handler", "intake"),
	}
}

// Register mounts the intake routes on r.
func (h *IntakeHandler) Register(r chi.Router) {
	r.Post("/applications", h.Submit)
}

type submitResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// Submit accepts one application form.
// POST /api/applications
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input intake.SubmitInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Request metadata always comes from the transport, never from the body.
	input.IPAddress = ctxutil.ClientIPFromCtx(r.Context())
	input.UserAgent = r.UserAgent()
	input.Referrer = nil
	if ref := r.Referer(); ref != "" {
		input.Referrer = &ref
	}

	app, err := h.svc.Submit(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		ID:        app.ID,
		Status:    app.Status.String(),
		CreatedAt: app.CreatedAt,
	})
}
