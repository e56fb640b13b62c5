package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP, translating JSON requests into usecase calls and errors into status
// codes. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	campaigns   port.CampaignUseCase
	duplication port.DuplicationUseCase
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, duplication port.DuplicationUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, duplication: duplication, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Post("/ad_groups/{id}/duplicate", h.handleDuplicate)
		r.Post("/ad_groups/duplicate_batch", h.handleDuplicateBatch)
		r.Get("/tasks/{id}", h.handleGetTask)
		r.Delete("/tasks/{id}", h.handleDeleteTask)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps engine errors onto HTTP status codes. Validation problems
// and unknown objectives are the caller's fault; platform rejections map to
// 502 with the platform's message passed through for diagnosis.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		remoteErr     *domain.RemoteError
	)
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, port.ErrUnsupportedObjective):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrTaskNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, port.ErrTaskRunning):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &remoteErr):
		h.logger.Error("platform rejected request", slog.Any("error", err))
		http.Error(w, remoteErr.Error(), http.StatusBadGateway)
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
