package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetTask returns a duplication task with its progress and the ids of
// copies created so far. Unknown task ids produce HTTP 404.
func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing task id", http.StatusBadRequest)
		return
	}

	task, err := h.duplication.GetTask(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(task); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleDeleteTask removes a task that is not running. Deleting a running
// task yields HTTP 409 — an active duplication loop cannot be cancelled
// mid-flight.
func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing task id", http.StatusBadRequest)
		return
	}

	if err := h.duplication.DeleteTask(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
