package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type duplicateRequest struct {
	AccountID int64 `json:"account_id,omitempty"`
	Copies    int   `json:"copies"`
}

type duplicateBatchRequest struct {
	AccountID  int64   `json:"account_id,omitempty"`
	AdGroupIDs []int64 `json:"ad_group_ids"`
	Copies     int     `json:"copies"`
}

// handleDuplicate accepts a duplication task for one ad group. The task is
// returned immediately in pending state with HTTP 202; it executes in the
// background and can be polled via the tasks endpoint.
func (h *Handler) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	adGroupID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ad group id", http.StatusBadRequest)
		return
	}

	var req duplicateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	task, err := h.duplication.Duplicate(r.Context(), req.AccountID, adGroupID, req.Copies)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err = json.NewEncoder(w).Encode(task); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleDuplicateBatch fans a multi-group duplication request out into
// independent tasks and returns the aggregate outcome with HTTP 202. Groups
// that could not be started are reported per group in the result rather
// than failing the whole batch.
func (h *Handler) handleDuplicateBatch(w http.ResponseWriter, r *http.Request) {
	var req duplicateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.duplication.DuplicateMany(r.Context(), req.AccountID, req.AdGroupIDs, req.Copies)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
