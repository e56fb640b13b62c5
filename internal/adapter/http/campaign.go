package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"adpilot/internal/core/domain"
)

type createCampaignRequest struct {
	AccountID int64                  `json:"account_id,omitempty"`
	Objective string                 `json:"objective"`
	Campaign  domain.CampaignRequest `json:"campaign"`
}

// handleCreateCampaign builds and submits one campaign. The request body
// carries the objective key, an optional advertising account id and the
// campaign intent. On success it returns HTTP 201 with the created ids.
// Validation failures produce HTTP 422 before any platform call is made.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	result, err := h.campaigns.CreateCampaign(r.Context(), req.AccountID, domain.Objective(req.Objective), req.Campaign)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
