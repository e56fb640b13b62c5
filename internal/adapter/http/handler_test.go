package httpadapter

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

type stubCampaigns struct {
	err error
}

func (s stubCampaigns) CreateCampaign(context.Context, int64, domain.Objective, domain.CampaignRequest) (*domain.CampaignResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.CampaignResult{CampaignID: 1}, nil
}

type stubDuplication struct {
	err error
}

func (s stubDuplication) Duplicate(context.Context, int64, int64, int) (*domain.DuplicationTask, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.DuplicationTask{ID: "t1", Status: domain.TaskStatusPending}, nil
}

func (s stubDuplication) DuplicateMany(context.Context, int64, []int64, int) (*domain.BatchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.BatchResult{TasksCreated: 1}, nil
}

func (s stubDuplication) GetTask(context.Context, string) (*domain.DuplicationTask, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.DuplicationTask{ID: "t1"}, nil
}

func (s stubDuplication) DeleteTask(context.Context, string) error {
	return s.err
}

func newTestHandler(campaignErr, duplicationErr error) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(stubCampaigns{err: campaignErr}, stubDuplication{err: duplicationErr}, logger)
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", domain.NewValidationError("copies", "out of range"), http.StatusUnprocessableEntity},
		{"unsupported objective", port.ErrUnsupportedObjective, http.StatusBadRequest},
		{"task not found", port.ErrTaskNotFound, http.StatusNotFound},
		{"task running", port.ErrTaskRunning, http.StatusConflict},
		{"platform rejection", &domain.RemoteError{Message: "no"}, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/t1", nil)
			rec := httptest.NewRecorder()
			h.Router().ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status: got %d, want %d", rec.Code, tc.status)
			}
		})
	}
}

func TestCreateCampaignRoute(t *testing.T) {
	h := newTestHandler(nil, nil)

	body := `{"objective":"appinstalls","campaign":{"name":"promo","creatives":[{"id":101}],"tracker_url":"https://x/y"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201, body %s", rec.Code, rec.Body.String())
	}
}

func TestCreateCampaignBadJSON(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestDuplicateRoute(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ad_groups/123/duplicate", strings.NewReader(`{"copies":3}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status: got %d, want 202, body %s", rec.Code, rec.Body.String())
	}
}

func TestDuplicateBadAdGroupID(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ad_groups/abc/duplicate", strings.NewReader(`{"copies":3}`))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestDeleteTaskRoute(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/t1", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
}
