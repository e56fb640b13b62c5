package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

type failingTokens struct{}

func (failingTokens) Token(context.Context, int64) (string, error) {
	return "", errors.New("account 7 not found")
}

func TestCampaignServiceUnsupportedObjective(t *testing.T) {
	factory := NewStrategyFactory(func(string) port.PlatformAPI { return nil }, nil, nil)
	svc := NewCampaignService(factory, failingTokens{})

	// объектив проверяется до резолва токена
	_, err := svc.CreateCampaign(context.Background(), 7, "branding", domain.CampaignRequest{})
	if !errors.Is(err, port.ErrUnsupportedObjective) {
		t.Fatalf("expected ErrUnsupportedObjective, got %v", err)
	}
}

func TestCampaignServiceTokenFailure(t *testing.T) {
	factory := NewStrategyFactory(func(string) port.PlatformAPI { return nil }, nil, nil)
	svc := NewCampaignService(factory, failingTokens{})

	_, err := svc.CreateCampaign(context.Background(), 7, domain.ObjectiveAppInstalls, domain.CampaignRequest{})
	if err == nil || !strings.Contains(err.Error(), "resolve access token") {
		t.Fatalf("expected wrapped token error, got %v", err)
	}
}

func TestCampaignServiceDelegatesToStrategy(t *testing.T) {
	api := mocks.NewMockPlatformAPI(t)
	api.EXPECT().
		ListURLObjects(mock.Anything, "tracker_url", urlListPageSize).
		Return([]domain.UrlObject{{ID: 11, URL: "https://x/y"}}, nil)
	api.EXPECT().
		CreateAdPlan(mock.Anything, mock.Anything).
		Return(&port.AdPlanResponse{ID: 5, AdGroups: []port.CreatedAdGroup{{ID: 6}}}, nil)

	factory := NewStrategyFactory(func(string) port.PlatformAPI { return api }, nil, []int64{188})
	svc := NewCampaignService(factory, staticTokens("token"))

	result, err := svc.CreateCampaign(context.Background(), 0, domain.ObjectiveAppInstalls, validAppInstallsRequest())
	if err != nil {
		t.Fatalf("CreateCampaign error: %v", err)
	}
	if result.CampaignID != 5 {
		t.Fatalf("campaign id: got %d, want 5", result.CampaignID)
	}
}
