package usecase

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignService implements port.CampaignUseCase by dispatching to the
// objective's strategy. Each call gets its own strategy instance bound to
// the account's access token, so concurrent calls share no mutable state.
type CampaignService struct {
	factory *StrategyFactory
	tokens  port.TokenSource
}

func NewCampaignService(factory *StrategyFactory, tokens port.TokenSource) *CampaignService {
	return &CampaignService{factory: factory, tokens: tokens}
}

// CreateCampaign selects the strategy for the objective, binds it to the
// account's token and runs the build-submit-reconcile pipeline.
func (s *CampaignService) CreateCampaign(ctx context.Context, accountID int64, objective domain.Objective, req domain.CampaignRequest) (*domain.CampaignResult, error) {
	strategy, err := s.factory.Strategy(objective)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Token(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve access token: %w", err)
	}
	strategy.Initialize(token)

	return strategy.CreateCampaign(ctx, req)
}
