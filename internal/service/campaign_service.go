// internal/service/campaign_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/metrics"
	"github.com/marketmind/marketmind-backend/internal/model"
	"github.com/marketmind/marketmind-backend/internal/prompt"
	"github.com/marketmind/marketmind-backend/internal/queue"
	"github.com/marketmind/marketmind-backend/internal/repository"
)

type CampaignService struct {
	Repo   repository.CampaignRepositoryInterface
	LLM    llm.Client
	Events queue.Publisher
	Logger *zap.Logger
}

// Generate runs the campaign pipeline: build prompt, call the completion API
// in JSON mode, validate the structured output, persist, publish the event.
func (s *CampaignService) Generate(ctx context.Context, in prompt.CampaignInput, userID *int) (*model.Campaign, error) {
	completion, err := s.LLM.Complete(ctx, llm.UserPrompt(prompt.Campaign(in), true))
	if err != nil {
		return nil, fmt.Errorf("generate campaign: %w", err)
	}

	result, err := llm.ParseGenerationResult(completion.Text)
	if err != nil {
		return nil, fmt.Errorf("generate campaign: %w", err)
	}

	campaign := &model.Campaign{
		Product:            in.Product,
		Industry:           in.Industry,
		Cost:               in.Cost,
		Audience:           in.Audience,
		Platform:           in.Platform,
		SuccessProbability: result.SuccessProbability,
		TargetAudience:     result.TargetAudience,
		Content:            result.Content,
		UserID:             userID,
	}
	if err := s.Repo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("save campaign: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues("campaign").Inc()
	publishEvent(s.Events, s.Logger, "campaign", campaign.ID, completion)

	s.Logger.Info("campaign generated",
		zap.Int("campaignId", campaign.ID),
		zap.Int("successProbability", campaign.SuccessProbability),
		zap.Bool("cached", completion.Cached),
	)
	return campaign, nil
}

// List fetches campaigns with pagination, newest first.
func (s *CampaignService) List(ctx context.Context, page, pageSize int) ([]model.Campaign, Pagination, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	ptrs, total, err := s.Repo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}

	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}
	return campaigns, paginate(page, pageSize, total), nil
}
