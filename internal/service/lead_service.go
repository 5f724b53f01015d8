// internal/service/lead_service.go
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

type LeadService struct {
	Repo   repository.LeadRepositoryInterface
	LLM    llm.Client
	Events queue.Publisher
	Logger *zap.Logger
}

// Score qualifies a lead from its budget/need/urgency attributes. Score and
// probability come back clamped to [0,100].
func (s *LeadService) Score(ctx context.Context, in prompt.LeadInput, userID *int) (*model.Lead, error) {
	completion, err := s.LLM.Complete(ctx, llm.UserPrompt(prompt.Lead(in), true))
	if err != nil {
		return nil, fmt.Errorf("score lead: %w", err)
	}

	result, err := llm.ParseLeadResult(completion.Text)
	if err != nil {
		return nil, fmt.Errorf("score lead: %w", err)
	}

	lead := &model.Lead{
		Name:        in.Name,
		Budget:      in.Budget,
		Need:        in.Need,
		Urgency:     in.Urgency,
		Score:       result.Score,
		Probability: result.Probability,
		Analysis:    result.Analysis,
		UserID:      userID,
	}
	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("save lead: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues("lead").Inc()
	publishEvent(s.Events, s.Logger, "lead", lead.ID, completion)

	s.Logger.Info("lead scored",
		zap.Int("leadId", lead.ID),
		zap.Int("score", lead.Score),
		zap.Int("probability", lead.Probability),
	)
	return lead, nil
}

func (s *LeadService) List(ctx context.Context, page, pageSize int) ([]model.Lead, Pagination, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	ptrs, total, err := s.Repo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}

	leads := make([]model.Lead, len(ptrs))
	for i, l := range ptrs {
		leads[i] = *l
	}
	return leads, paginate(page, pageSize, total), nil
}
