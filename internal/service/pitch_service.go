// internal/service/pitch_service.go
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

type PitchService struct {
	Repo   repository.PitchRepositoryInterface
	LLM    llm.Client
	Events queue.Publisher
	Logger *zap.Logger
}

func (s *PitchService) Generate(ctx context.Context, in prompt.PitchInput, userID *int) (*model.Pitch, error) {
	completion, err := s.LLM.Complete(ctx, llm.UserPrompt(prompt.Pitch(in), true))
	if err != nil {
		return nil, fmt.Errorf("generate pitch: %w", err)
	}

	result, err := llm.ParseGenerationResult(completion.Text)
	if err != nil {
		return nil, fmt.Errorf("generate pitch: %w", err)
	}

	pitch := &model.Pitch{
		Product:            in.Product,
		Customer:           in.Customer,
		SuccessProbability: result.SuccessProbability,
		TargetAudience:     result.TargetAudience,
		Content:            result.Content,
		UserID:             userID,
	}
	if err := s.Repo.Create(ctx, pitch); err != nil {
		return nil, fmt.Errorf("save pitch: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues("pitch").Inc()
	publishEvent(s.Events, s.Logger, "pitch", pitch.ID, completion)

	s.Logger.Info("pitch generated",
		zap.Int("pitchId", pitch.ID),
		zap.Bool("cached", completion.Cached),
	)
	return pitch, nil
}

func (s *PitchService) List(ctx context.Context, page, pageSize int) ([]model.Pitch, Pagination, error) {
	page, pageSize = normalizePage(page, pageSize)
	offset := (page - 1) * pageSize

	ptrs, total, err := s.Repo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, Pagination{}, err
	}

	pitches := make([]model.Pitch, len(ptrs))
	for i, p := range ptrs {
		pitches[i] = *p
	}
	return pitches, paginate(page, pageSize, total), nil
}
