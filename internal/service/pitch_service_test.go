package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/prompt"
	"github.com/marketmind/marketmind-backend/internal/service"
)

func TestPitchServiceGenerate(t *testing.T) {
	repo := &mockPitchRepo{}
	pub := &capturingPublisher{}
	lm := &stubLLM{text: `{"success_probability": 67, "target_audience": "Heads of sales at mid-market SaaS", "content": "Open with the churn numbers."}`}
	svc := &service.PitchService{Repo: repo, LLM: lm, Events: pub, Logger: zap.NewNop()}

	in := prompt.PitchInput{Product: "RetainIQ", Customer: "VP Sales at a 200-seat SaaS"}
	pitch, err := svc.Generate(context.Background(), in, nil)

	require.NoError(t, err)
	assert.Equal(t, 67, pitch.SuccessProbability)
	assert.Equal(t, "RetainIQ", pitch.Product)
	assert.Equal(t, "Open with the churn numbers.", pitch.Content)

	require.Len(t, repo.created, 1)
	require.Len(t, pub.events, 1)
	assert.Equal(t, "pitch", pub.events[0].Kind)
	assert.Contains(t, lm.lastReq.Messages[0].Content, "RetainIQ")
}

func TestPitchServiceList(t *testing.T) {
	repo := &mockPitchRepo{total: 5}
	svc := &service.PitchService{Repo: repo, Logger: zap.NewNop()}

	_, pg, err := svc.List(context.Background(), 2, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 5, pg.TotalCount)
	assert.Equal(t, 3, pg.TotalPages)
}
