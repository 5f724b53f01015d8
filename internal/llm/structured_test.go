package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
)

func TestParseGenerationResult(t *testing.T) {
	raw := `{"success_probability": 72, "target_audience": "Urban professionals", "content": "Campaign plan..."}`

	res, err := ParseGenerationResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 72, res.SuccessProbability)
	assert.Equal(t, "Urban professionals", res.TargetAudience)
	assert.Equal(t, "Campaign plan...", res.Content)
}

func TestParseGenerationResultClampsProbability(t *testing.T) {
	res, err := ParseGenerationResult(`{"success_probability": 140, "target_audience": "x", "content": "y"}`)
	require.NoError(t, err)
	assert.Equal(t, 100, res.SuccessProbability)

	res, err = ParseGenerationResult(`{"success_probability": -3, "target_audience": "x", "content": "y"}`)
	require.NoError(t, err)
	assert.Equal(t, 0, res.SuccessProbability)
}

func TestParseGenerationResultRejectsMissingKeys(t *testing.T) {
	_, err := ParseGenerationResult(`{"success_probability": 50}`)
	require.Error(t, err)
	assert.True(t, appErrors.IsUpstream(err))
}

func TestParseGenerationResultRejectsNonJSON(t *testing.T) {
	_, err := ParseGenerationResult("API error. Please try again.")
	require.Error(t, err)
	assert.True(t, appErrors.IsUpstream(err))
}

func TestParseGenerationResultRejectsWrongTypes(t *testing.T) {
	_, err := ParseGenerationResult(`{"success_probability": "high", "target_audience": "x", "content": "y"}`)
	require.Error(t, err)
}

func TestParseLeadResult(t *testing.T) {
	raw := `{"score": 82, "probability": 74, "analysis": "Strong budget fit."}`

	res, err := ParseLeadResult(raw)
	require.NoError(t, err)
	assert.Equal(t, 82, res.Score)
	assert.Equal(t, 74, res.Probability)
	assert.Equal(t, "Strong budget fit.", res.Analysis)
}

func TestParseLeadResultClampsScores(t *testing.T) {
	res, err := ParseLeadResult(`{"score": 300, "probability": -10, "analysis": "noisy model"}`)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 0, res.Probability)
}

func TestParseLeadResultRejectsMissingAnalysis(t *testing.T) {
	_, err := ParseLeadResult(`{"score": 10, "probability": 20}`)
	require.Error(t, err)
	assert.True(t, appErrors.IsUpstream(err))
}
