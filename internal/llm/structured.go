// internal/llm/structured.go
package llm

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
)

// GenerationResult is the structured output shared by the campaign and pitch
// generators.
type GenerationResult struct {
	SuccessProbability int    `json:"success_probability"`
	TargetAudience     string `json:"target_audience"`
	Content            string `json:"content"`
}

// LeadResult is the structured output of the lead qualification prompt.
type LeadResult struct {
	Score       int    `json:"score"`
	Probability int    `json:"probability"`
	Analysis    string `json:"analysis"`
}

const generationSchema = `{
	"type": "object",
	"required": ["success_probability", "target_audience", "content"],
	"properties": {
		"success_probability": {"type": "integer"},
		"target_audience": {"type": "string"},
		"content": {"type": "string"}
	}
}`

const leadSchema = `{
	"type": "object",
	"required": ["score", "probability", "analysis"],
	"properties": {
		"score": {"type": "integer"},
		"probability": {"type": "integer"},
		"analysis": {"type": "string"}
	}
}`

var (
	generationSchemaLoader = gojsonschema.NewStringLoader(generationSchema)
	leadSchemaLoader       = gojsonschema.NewStringLoader(leadSchema)
)

// validate runs the schema over the raw completion text. A failure means the
// model ignored the strict-JSON contract, which is an upstream format error.
func validate(schema gojsonschema.JSONLoader, raw string) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return appErrors.NewUpstreamError("decode", fmt.Errorf("invalid JSON output: %w", err), false)
	}
	if !result.Valid() {
		errs := result.Errors()
		detail := "schema violation"
		if len(errs) > 0 {
			detail = errs[0].String()
		}
		return appErrors.NewUpstreamError("decode", fmt.Errorf("output failed schema: %s", detail), false)
	}
	return nil
}

// ParseGenerationResult validates and decodes a campaign or pitch completion,
// clamping the probability into [0,100].
func ParseGenerationResult(raw string) (*GenerationResult, error) {
	if err := validate(generationSchemaLoader, raw); err != nil {
		return nil, err
	}
	var res GenerationResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, appErrors.NewUpstreamError("decode", err, false)
	}
	res.SuccessProbability = clamp(res.SuccessProbability, 0, 100)
	return &res, nil
}

// ParseLeadResult validates and decodes a lead scoring completion, clamping
// score and probability into [0,100].
func ParseLeadResult(raw string) (*LeadResult, error) {
	if err := validate(leadSchemaLoader, raw); err != nil {
		return nil, err
	}
	var res LeadResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, appErrors.NewUpstreamError("decode", err, false)
	}
	res.Score = clamp(res.Score, 0, 100)
	res.Probability = clamp(res.Probability, 0, 100)
	return &res, nil
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
