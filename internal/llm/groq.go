// internal/llm/groq.go
package llm

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/config"
	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
	"github.com/marketmind/marketmind-backend/internal/metrics"
)

// Groq implements Client against Groq's OpenAI-compatible Chat Completions
// API via the go-openai SDK with a rebased URL.
type Groq struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
	maxRetries  int
	logger      *zap.Logger
}

func NewGroq(cfg config.GroqConfig, logger *zap.Logger) *Groq {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	return &Groq{
		client:      openai.NewClientWithConfig(oc),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		timeout:     config.GetDuration(cfg.Timeout),
		maxRetries:  cfg.MaxRetries,
		logger:      logger,
	}
}

// Complete sends the request, retrying transport errors and 5xx/429 responses
// with exponential backoff. The reply text is sanitized before returning.
func (g *Groq) Complete(ctx context.Context, req Request) (*Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(req.Messages)),
		Temperature: g.temperature,
	}
	for _, m := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = req.MaxTokens
	}

	start := time.Now()
	var resp openai.ChatCompletionResponse
	var err error

	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				metrics.UpstreamDuration.WithLabelValues("timeout").Observe(time.Since(start).Seconds())
				return nil, appErrors.NewUpstreamError("completion", ctx.Err(), true)
			}
		}

		resp, err = g.client.CreateChatCompletion(ctx, chatReq)
		if err == nil {
			break
		}
		if !isRetryable(err) || ctx.Err() != nil {
			break
		}
		g.logger.Warn("completion attempt failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	elapsed := time.Since(start)
	if err != nil {
		metrics.UpstreamDuration.WithLabelValues("error").Observe(elapsed.Seconds())
		if ctx.Err() == context.DeadlineExceeded {
			return nil, appErrors.NewUpstreamError("completion", ctx.Err(), true)
		}
		return nil, appErrors.NewUpstreamError("completion", err, isRetryable(err))
	}
	if len(resp.Choices) == 0 {
		metrics.UpstreamDuration.WithLabelValues("error").Observe(elapsed.Seconds())
		return nil, appErrors.NewUpstreamError("completion", errors.New("no choices in response"), false)
	}

	metrics.UpstreamDuration.WithLabelValues("success").Observe(elapsed.Seconds())
	return &Completion{
		Text:     Sanitize(resp.Choices[0].Message.Content),
		Duration: elapsed,
	}, nil
}

// isRetryable treats transport failures, rate limiting and server errors as
// worth another attempt.
func isRetryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 429 || reqErr.HTTPStatusCode >= 500
	}
	// Transport-level error without an HTTP status.
	return true
}

var _ Client = (*Groq)(nil)
