// internal/llm/client.go
package llm

import (
	"context"
	"time"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation sent to the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one completion call. JSONMode asks the API for a
// json_object response, used by the structured generators.
type Request struct {
	Messages  []Message
	JSONMode  bool
	MaxTokens int
}

// Completion is the sanitized reply. Cached is set by the caching layer when
// the text was served without an upstream call.
type Completion struct {
	Text     string
	Cached   bool
	Duration time.Duration
}

// Client sends a request to an LLM completion endpoint and returns the reply.
type Client interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
}

// UserPrompt wraps a single prompt string as a one-turn request.
func UserPrompt(prompt string, jsonMode bool) Request {
	return Request{
		Messages: []Message{{Role: RoleUser, Content: prompt}},
		JSONMode: jsonMode,
	}
}
