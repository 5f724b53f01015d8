// internal/service/chat_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/prompt"
)

const chatMaxTokens = 512

type ChatService struct {
	LLM    llm.Client
	Logger *zap.Logger
}

// Reply answers a multi-turn conversation. The caller keeps the history; the
// fixed system prompt is prepended on every call. An empty history gets the
// greeting without an upstream call.
func (s *ChatService) Reply(ctx context.Context, messages []llm.Message) (string, error) {
	if len(messages) == 0 {
		return prompt.ChatGreeting, nil
	}

	full := make([]llm.Message, 0, len(messages)+1)
	full = append(full, llm.Message{Role: llm.RoleSystem, Content: prompt.ChatSystem})
	full = append(full, messages...)

	completion, err := s.LLM.Complete(ctx, llm.Request{
		Messages:  full,
		MaxTokens: chatMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}

	s.Logger.Debug("chat reply generated", zap.Int("turns", len(messages)))
	return completion.Text, nil
}
