package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/prompt"
	"github.com/marketmind/marketmind-backend/internal/service"
)

func TestChatServiceEmptyHistoryGreets(t *testing.T) {
	lm := &stubLLM{}
	svc := &service.ChatService{LLM: lm, Logger: zap.NewNop()}

	reply, err := svc.Reply(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, prompt.ChatGreeting, reply)
	assert.Zero(t, lm.calls)
}

func TestChatServicePrependsSystemPrompt(t *testing.T) {
	lm := &stubLLM{text: "A campaign pairs a budget with a channel and a message."}
	svc := &service.ChatService{LLM: lm, Logger: zap.NewNop()}

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "What is a campaign?"},
	}
	reply, err := svc.Reply(context.Background(), history)

	require.NoError(t, err)
	assert.Equal(t, lm.text, reply)

	require.Len(t, lm.lastReq.Messages, 2)
	assert.Equal(t, llm.RoleSystem, lm.lastReq.Messages[0].Role)
	assert.Equal(t, prompt.ChatSystem, lm.lastReq.Messages[0].Content)
	assert.Equal(t, "What is a campaign?", lm.lastReq.Messages[1].Content)
	assert.False(t, lm.lastReq.JSONMode)
	assert.Equal(t, 512, lm.lastReq.MaxTokens)
}

func TestChatServicePropagatesErrors(t *testing.T) {
	lm := &stubLLM{err: assert.AnError}
	svc := &service.ChatService{LLM: lm, Logger: zap.NewNop()}

	_, err := svc.Reply(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hi"}})
	require.Error(t, err)
}
