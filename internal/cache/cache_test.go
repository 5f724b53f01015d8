package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewWithClient(client, ttl)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestKeyDeterministic(t *testing.T) {
	req := llm.UserPrompt("generate a campaign for EcoBottles", true)

	k1 := Key("llama-3.3-70b-versatile", req)
	k2 := Key("llama-3.3-70b-versatile", req)
	assert.Equal(t, k1, k2)
	assert.Contains(t, k1, "completion:")
}

func TestKeyVariesByContent(t *testing.T) {
	base := Key("llama-3.3-70b-versatile", llm.UserPrompt("prompt a", true))

	assert.NotEqual(t, base, Key("llama-3.3-70b-versatile", llm.UserPrompt("prompt b", true)))
	assert.NotEqual(t, base, Key("llama-3.3-70b-versatile", llm.UserPrompt("prompt a", false)))
	assert.NotEqual(t, base, Key("other-model", llm.UserPrompt("prompt a", true)))
}

func TestStoreGetSet(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, ok := store.Get(ctx, "completion:missing")
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "completion:abc", `{"success_probability": 80}`))
	val, ok := store.Get(ctx, "completion:abc")
	assert.True(t, ok)
	assert.Equal(t, `{"success_probability": 80}`, val)

	mr.FastForward(2 * time.Hour)
	_, ok = store.Get(ctx, "completion:abc")
	assert.False(t, ok)
}

type fakeClient struct {
	calls int
	text  string
	err   error
}

func (f *fakeClient) Complete(_ context.Context, _ llm.Request) (*llm.Completion, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Completion{Text: f.text}, nil
}

func TestCachedClientHitAndMiss(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	inner := &fakeClient{text: `{"score": 75}`}
	client := &CachedClient{Inner: inner, Store: store, Model: "llama-3.3-70b-versatile", Logger: zap.NewNop()}
	req := llm.UserPrompt("score this lead", true)

	first, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, inner.calls)

	second, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, `{"score": 75}`, second.Text)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedClientChatPassthrough(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	inner := &fakeClient{text: "hello there"}
	client := &CachedClient{Inner: inner, Store: store, Model: "llama-3.3-70b-versatile", Logger: zap.NewNop()}
	req := llm.UserPrompt("hi", false)

	for i := 0; i < 3; i++ {
		completion, err := client.Complete(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, completion.Cached)
	}
	assert.Equal(t, 3, inner.calls)
}

func TestCachedClientPropagatesErrors(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	inner := &fakeClient{err: errors.New("upstream down")}
	client := &CachedClient{Inner: inner, Store: store, Model: "llama-3.3-70b-versatile", Logger: zap.NewNop()}

	_, err := client.Complete(context.Background(), llm.UserPrompt("score this lead", true))
	require.Error(t, err)
}
