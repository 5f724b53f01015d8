// internal/cache/client.go
package cache

import (
	"context"

	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/llm"
	"github.com/marketmind/marketmind-backend/internal/metrics"
)

// CachedClient serves repeated structured briefs from Redis instead of
// re-billing the upstream API. Chat requests (JSONMode off) pass through: a
// conversation should never get a canned reply.
type CachedClient struct {
	Inner  llm.Client
	Store  *Store
	Model  string
	Logger *zap.Logger
}

func (c *CachedClient) Complete(ctx context.Context, req llm.Request) (*llm.Completion, error) {
	if !req.JSONMode {
		return c.Inner.Complete(ctx, req)
	}

	key := Key(c.Model, req)
	if text, ok := c.Store.Get(ctx, key); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return &llm.Completion{Text: text, Cached: true}, nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	completion, err := c.Inner.Complete(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.Store.Set(ctx, key, completion.Text); err != nil {
		// A dead cache must not fail the generation.
		c.Logger.Warn("failed to cache completion", zap.Error(err))
	}
	return completion, nil
}

var _ llm.Client = (*CachedClient)(nil)
