// internal/cache/cache.go
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marketmind/marketmind-backend/internal/config"
	"github.com/marketmind/marketmind-backend/internal/llm"
)

// Store is the Redis-backed completion cache.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg config.RedisConfig) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &Store{
		client: rdb,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
	}
}

// NewWithClient wires an existing client, used by tests with miniredis.
func NewWithClient(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Ping tests the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Get returns the cached completion text for key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, s.ttl).Err()
}

// Key derives the cache key for a request: a digest over the model, the JSON
// mode flag and every message, so distinct briefs never collide.
func Key(model string, req llm.Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%t|", model, req.JSONMode)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s:%s|", m.Role, m.Content)
	}
	return "completion:" + hex.EncodeToString(h.Sum(nil))
}
