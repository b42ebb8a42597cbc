// Package cache stores final answers in Redis keyed by question hash.
// The cache is best-effort: Redis being down never fails a request.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Divas-Gupta30/doc-qa-agent/internal/pipeline"
)

const keyPrefix = "qa:answer:"

type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func New(cfg Config, logger *zap.Logger) *AnswerCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = time.Hour
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &AnswerCache{client: client, ttl: ttl, logger: logger}
}

// Ping checks the Redis connection; callers may log and continue on error.
func (c *AnswerCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the cached answer for a question, if any.
func (c *AnswerCache) Get(ctx context.Context, question string) (*pipeline.Answer, bool) {
	data, err := c.client.Get(ctx, key(question)).Result()
	if err != nil {
		return nil, false
	}
	var ans pipeline.Answer
	if err := json.Unmarshal([]byte(data), &ans); err != nil {
		c.logger.Warn("dropping malformed cache entry", zap.Error(err))
		return nil, false
	}
	return &ans, true
}

// Set stores an answer. Degraded answers are not cached; a later request
// may succeed once retrieval recovers.
func (c *AnswerCache) Set(ctx context.Context, question string, ans *pipeline.Answer) {
	if ans == nil || ans.Degraded {
		return
	}
	data, err := json.Marshal(ans)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(question), data, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache answer", zap.Error(err))
	}
}

func (c *AnswerCache) Close() error {
	return c.client.Close()
}

func key(question string) string {
	sum := sha1.Sum([]byte(question))
	return keyPrefix + hex.EncodeToString(sum[:])
}
