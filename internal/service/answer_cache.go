package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cyber-advisor/internal/models"
	"cyber-advisor/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// AnswerCache stores resolved answers in Redis. Keys embed the namespace of
// the tables that produced the answer, see AnswerService.CacheNamespace.
type AnswerCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewAnswerCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *AnswerCache {
	return &AnswerCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Key derives the cache key of a trimmed question within a table namespace.
func (c *AnswerCache) Key(namespace, question string) string {
	sum := sha256.Sum256([]byte(question))
	return fmt.Sprintf("advice:%s:%s", namespace, hex.EncodeToString(sum[:]))
}

// Get returns a cached result. Redis failures count as misses.
func (c *AnswerCache) Get(ctx context.Context, key string) (models.AnswerResult, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Answer cache read failed", zap.Error(err))
			metrics.CacheLookups.WithLabelValues("error").Inc()
			return models.AnswerResult{}, false
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return models.AnswerResult{}, false
	}

	var result models.AnswerResult
	if err := json.Unmarshal(data, &result); err != nil || result.Advice == "" {
		c.logger.Warn("Discarding malformed cached answer", zap.String("key", key), zap.Error(err))
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return models.AnswerResult{}, false
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return result, true
}

// Set stores result under key. Failures are logged and otherwise ignored.
func (c *AnswerCache) Set(ctx context.Context, key string, result models.AnswerResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("Failed to encode answer for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Answer cache write failed", zap.Error(err))
	}
}
