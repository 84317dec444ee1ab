// internal/repository/cache.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-readiness-workers/internal/common/logger"
	"ai-readiness-workers/internal/common/metrics"
	"ai-readiness-workers/internal/scoring"
)

const keyPrefix = "airs:"

// CachedStore is a cache-aside Store. Redis failures are logged and the
// inner store is read directly; errors from the inner store are never cached.
type CachedStore struct {
	inner  Store
	redis  redis.Cmdable
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedStore(inner Store, rdb redis.Cmdable, ttl time.Duration, log logger.Logger) *CachedStore {
	return &CachedStore{
		inner:  inner,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "reference-cache"}),
	}
}

func OccupationKey(name string) string { return keyPrefix + "occupation:" + name }
func SkillsKey(name string) string     { return keyPrefix + "skills:" + name }
func PathwayKey(id int) string         { return keyPrefix + "pathway:" + strconv.Itoa(id) }

const (
	occupationsKey = keyPrefix + "occupations"
	pathwaysKey    = keyPrefix + "pathways"
)

func cached[T any](ctx context.Context, c *CachedStore, kind, key string, load func(context.Context) (T, error)) (T, error) {
	val, err := c.redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		var out T
		if jsonErr := json.Unmarshal([]byte(val), &out); jsonErr == nil {
			metrics.ReferenceCacheLookups.WithLabelValues(kind, "hit").Inc()
			return out, nil
		}
		c.logger.Warn("discarding undecodable cache entry", map[string]interface{}{"key": key})
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("cache read failed, reading through", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
	metrics.ReferenceCacheLookups.WithLabelValues(kind, "miss").Inc()

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		return out, nil
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
	return out, nil
}

func (c *CachedStore) GetOccupation(ctx context.Context, name string) (scoring.OccupationRecord, error) {
	return cached(ctx, c, "occupation", OccupationKey(name), func(ctx context.Context) (scoring.OccupationRecord, error) {
		return c.inner.GetOccupation(ctx, name)
	})
}

func (c *CachedStore) ListOccupations(ctx context.Context) ([]scoring.OccupationRecord, error) {
	return cached(ctx, c, "occupations", occupationsKey, c.inner.ListOccupations)
}

func (c *CachedStore) GetRequiredSkills(ctx context.Context, occupation string) ([]scoring.SkillRequirement, error) {
	return cached(ctx, c, "skills", SkillsKey(occupation), func(ctx context.Context) ([]scoring.SkillRequirement, error) {
		return c.inner.GetRequiredSkills(ctx, occupation)
	})
}

func (c *CachedStore) GetPathway(ctx context.Context, id int) (scoring.LearningPathway, error) {
	return cached(ctx, c, "pathway", PathwayKey(id), func(ctx context.Context) (scoring.LearningPathway, error) {
		return c.inner.GetPathway(ctx, id)
	})
}

func (c *CachedStore) ListPathways(ctx context.Context) ([]scoring.LearningPathway, error) {
	return cached(ctx, c, "pathways", pathwaysKey, c.inner.ListPathways)
}

// Invalidate removes every cached reference entry. Call after reseeding.
func (c *CachedStore) Invalidate(ctx context.Context) (int, error) {
	var keys []string
	iter := c.redis.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := c.redis.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}
	return len(keys), nil
}
