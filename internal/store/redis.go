// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"layout-engine/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyPrefix    = "layout:cache:"
	historyKeyPrefix  = "layout:history:"
	feedbackKeyPrefix = "layout:feedback:"
)

// RedisCache is the redis-backed CacheStore. Entries carry no TTL; only
// Clear or a flush removes them, matching the process-lifetime semantics of
// the in-memory cache.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.RecommendResponse, bool, error) {
	raw, err := c.client.Get(ctx, cacheKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	var resp models.RecommendResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return &resp, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, resp *models.RecommendResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, cacheKeyPrefix+key, raw, 0).Err()
}

func (c *RedisCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// RedisHistory keeps per-user history in a redis list, trimmed to the last
// models.HistoryLimit entries on every append.
type RedisHistory struct {
	client *redis.Client
	limit  int64
}

func NewRedisHistory(client *redis.Client) *RedisHistory {
	return &RedisHistory{client: client, limit: models.HistoryLimit}
}

func (h *RedisHistory) Append(ctx context.Context, userID string, interaction models.Interaction) error {
	raw, err := json.Marshal(interaction)
	if err != nil {
		return fmt.Errorf("history encode: %w", err)
	}
	key := historyKeyPrefix + userID
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, raw)
	pipe.LTrim(ctx, key, -h.limit, -1)
	_, err = pipe.Exec(ctx)
	return err
}

func (h *RedisHistory) Get(ctx context.Context, userID string) ([]models.Interaction, error) {
	raws, err := h.client.LRange(ctx, historyKeyPrefix+userID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("history get: %w", err)
	}
	out := make([]models.Interaction, 0, len(raws))
	for _, raw := range raws {
		var it models.Interaction
		if err := json.Unmarshal([]byte(raw), &it); err != nil {
			continue // skip corrupt entries rather than failing the read
		}
		out = append(out, it)
	}
	return out, nil
}

// RedisFeedback stores per-user feedback in a redis hash keyed by candidate.
type RedisFeedback struct {
	client *redis.Client
}

func NewRedisFeedback(client *redis.Client) *RedisFeedback {
	return &RedisFeedback{client: client}
}

func (f *RedisFeedback) Put(ctx context.Context, userID, candidateID string, score float64) error {
	return f.client.HSet(ctx, feedbackKeyPrefix+userID, candidateID,
		strconv.FormatFloat(score, 'f', -1, 64)).Err()
}

func (f *RedisFeedback) Get(ctx context.Context, userID, candidateID string) (float64, bool, error) {
	raw, err := f.client.HGet(ctx, feedbackKeyPrefix+userID, candidateID).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("feedback get: %w", err)
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("feedback decode: %w", err)
	}
	return score, true, nil
}

func (f *RedisFeedback) All(ctx context.Context, userID string) (map[string]float64, error) {
	raw, err := f.client.HGetAll(ctx, feedbackKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("feedback getall: %w", err)
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		if score, err := strconv.ParseFloat(v, 64); err == nil {
			out[k] = score
		}
	}
	return out, nil
}

// NewRedisStores builds a full redis-backed store bundle.
func NewRedisStores(client *redis.Client) *Stores {
	return &Stores{
		Cache:    NewRedisCache(client),
		History:  NewRedisHistory(client),
		Feedback: NewRedisFeedback(client),
	}
}
