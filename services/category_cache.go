package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trivia/models"

	"github.com/redis/go-redis/v9"
)

const categoriesCacheKey = "trivia:categories"

// CategoryCache holds the full, id-ordered category list. Categories are
// static, so a whole-list entry with a TTL is enough.
type CategoryCache interface {
	Get(ctx context.Context) ([]models.Category, bool, error)
	Set(ctx context.Context, categories []models.Category) error
}

type RedisCategoryCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	return &RedisCategoryCache{redis: client, ttl: ttl}
}

func (c *RedisCategoryCache) Get(ctx context.Context) ([]models.Category, bool, error) {
	data, err := c.redis.Get(ctx, categoriesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read categories from redis: %w", err)
	}

	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached categories: %w", err)
	}
	return categories, true, nil
}

func (c *RedisCategoryCache) Set(ctx context.Context, categories []models.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	if err := c.redis.Set(ctx, categoriesCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store categories in redis: %w", err)
	}
	return nil
}
