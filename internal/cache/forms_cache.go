package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

// FormsCache keeps the admin dashboard listing warm between submissions.
// All failures are treated as cache misses by callers; the store stays the
// source of truth.
type FormsCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context) ([]model.Kuesioner, error)
	Set(ctx context.Context, forms []model.Kuesioner) error
	// Invalidate drops the cached listing so the next read refreshes it.
	Invalidate(ctx context.Context) error
}

type formsCache struct {
	client *redis.Client
	ttl    time.Duration
}

const formsKey = "kuesioner:admin:forms"

// NewFormsCache creates a Redis-backed listing cache with a short TTL; the
// dashboard tolerates slightly stale data between invalidations.
func NewFormsCache(client *redis.Client) FormsCache {
	return &formsCache{
		client: client,
		ttl:    time.Minute,
	}
}

func (c *formsCache) Get(ctx context.Context) ([]model.Kuesioner, error) {
	data, err := c.client.Get(ctx, formsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var forms []model.Kuesioner
	if err := json.Unmarshal([]byte(data), &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

func (c *formsCache) Set(ctx context.Context, forms []model.Kuesioner) error {
	data, err := json.Marshal(forms)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, formsKey, data, c.ttl).Err()
}

func (c *formsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, formsKey).Err()
}
