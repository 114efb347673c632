package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

const keyRanking = "ranking:current"

func (c *Cache) GetRanking(ctx context.Context, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyRanking).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetRanking(ctx context.Context, v any, ttl time.Duration) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keyRanking, b, ttl).Err()
}

// Invalidate derruba o ranking cacheado (usado quando o scoring-worker avisa
// que os scores mudaram).
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.R.Del(ctx, keyRanking).Err()
}
