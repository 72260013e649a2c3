package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/AwesomeTrading/ordercore/internal/domain"
	"github.com/AwesomeTrading/ordercore/internal/port"
)

var _ port.StateCache = (*RedisCache)(nil)

// RedisCache holds materialized order state as JSON under order:<id> keys.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr string, password string, db int, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

func key(id domain.ClientOrderID) string { return "order:" + string(id) }

func (c *RedisCache) SetOrder(ctx context.Context, o *domain.Order) error {
	b, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(o.ClientOrderID), b, c.ttl).Err()
}

func (c *RedisCache) GetOrder(ctx context.Context, clientOrderID domain.ClientOrderID) (*domain.Order, error) {
	b, err := c.client.Get(ctx, key(clientOrderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var o domain.Order
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *RedisCache) Invalidate(ctx context.Context, clientOrderID domain.ClientOrderID) error {
	return c.client.Del(ctx, key(clientOrderID)).Err()
}
