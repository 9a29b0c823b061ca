package notification

import (
	"context"
	"time"

	"placement_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisDeduper claims notification keys with SET NX so concurrent deliveries
// of the same callback alert once.
type RedisDeduper struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ interfaces.INotificationDeduper = (*RedisDeduper)(nil)

func NewRedisDeduper(client redis.Cmdable, ttl time.Duration) *RedisDeduper {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &RedisDeduper{client: client, ttl: ttl}
}

func (d *RedisDeduper) Acquire(ctx context.Context, key string) (bool, error) {
	return d.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
}

func (d *RedisDeduper) Release(ctx context.Context, key string) error {
	return d.client.Del(ctx, key).Err()
}
