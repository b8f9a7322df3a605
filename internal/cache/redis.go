package cache

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

var _ Invalidator = (*Redis)(nil)

type Redis struct {
	client *redis.Client
}

func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
		Protocol: 2,  // Connection protocol
	})

	return &Redis{client: client}
}

// MarkStale drops the cached entries outright; the next read repopulates them.
func (r *Redis) MarkStale(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
