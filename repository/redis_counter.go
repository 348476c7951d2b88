package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// noExpiry is what PTTL reports for a key that exists without a TTL.
const noExpiry = time.Duration(-1)

type RedisCounter struct {
	client redis.Cmdable
	prefix string
}

// NewRedisClient opens a client for addr. Connection errors surface on first use.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisCounter(client redis.Cmdable, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix}
}

func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := r.prefix + key

	count, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", fullKey, err)
	}

	// Primer hit de la ventana: fijar expiración
	if count == 1 {
		if err := r.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return 0, fmt.Errorf("redis pexpire %s: %w", fullKey, err)
		}
		return count, nil
	}

	// Una clave sin TTL nunca se reinicia; se repara en el siguiente hit
	ttl, err := r.client.PTTL(ctx, fullKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis pttl %s: %w", fullKey, err)
	}
	if ttl == noExpiry {
		if err := r.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return 0, fmt.Errorf("redis pexpire %s: %w", fullKey, err)
		}
	}
	return count, nil
}
