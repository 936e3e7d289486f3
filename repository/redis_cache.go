package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache memoizes calculation results in Redis. Entries expire so
// a restarted rate table or tax year never serves stale figures
// forever.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

// NewRedisCache connects to the given Redis address. Entries live for
// ttl; a zero ttl keeps them until evicted.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
		ctx:    context.Background(),
	}
}

// Get returns the cached value for key, if present.
func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key with the configured expiry.
func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, r.ttl).Err()
}
