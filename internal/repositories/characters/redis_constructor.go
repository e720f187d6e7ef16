package characters

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a Redis-backed character cache holding at most size
// entries for ttl each
func NewRedis(client redis.UniversalClient, size int, ttl time.Duration) Cache {
	cache, err := NewRedisCache(&RedisCacheConfig{
		Client: client,
		Size:   size,
		TTL:    ttl,
	})
	if err != nil {
		panic(err)
	}
	return cache
}
