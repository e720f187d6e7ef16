package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/celebi-bot/celebi/internal"
	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// indexKey is a sorted set of cached member ids scored by write time in
// milliseconds. It bounds the number of entries.
const indexKey = "characters:index"

// RedisCacheConfig configures a Redis-backed character cache
type RedisCacheConfig struct {
	Client redis.UniversalClient
	// Size caps the number of entries; the least recently written go first.
	Size         int
	TTL          time.Duration
	TimeProvider TimeProvider
}

// redisCache shares scraped characters between bot instances. Read failures
// are logged and reported as misses so the forum stays the source of truth.
type redisCache struct {
	client redis.UniversalClient
	size   int
	ttl    time.Duration
	clock  TimeProvider
}

// NewRedisCache creates a Redis-backed cache
func NewRedisCache(cfg *RedisCacheConfig) (Cache, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Client == nil {
		return nil, internal.NewMissingParamError("cfg.Client")
	}

	size := cfg.Size
	if size <= 0 {
		size = DefaultCacheSize
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	clock := cfg.TimeProvider
	if clock == nil {
		clock = &RealTimeProvider{}
	}

	return &redisCache{
		client: cfg.Client,
		size:   size,
		ttl:    ttl,
		clock:  clock,
	}, nil
}

func characterKey(id int) string {
	return fmt.Sprintf("character:%d", id)
}

func (r *redisCache) Get(ctx context.Context, id int) (*entities.Character, bool) {
	data, err := r.client.Get(ctx, characterKey(id)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Character cache read failed for %d, treating as miss: %v", id, err)
		}
		return nil, false
	}

	var character entities.Character
	if err := json.Unmarshal([]byte(data), &character); err != nil {
		log.Printf("Discarding unreadable cache entry for character %d: %v", id, err)
		return nil, false
	}

	if character.ID != id {
		log.Printf("Cache entry %s holds character %d, ignoring", characterKey(id), character.ID)
		return nil, false
	}

	return &character, true
}

func (r *redisCache) Put(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if character.ID <= 0 {
		return dnderr.InvalidArgumentf("character ID must be positive, got %d", character.ID)
	}

	data, err := json.Marshal(character)
	if err != nil {
		return dnderr.Wrapf(err, "failed to marshal character %d", character.ID)
	}

	if err := r.client.Set(ctx, characterKey(character.ID), string(data), r.ttl).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to cache character").
			WithMeta("character_id", character.ID)
	}

	if err := r.track(ctx, character.ID); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to bound character cache").
			WithMeta("character_id", character.ID)
	}

	return nil
}

// track records id as just written, forgets entries past their TTL and evicts
// the oldest entries beyond the size limit.
func (r *redisCache) track(ctx context.Context, id int) error {
	now := r.clock.Now()

	err := r.client.ZAdd(ctx, indexKey, redis.Z{Score: float64(now.UnixMilli()), Member: strconv.Itoa(id)}).Err()
	if err != nil {
		return err
	}

	expired := "(" + strconv.FormatInt(now.Add(-r.ttl).UnixMilli(), 10)
	if err := r.client.ZRemRangeByScore(ctx, indexKey, "-inf", expired).Err(); err != nil {
		return err
	}

	count, err := r.client.ZCard(ctx, indexKey).Result()
	if err != nil {
		return err
	}
	excess := count - int64(r.size)
	if excess <= 0 {
		return nil
	}

	evicted, err := r.client.ZPopMin(ctx, indexKey, excess).Result()
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(evicted))
	for _, z := range evicted {
		keys = append(keys, "character:"+fmt.Sprint(z.Member))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return err
	}

	log.Printf("Evicted %d characters from the Redis cache", len(keys))
	return nil
}

func (r *redisCache) Delete(ctx context.Context, id int) error {
	if err := r.client.Del(ctx, characterKey(id)).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to evict character").
			WithMeta("character_id", id)
	}
	if err := r.client.ZRem(ctx, indexKey, strconv.Itoa(id)).Err(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to evict character").
			WithMeta("character_id", id)
	}
	return nil
}
