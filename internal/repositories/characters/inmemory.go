package characters

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// InMemoryCache is a size-bounded LRU with per-entry expiry. It is safe for
// concurrent use.
type InMemoryCache struct {
	lru *expirable.LRU[int, *entities.Character]
}

// NewInMemoryCache creates an LRU cache. Non-positive arguments fall back to
// DefaultCacheSize and DefaultCacheTTL.
func NewInMemoryCache(size int, ttl time.Duration) *InMemoryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &InMemoryCache{
		lru: expirable.NewLRU[int, *entities.Character](size, nil, ttl),
	}
}

func (c *InMemoryCache) Get(_ context.Context, id int) (*entities.Character, bool) {
	character, ok := c.lru.Get(id)
	if !ok {
		return nil, false
	}
	return character.Clone(), true
}

func (c *InMemoryCache) Put(_ context.Context, character *entities.Character) error {
	if character == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if character.ID <= 0 {
		return dnderr.InvalidArgumentf("character ID must be positive, got %d", character.ID)
	}

	c.lru.Add(character.ID, character.Clone())
	return nil
}

func (c *InMemoryCache) Delete(_ context.Context, id int) error {
	c.lru.Remove(id)
	return nil
}

// Len reports the number of live entries.
func (c *InMemoryCache) Len() int {
	return c.lru.Len()
}
