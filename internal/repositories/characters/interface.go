package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/celebi-bot/celebi/internal/entities"
)

const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Cache holds recently scraped characters keyed by member id. Entries expire
// after a fixed TTL; a miss is never an error.
type Cache interface {
	// Get returns a copy of the cached character, if present and fresh
	Get(ctx context.Context, id int) (*entities.Character, bool)

	// Put stores a copy of the character, replacing any previous entry
	Put(ctx context.Context, character *entities.Character) error

	// Delete drops the entry for id
	Delete(ctx context.Context, id int) error
}
