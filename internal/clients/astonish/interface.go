package astonish

//go:generate mockgen -destination=mock/mock_client.go -package=mockastonish . Client

import (
	"context"

	"github.com/celebi-bot/celebi/internal/entities"
)

type Client interface {
	// Login signs in with the configured account. Other methods log in on
	// demand, so calling this is only needed to fail fast at startup.
	Login(ctx context.Context) error

	// GetCharacter returns the member's full profile. With cached set a fresh
	// cache entry is returned without touching the forum.
	GetCharacter(ctx context.Context, memberID int, cached bool) (*entities.Character, error)
	GetCharacterGroup(ctx context.Context, memberID int) (string, error)
	GetInventory(ctx context.Context, memberID int) (*entities.Inventory, error)

	// UpdateCharacter writes the bot-owned profile fields back to the forum.
	UpdateCharacter(ctx context.Context, character *entities.Character) error

	GetAllCharacters(ctx context.Context) (map[int]*entities.MemberCard, error)
	GetShopData(ctx context.Context) (*entities.Shop, error)

	SessionState() SessionState
	ForumURL() string
	Close()
}
