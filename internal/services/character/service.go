package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter . Service

import (
	"context"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// Service defines the character service interface
type Service interface {
	// GetCharacter resolves a member id or a username and fetches the character.
	GetCharacter(ctx context.Context, query string) (*entities.Character, error)

	// GetVisibleCharacter is GetCharacter for characters shown in Discord.
	// Restricted characters are rejected with ErrRestrictedCharacter.
	GetVisibleCharacter(ctx context.Context, query string) (*entities.Character, error)

	// GetInventory returns a character's inventory to the Discord user
	// linked to it, and to nobody else.
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// ListCharacters lists unrestricted member cards ordered by member id.
	ListCharacters(ctx context.Context) ([]*entities.MemberCard, error)

	GivePokemon(ctx context.Context, input *GivePokemonInput) (*entities.Character, error)
	RemovePokemon(ctx context.Context, input *RemovePokemonInput) (*RemovePokemonOutput, error)

	// LinkProfile stores a Discord user id in the character's extra data.
	LinkProfile(ctx context.Context, input *LinkProfileInput) (*entities.Character, error)
}

// GetInventoryInput names the character and who is asking
type GetInventoryInput struct {
	Query       string
	RequesterID int64
}

type GetInventoryOutput struct {
	Character *entities.Character
	Inventory *entities.Inventory
}

// GivePokemonInput adds one Pokémon to the end of a character's PC
type GivePokemonInput struct {
	Query           string
	PokemonID       int
	PokemonName     string
	Shiny           bool
	CustomSpriteURL string
}

// RemovePokemonInput removes by 1-based slot when Slot is set, otherwise by
// exact name (first match).
type RemovePokemonInput struct {
	Query string
	Slot  int
	Name  string
}

type RemovePokemonOutput struct {
	Character *entities.Character
	Removed   entities.Pokemon
}

// LinkProfileInput links the profile at ProfileURL to a Discord user
type LinkProfileInput struct {
	ProfileURL string
	DiscordID  int64
}

type service struct {
	client astonish.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Client astonish.Client // Required
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Client == nil {
		panic("astonish client is required")
	}

	return &service{
		client: cfg.Client,
	}
}

func (s *service) GetCharacter(ctx context.Context, query string) (*entities.Character, error) {
	memberID, err := s.resolveMemberID(ctx, query)
	if err != nil {
		return nil, err
	}

	return s.client.GetCharacter(ctx, memberID, true)
}

func (s *service) GetVisibleCharacter(ctx context.Context, query string) (*entities.Character, error) {
	character, err := s.GetCharacter(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := CheckVisible(character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *service) GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid inventory request").
			WithMeta("operation", "GetInventory")
	}

	character, err := s.GetVisibleCharacter(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	if err := CheckOwner(character, input.RequesterID); err != nil {
		return nil, err
	}

	inv, err := s.client.GetInventory(ctx, character.ID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get inventory of character %d", character.ID).
			WithMeta("member_id", character.ID)
	}

	return &GetInventoryOutput{
		Character: character,
		Inventory: inv,
	}, nil
}

func (s *service) ListCharacters(ctx context.Context) ([]*entities.MemberCard, error) {
	cards, err := s.client.GetAllCharacters(ctx)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters")
	}

	list := make([]*entities.MemberCard, 0, len(cards))
	for _, card := range cards {
		if !card.Restricted() {
			list = append(list, card)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})

	return list, nil
}

func (s *service) GivePokemon(ctx context.Context, input *GivePokemonInput) (*entities.Character, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid give pokemon request").
			WithMeta("operation", "GivePokemon")
	}

	pokemon, err := entities.NewPokemon(input.PokemonID, input.PokemonName, input.Shiny, input.CustomSpriteURL)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid pokemon")
	}

	character, err := s.fetchForUpdate(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	character.PersonalComputer.Add(*pokemon)
	if err := s.client.UpdateCharacter(ctx, character); err != nil {
		return nil, err
	}

	log.Printf("Gave %s (#%d) to character %d", pokemon.DisplayName(), pokemon.ID, character.ID)
	return character, nil
}

func (s *service) RemovePokemon(ctx context.Context, input *RemovePokemonInput) (*RemovePokemonOutput, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid remove pokemon request").
			WithMeta("operation", "RemovePokemon")
	}

	character, err := s.fetchForUpdate(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	index := input.Slot - 1
	if input.Slot == 0 {
		index = character.PersonalComputer.IndexOfName(strings.TrimSpace(input.Name))
		if index < 0 {
			return nil, dnderr.NotFoundf("%s has no pokemon named %q", character.Username, input.Name).
				WithMeta("pokemon", input.Name)
		}
	}

	removed, err := character.PersonalComputer.RemoveAt(index)
	if err != nil {
		return nil, dnderr.Wrapf(err, "%s has %d pokemon", character.Username, len(character.PersonalComputer))
	}

	if err := s.client.UpdateCharacter(ctx, character); err != nil {
		return nil, err
	}

	log.Printf("Removed %s (#%d) from character %d", removed.DisplayName(), removed.ID, character.ID)
	return &RemovePokemonOutput{
		Character: character,
		Removed:   removed,
	}, nil
}

func (s *service) LinkProfile(ctx context.Context, input *LinkProfileInput) (*entities.Character, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid link profile request").
			WithMeta("operation", "LinkProfile")
	}

	memberID, err := ParseProfileURL(input.ProfileURL, s.client.ForumURL())
	if err != nil {
		return nil, err
	}

	character, err := s.client.GetCharacter(ctx, memberID, false)
	if err != nil {
		return nil, err
	}

	discordID := input.DiscordID
	character.Extra.DiscordID = &discordID
	if err := s.client.UpdateCharacter(ctx, character); err != nil {
		return nil, dnderr.Wrapf(err, "failed to link profile %d", memberID).
			WithMeta("member_id", memberID)
	}

	log.Printf("Linked profile %q (%d) to Discord user %d", character.Username, character.ID, discordID)
	return character, nil
}

// fetchForUpdate skips the cache so a stale copy is never written back.
func (s *service) fetchForUpdate(ctx context.Context, query string) (*entities.Character, error) {
	memberID, err := s.resolveMemberID(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.client.GetCharacter(ctx, memberID, false)
}

// resolveMemberID accepts a member id, or a username matched against the
// member list: exact (case-insensitive) first, then a unique substring.
func (s *service) resolveMemberID(ctx context.Context, query string) (int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, dnderr.InvalidArgument("character name or id is required")
	}

	if id, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		if id <= 0 {
			return 0, dnderr.InvalidArgumentf("member id must be positive, got %d", id)
		}
		return id, nil
	}

	cards, err := s.client.GetAllCharacters(ctx)
	if err != nil {
		return 0, dnderr.Wrap(err, "failed to look up character by name")
	}

	return matchUsername(cards, query)
}

func matchUsername(cards map[int]*entities.MemberCard, query string) (int, error) {
	needle := strings.ToLower(query)

	var partial []int
	for id, card := range cards {
		if card.Restricted() {
			continue
		}
		name := strings.ToLower(card.Username)
		if name == needle {
			return id, nil
		}
		if strings.Contains(name, needle) {
			partial = append(partial, id)
		}
	}

	switch len(partial) {
	case 0:
		return 0, dnderr.NotFoundf("could not find a character matching %q", query).
			WithMeta("query", query)
	case 1:
		return partial[0], nil
	default:
		sort.Ints(partial)
		return 0, dnderr.InvalidArgumentf("%q matches %d characters, be more specific", query, len(partial)).
			WithMeta("query", query).
			WithMeta("matches", partial)
	}
}
