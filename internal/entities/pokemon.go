package entities

import (
	"fmt"
	"net/url"
	"strings"

	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

const officialArtworkURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"

// Pokemon is one entry of a character's personal computer.
type Pokemon struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Shiny           bool   `json:"shiny"`
	CustomSpriteURL string `json:"custom_sprite_url,omitempty"`
}

// NewPokemon validates and builds a Pokemon. customSpriteURL may be empty.
func NewPokemon(id int, name string, shiny bool, customSpriteURL string) (*Pokemon, error) {
	if id <= 0 {
		return nil, dnderr.Validationf("pokemon id must be positive, got %d", id).WithMeta("field", "id")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dnderr.Validationf("pokemon %d has no name", id).WithMeta("field", "name")
	}

	customSpriteURL = strings.TrimSpace(customSpriteURL)
	if customSpriteURL != "" {
		if err := validateHTTPURL(customSpriteURL); err != nil {
			return nil, dnderr.Wrapf(err, "pokemon %d sprite", id)
		}
	}

	return &Pokemon{
		ID:              id,
		Name:            name,
		Shiny:           shiny,
		CustomSpriteURL: customSpriteURL,
	}, nil
}

// SpriteURL returns the custom sprite if one is set, otherwise the official artwork.
func (p *Pokemon) SpriteURL() string {
	if p.CustomSpriteURL != "" {
		return p.CustomSpriteURL
	}

	shiny := ""
	if p.Shiny {
		shiny = "/shiny"
	}
	return fmt.Sprintf("%s%s/%d.png", officialArtworkURL, shiny, p.ID)
}

// DisplayName appends a shiny marker to the name.
func (p *Pokemon) DisplayName() string {
	if p.Shiny {
		return p.Name + " (Shiny)"
	}
	return p.Name
}

// PersonalComputer is the ordered list of a character's Pokémon.
// Order is display order and is preserved on write-back.
type PersonalComputer []Pokemon

// Add appends a Pokémon to the end of the list.
func (pc *PersonalComputer) Add(p Pokemon) {
	*pc = append(*pc, p)
}

// RemoveAt removes the entry at index and returns it.
func (pc *PersonalComputer) RemoveAt(index int) (Pokemon, error) {
	if index < 0 || index >= len(*pc) {
		return Pokemon{}, dnderr.NotFoundf("no pokemon in slot %d", index+1).
			WithMeta("index", index)
	}

	removed := (*pc)[index]
	*pc = append((*pc)[:index], (*pc)[index+1:]...)
	return removed, nil
}

// IndexOfName returns the index of the first entry whose name matches
// exactly, or -1.
func (pc PersonalComputer) IndexOfName(name string) int {
	for i, p := range pc {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return dnderr.Validationf("invalid url %q: %v", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return dnderr.Validationf("invalid url %q: expected an absolute http(s) url", raw)
	}
	return nil
}
