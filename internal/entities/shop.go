package entities

import (
	"sort"
	"strings"
)

// Rarity of a Pokémon type within a region.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityRare
)

func (r Rarity) String() string {
	if r == RarityRare {
		return "rare"
	}
	return "common"
}

// Region is a catchable area of the in-universe map.
type Region struct {
	Name  string
	Types map[string]Rarity
}

// Rarity returns the rarity of pokemonType in the region.
func (r *Region) Rarity(pokemonType string) (Rarity, bool) {
	rarity, ok := r.Types[strings.ToLower(pokemonType)]
	return rarity, ok
}

// TypesOf lists the region's types of the given rarity, sorted.
func (r *Region) TypesOf(rarity Rarity) []string {
	var types []string
	for t, rr := range r.Types {
		if rr == rarity {
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// NameSet is a case-folded set of Pokémon names.
type NameSet map[string]struct{}

// NewNameSet folds and trims names; empty entries are dropped.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func (s NameSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Sorted returns the members in alphabetical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Shop is the store's catching configuration. It is treated as immutable
// once parsed; refresh it by fetching again.
type Shop struct {
	Regions        []Region
	BabyPokemon    NameSet
	Stage1Starters NameSet
	Stage2Starters NameSet
	Stage3Starters NameSet
}

// Region looks a region up by name, case-insensitively.
func (s *Shop) Region(name string) (*Region, bool) {
	for i := range s.Regions {
		if strings.EqualFold(s.Regions[i].Name, name) {
			return &s.Regions[i], true
		}
	}
	return nil, false
}
