package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celebi-bot/celebi/internal/clients/astonish/markup"
	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

func TestParsePersonalComputer(t *testing.T) {
	pc, err := markup.ParsePersonalComputer(loadDocument(t, "profile_aphidoidea.html"))
	require.NoError(t, err)
	require.Len(t, pc, 9)

	expected := []struct {
		id    int
		name  string
		shiny bool
	}{
		{7, "Squirtle", false},
		{940, "Wattrel", true},
		{121, "Starmie", false},
		{437, "Bronzong", false},
		{726, "Torracat", false},
		{957, "Tinkatink", true},
		{405, "Luxray", false},
		{133, "Eevee", false},
		{726, "Torracat", true},
	}
	for i, e := range expected {
		assert.Equal(t, e.id, pc[i].ID, "slot %d", i)
		assert.Equal(t, e.name, pc[i].Name, "slot %d", i)
		assert.Equal(t, e.shiny, pc[i].Shiny, "slot %d", i)
	}

	assert.Equal(t, "https://files.jcink.net/uploads2/astonish/variants/normal/7a.png", pc[0].CustomSpriteURL)

	_, err = markup.RenderPersonalComputer(pc)
	assert.NoError(t, err)
}

func TestParsePersonalComputer_Empty(t *testing.T) {
	pc, err := markup.ParsePersonalComputer(loadDocument(t, "profile_admin.html"))
	require.NoError(t, err)
	assert.Empty(t, pc)
}

func TestPersonalComputer_RoundTrip(t *testing.T) {
	pc := entities.PersonalComputer{
		{ID: 282, Name: "Gardevoir"},
		{ID: 448, Name: "Lucario", Shiny: true},
		{ID: 7, Name: "Squirtle", CustomSpriteURL: "https://files.jcink.net/uploads2/astonish/variants/normal/7a.png"},
		{ID: 122, Name: "Mr. Mime & <Friends>"},
	}

	rendered, err := markup.RenderPersonalComputer(pc)
	require.NoError(t, err)
	assert.Contains(t, rendered, `<div class="pkmn-display shiny" data-pkmn-id="448">`)
	assert.Contains(t, rendered, `<i class="fa-solid fa-sparkles"></i>`)

	parsed, err := markup.ParsePokemonFragment(rendered)
	require.NoError(t, err)
	require.Len(t, parsed, len(pc))

	for i := range pc {
		assert.Equal(t, pc[i].ID, parsed[i].ID)
		assert.Equal(t, pc[i].Name, parsed[i].Name)
		assert.Equal(t, pc[i].Shiny, parsed[i].Shiny)
		assert.Equal(t, pc[i].SpriteURL(), parsed[i].SpriteURL())
	}
}

func TestParsePokemonFragment(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		pc, err := markup.ParsePokemonFragment("  \n ")
		require.NoError(t, err)
		assert.Empty(t, pc)
	})

	t.Run("id from sprite file name", func(t *testing.T) {
		pc, err := markup.ParsePokemonFragment(`<div class="pkmn-display"><div class="pkmn-name">Pikachu</div><img src="https://example.com/sprites/25.png"></div>`)
		require.NoError(t, err)
		require.Len(t, pc, 1)
		assert.Equal(t, 25, pc[0].ID)
	})

	t.Run("unparseable sprite name", func(t *testing.T) {
		_, err := markup.ParsePokemonFragment(`<div class="pkmn-display"><div class="pkmn-name">Pikachu</div><img src="https://example.com/sprites/pika.png"></div>`)
		require.Error(t, err)
		assert.True(t, dnderr.IsValidation(err))
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := markup.ParsePokemonFragment(`<div class="pkmn-display" data-pkmn-id="25"><img src="https://example.com/25.png"></div>`)
		assert.True(t, markup.IsNotFound(err))
	})

	t.Run("stray element", func(t *testing.T) {
		_, err := markup.ParsePokemonFragment(`<p>notes</p>`)
		assert.Error(t, err)
	})
}
