package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

func TestNewItemStack(t *testing.T) {
	item, err := entities.NewItemStack(" https://i.imgur.com/ball.png ", " Poké Ball ", " Catches Pokémon. ", 3)
	require.NoError(t, err)
	assert.Equal(t, &entities.ItemStack{
		IconURL:     "https://i.imgur.com/ball.png",
		Name:        "Poké Ball",
		Description: "Catches Pokémon.",
		Stock:       3,
	}, item)

	_, err = entities.NewItemStack("https://i.imgur.com/ball.png", "Poké Ball", "", 0)
	assert.True(t, dnderr.IsValidation(err))

	_, err = entities.NewItemStack("ball.png", "Poké Ball", "", 1)
	assert.True(t, dnderr.IsValidation(err))
}

func TestInventory_TotalStock(t *testing.T) {
	inv := &entities.Inventory{
		Owner: "Bryn Vaughn",
		Items: []entities.ItemStack{{Name: "Poké Ball", Stock: 3}, {Name: "Potion", Stock: 2}},
	}
	assert.Equal(t, 5, inv.TotalStock())
	assert.Zero(t, (&entities.Inventory{}).TotalStock())
}

func TestShop(t *testing.T) {
	shop := &entities.Shop{
		Regions: []entities.Region{{
			Name:  "Ilex Forest",
			Types: map[string]entities.Rarity{"bug": entities.RarityCommon, "grass": entities.RarityCommon, "ghost": entities.RarityRare},
		}},
		BabyPokemon: entities.NewNameSet(" Riolu", "Pichu", ""),
	}

	region, ok := shop.Region("ilex forest")
	require.True(t, ok)
	assert.Equal(t, []string{"bug", "grass"}, region.TypesOf(entities.RarityCommon))

	rarity, ok := region.Rarity("Ghost")
	require.True(t, ok)
	assert.Equal(t, "rare", rarity.String())

	_, ok = shop.Region("Mt. Silver")
	assert.False(t, ok)

	assert.Len(t, shop.BabyPokemon, 2)
	assert.True(t, shop.BabyPokemon.Contains("riolu"))
	assert.Equal(t, []string{"pichu", "riolu"}, shop.BabyPokemon.Sorted())
}
