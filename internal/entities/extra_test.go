package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celebi-bot/celebi/internal/entities"
)

func TestParseExtraData(t *testing.T) {
	t.Run("linked", func(t *testing.T) {
		extra := entities.ParseExtraData(`{"version": 1, "discord_id": 1234567890123}`)
		assert.Equal(t, entities.ExtraDataVersion, extra.Version)
		require.NotNil(t, extra.DiscordID)
		assert.Equal(t, int64(1234567890123), *extra.DiscordID)
	})

	// anything unusable falls back to an empty record
	for name, raw := range map[string]string{
		"empty":           "",
		"whitespace":      "  \n",
		"malformed":       "{version: 1",
		"unknown version": `{"version": 2, "discord_id": 5}`,
		"no version":      `{"discord_id": 5}`,
		"wrong type":      `{"version": 1, "discord_id": "five"}`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, entities.NewExtraData(), entities.ParseExtraData(raw))
		})
	}
}

func TestExtraData_JSON(t *testing.T) {
	assert.JSONEq(t, `{"version": 1, "discord_id": null}`, entities.NewExtraData().JSON())

	id := int64(99)
	extra := entities.ExtraData{DiscordID: &id}
	raw := extra.JSON()
	assert.JSONEq(t, `{"version": 1, "discord_id": 99}`, raw)
	assert.Equal(t, entities.ExtraData{Version: 1, DiscordID: &id}, entities.ParseExtraData(raw))
}
