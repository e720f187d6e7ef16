package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

func TestParseEnums(t *testing.T) {
	b, err := entities.ParseBloodType(" me ")
	require.NoError(t, err)
	assert.Equal(t, entities.BloodTypeMetic, b)
	assert.Equal(t, "Metic", b.String())

	c, err := entities.ParseContactMethod("tdm")
	require.NoError(t, err)
	assert.Equal(t, "Tags or DMs", c.String())

	m, err := entities.ParseMatureContent("a")
	require.NoError(t, err)
	assert.Equal(t, entities.MatureContentAsk, m)

	p, err := entities.ParseProficiency("pkm")
	require.NoError(t, err)
	assert.Equal(t, "Pokémon Knowledge Mastery", p.String())
}

func TestParseEnums_Empty(t *testing.T) {
	b, err := entities.ParseBloodType("")
	require.NoError(t, err)
	assert.Equal(t, entities.BloodTypeUnset, b)
	assert.Empty(t, b.String())

	c, err := entities.ParseContactMethod("")
	require.NoError(t, err)
	assert.Equal(t, entities.ContactMethodUnset, c)

	m, err := entities.ParseMatureContent(" ")
	require.NoError(t, err)
	assert.Equal(t, entities.MatureContentUnset, m)

	p, err := entities.ParseProficiency("")
	require.NoError(t, err)
	assert.Equal(t, entities.ProficiencyNone, p)
}

func TestParseEnums_Unknown(t *testing.T) {
	_, err := entities.ParseBloodType("xx")
	assert.True(t, dnderr.IsValidation(err))
	assert.Equal(t, "blood_type", dnderr.GetMeta(err)["field"])

	_, err = entities.ParseContactMethod("email")
	assert.True(t, dnderr.IsValidation(err))

	_, err = entities.ParseMatureContent("maybe")
	assert.True(t, dnderr.IsValidation(err))

	_, err = entities.ParseProficiency("cooking")
	assert.True(t, dnderr.IsValidation(err))
}

func TestParseTrainerClass(t *testing.T) {
	for _, group := range []string{"aphidoidea", "krisigos", "mnemntia", "sophist", "strategos", "thiarchos", "validating", "Nereid"} {
		_, ok := entities.ParseTrainerClass(group)
		assert.True(t, ok, group)
		assert.False(t, entities.IsRestrictedGroup(group), group)
	}

	for _, group := range []string{"Admin", "Members", "Krisigos", ""} {
		_, ok := entities.ParseTrainerClass(group)
		assert.False(t, ok, group)
		assert.True(t, entities.IsRestrictedGroup(group), group)
	}

	assert.Zero(t, entities.TrainerClassValidating.Color())
}
