package testutils

import (
	"github.com/celebi-bot/celebi/internal/entities"
)

// CreateTestCharacter creates a character with a small personal computer
// and every select populated.
func CreateTestCharacter(id int, username, group string) *entities.Character {
	return &entities.Character{
		ID:                     id,
		Username:               username,
		Group:                  group,
		FullName:               username,
		Age:                    "27",
		GenderAndPronouns:      "they/them",
		BloodType:              entities.BloodTypeMortal,
		HomeRegion:             "Ilex",
		PlayerName:             "tester",
		PlayerTimezone:         -5,
		PreferredContactMethod: entities.ContactMethodTags,
		MatureContent:          entities.MatureContentAsk,
		PersonalComputer: entities.PersonalComputer{
			{ID: 25, Name: "Pikachu"},
			{ID: 133, Name: "Eevee", Shiny: true},
		},
		Proficiencies: [4]entities.Proficiency{
			entities.ProficiencyCombat,
			entities.ProficiencyNone,
			entities.ProficiencyNone,
			entities.ProficiencyNone,
		},
		Extra: entities.NewExtraData(),
	}
}

// CreateTestMemberCard creates a member list entry matching CreateTestCharacter.
func CreateTestMemberCard(id int, username, group string) *entities.MemberCard {
	return &entities.MemberCard{
		ID:                id,
		Username:          username,
		Group:             group,
		Age:               "27",
		GenderAndPronouns: "they/them",
		Blood:             "Mortal",
		Inamorata:         "No",
		PlayerName:        "tester",
	}
}

// LinkedTo sets the character's Discord link and returns it.
func LinkedTo(c *entities.Character, discordID int64) *entities.Character {
	c.Extra = entities.ExtraData{Version: entities.ExtraDataVersion, DiscordID: &discordID}
	return c
}
