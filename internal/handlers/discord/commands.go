package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	optCharacter   = "character"
	optPokemonID   = "pokemon-id"
	optPokemonName = "pokemon"
	optShiny       = "shiny"
	optSpriteURL   = "sprite-url"
	optSlot        = "slot"
	optMember      = "member"
	optProfileURL  = "url"
)

var (
	guildOnly   = false
	adminPerms  = int64(discordgo.PermissionAdministrator)
	minSlot     = float64(1)
	minPokemon  = float64(1)
	characterOp = &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         optCharacter,
		Description:  "The (partial) name or numeric ID of the character",
		Required:     true,
		Autocomplete: true,
	}
)

// Commands returns the slash commands the handler serves
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "character",
			Description:  "Shows a character's profile",
			DMPermission: &guildOnly,
			Options:      []*discordgo.ApplicationCommandOption{characterOp},
		},
		{
			Name:         "team",
			Description:  "Shows a character's Pokémon team (personal computer)",
			DMPermission: &guildOnly,
			Options:      []*discordgo.ApplicationCommandOption{characterOp},
		},
		{
			Name:         "inventory",
			Description:  "Shows your character's item inventory",
			DMPermission: &guildOnly,
			Options:      []*discordgo.ApplicationCommandOption{characterOp},
		},
		{
			Name:                     "extra",
			Description:              "Shows the bot's stored data for a character",
			DMPermission:             &guildOnly,
			DefaultMemberPermissions: &adminPerms,
			Options:                  []*discordgo.ApplicationCommandOption{characterOp},
		},
		{
			Name:                     "all",
			Description:              "Lists every character on the forum",
			DMPermission:             &guildOnly,
			DefaultMemberPermissions: &adminPerms,
		},
		{
			Name:                     "give-pokemon",
			Description:              "Adds a Pokémon to a character's team",
			DMPermission:             &guildOnly,
			DefaultMemberPermissions: &adminPerms,
			Options: []*discordgo.ApplicationCommandOption{
				characterOp,
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optPokemonID,
					Description: "National Pokédex number",
					Required:    true,
					MinValue:    &minPokemon,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optPokemonName,
					Description: "Name to show for the Pokémon",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        optShiny,
					Description: "Whether to add the shiny variant",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optSpriteURL,
					Description: "Custom sprite to show instead of the official artwork",
				},
			},
		},
		{
			Name:                     "remove-pokemon",
			Description:              "Removes a Pokémon from a character's team",
			DMPermission:             &guildOnly,
			DefaultMemberPermissions: &adminPerms,
			Options: []*discordgo.ApplicationCommandOption{
				characterOp,
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optSlot,
					Description: "Position in the team, starting at 1",
					MinValue:    &minSlot,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optPokemonName,
					Description: "Exact name of the Pokémon to remove",
				},
			},
		},
		{
			Name:                     "link-profile",
			Description:              "Links a Discord member to their forum profile",
			DMPermission:             &guildOnly,
			DefaultMemberPermissions: &adminPerms,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        optMember,
					Description: "The member to link",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optProfileURL,
					Description: "Profile page, e.g. https://astonish.jcink.net/index.php?showuser=173",
					Required:    true,
				},
			},
		},
	}
}
