package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/celebi-bot/celebi/internal/handlers/discord/utils"
	characterService "github.com/celebi-bot/celebi/internal/services/character"
)

// Admin commands. Discord hides them from members without the permissions
// set in Commands.

func (h *Handler) showExtra(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	char, err := h.characters.GetCharacter(ctx, opts.String(optCharacter))
	if err != nil {
		return err
	}

	h.editContent(r, i, extraDataBlock(char.Extra))
	return nil
}

func (h *Handler) listCharacters(ctx context.Context, r Responder, i *discordgo.InteractionCreate, _ utils.Options) error {
	cards, err := h.characters.ListCharacters(ctx)
	if err != nil {
		return err
	}
	h.members.Add(memberListKey, cards)

	content := fmt.Sprintf("%d characters:", len(cards))
	h.edit(r, i, &discordgo.WebhookEdit{
		Content: &content,
		Files: []*discordgo.File{{
			Name:        "members.txt",
			ContentType: "text/plain",
			Reader:      strings.NewReader(memberListText(cards)),
		}},
	})
	return nil
}

func (h *Handler) givePokemon(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	char, err := h.characters.GivePokemon(ctx, &characterService.GivePokemonInput{
		Query:           opts.String(optCharacter),
		PokemonID:       opts.Int(optPokemonID),
		PokemonName:     opts.String(optPokemonName),
		Shiny:           opts.Bool(optShiny),
		CustomSpriteURL: opts.String(optSpriteURL),
	})
	if err != nil {
		return err
	}

	count := len(char.PersonalComputer)
	added := char.PersonalComputer[count-1]
	content := fmt.Sprintf("Added a Pokémon to %s's team:", characterMarkdown(char, h.forumURL))
	h.edit(r, i, &discordgo.WebhookEdit{
		Content: &content,
		Embeds:  &[]*discordgo.MessageEmbed{buildPokemonEmbed(added, count-1, count)},
	})
	return nil
}

func (h *Handler) removePokemon(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	out, err := h.characters.RemovePokemon(ctx, &characterService.RemovePokemonInput{
		Query: opts.String(optCharacter),
		Slot:  opts.Int(optSlot),
		Name:  opts.String(optPokemonName),
	})
	if err != nil {
		return err
	}

	h.editContent(r, i, fmt.Sprintf("Removed %s from %s's team.",
		out.Removed.DisplayName(), characterMarkdown(out.Character, h.forumURL)))
	return nil
}

func (h *Handler) linkProfile(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	discordID := opts.UserID(optMember)
	char, err := h.characters.LinkProfile(ctx, &characterService.LinkProfileInput{
		ProfileURL: opts.String(optProfileURL),
		DiscordID:  discordID,
	})
	if err != nil {
		return err
	}

	h.editContent(r, i, fmt.Sprintf("Linked %s to <@%d>!", characterMarkdown(char, h.forumURL), discordID))
	return nil
}
