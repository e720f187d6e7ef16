package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/celebi-bot/celebi/internal/handlers/discord/utils"
	characterService "github.com/celebi-bot/celebi/internal/services/character"
)

func (h *Handler) showCharacter(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	char, err := h.characters.GetVisibleCharacter(ctx, opts.String(optCharacter))
	if err != nil {
		return err
	}

	h.edit(r, i, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{buildCharacterEmbed(char, h.forumURL)},
	})
	return nil
}

func (h *Handler) showTeam(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	char, err := h.characters.GetVisibleCharacter(ctx, opts.String(optCharacter))
	if err != nil {
		return err
	}

	if len(char.PersonalComputer) == 0 {
		h.editContent(r, i, fmt.Sprintf("%s doesn't have any Pokémon in their PC.", characterMarkdown(char, h.forumURL)))
		return nil
	}

	content, embeds := teamMessage(char, h.forumURL)
	h.edit(r, i, &discordgo.WebhookEdit{Content: &content, Embeds: &embeds})
	return nil
}

func (h *Handler) showInventory(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error {
	out, err := h.characters.GetInventory(ctx, &characterService.GetInventoryInput{
		Query:       opts.String(optCharacter),
		RequesterID: utils.InvokerID(i),
	})
	if err != nil {
		return err
	}

	if len(out.Inventory.Items) == 0 {
		h.editContent(r, i, fmt.Sprintf("%s doesn't own any items.", characterMarkdown(out.Character, h.forumURL)))
		return nil
	}

	content, embeds := inventoryMessage(out.Character, out.Inventory, h.forumURL)
	h.edit(r, i, &discordgo.WebhookEdit{Content: &content, Embeds: &embeds})
	return nil
}
