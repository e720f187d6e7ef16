package discord

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/celebi-bot/celebi/internal/entities"
	"github.com/celebi-bot/celebi/internal/handlers/discord/utils"
	"github.com/celebi-bot/celebi/internal/services"
	characterService "github.com/celebi-bot/celebi/internal/services/character"
	"github.com/celebi-bot/celebi/internal/uuid"
)

const (
	// commandTimeout bounds the forum round trips of one command. Interaction
	// tokens stay valid for 15 minutes.
	commandTimeout = 2 * time.Minute

	// Discord shows at most this many autocomplete choices
	maxChoices = 25

	memberListTTL = 5 * time.Minute
)

// Responder is the part of *discordgo.Session the handler answers
// interactions with.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Handler handles all Discord interactions
type Handler struct {
	characters characterService.Service
	uuid       uuid.Generator
	forumURL   string

	// member list for autocomplete, a single entry keyed by memberListKey
	members *expirable.LRU[string, []*entities.MemberCard]
}

const memberListKey = "members"

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	ForumURL        string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	return &Handler{
		characters: cfg.ServiceProvider.CharacterService,
		uuid:       cfg.ServiceProvider.UUIDGenerator,
		forumURL:   cfg.ForumURL,
		members:    expirable.NewLRU[string, []*entities.MemberCard](1, nil, memberListTTL),
	}
}

// RegisterCommands registers all slash commands with Discord, replacing any
// left over from earlier versions.
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	log.Printf("Registered %d commands", len(registered))
	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	h.handle(ctx, s, i)
}

func (h *Handler) handle(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, r, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(ctx, r, i)
	}
}

type commandFunc func(ctx context.Context, r Responder, i *discordgo.InteractionCreate, opts utils.Options) error

func (h *Handler) handleCommand(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	var (
		run       commandFunc
		ephemeral bool
	)
	switch name {
	case "character":
		run = h.showCharacter
	case "team":
		run = h.showTeam
	case "inventory":
		run, ephemeral = h.showInventory, true
	case "extra":
		run, ephemeral = h.showExtra, true
	case "all":
		run = h.listCharacters
	case "give-pokemon":
		run = h.givePokemon
	case "remove-pokemon":
		run = h.removePokemon
	case "link-profile":
		run, ephemeral = h.linkProfile, true
	default:
		log.Printf("Ignoring unknown command /%s", name)
		return
	}

	// Forum round trips routinely exceed the 3 second response window
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: flags},
	})
	if err != nil {
		log.Printf("Failed to acknowledge /%s: %v", name, err)
		return
	}

	opts := utils.ParseOptions(i)
	if err := run(ctx, r, i, opts); err != nil {
		h.editContent(r, i, "❌ "+h.userMessage(name, err))
	}
}

func (h *Handler) handleAutocomplete(ctx context.Context, r Responder, i *discordgo.InteractionCreate) {
	focused := utils.ParseOptions(i).Focused()
	if focused == nil || focused.Name != optCharacter {
		return
	}
	value, _ := focused.Value.(string)

	choices, err := h.characterChoices(ctx, strings.TrimSpace(value))
	if err != nil {
		log.Printf("Failed to autocomplete characters: %v", err)
		choices = nil
	}

	err = r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Printf("Failed to send autocomplete choices: %v", err)
	}
}

// characterChoices suggests characters whose name contains value. A member id
// suggests that member alone.
func (h *Handler) characterChoices(ctx context.Context, value string) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	cards, ok := h.members.Get(memberListKey)
	if !ok {
		var err error
		cards, err = h.characters.ListCharacters(ctx)
		if err != nil {
			return nil, err
		}
		h.members.Add(memberListKey, cards)
	}

	if id, err := strconv.Atoi(strings.TrimPrefix(value, "#")); err == nil {
		for _, card := range cards {
			if card.ID == id {
				return []*discordgo.ApplicationCommandOptionChoice{{
					Name:  fmt.Sprintf("%s (#%d)", card.Username, card.ID),
					Value: strconv.Itoa(card.ID),
				}}, nil
			}
		}
		return nil, nil
	}

	needle := strings.ToLower(value)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, card := range cards {
		if needle != "" && !strings.Contains(strings.ToLower(card.Username), needle) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  card.Username,
			Value: strconv.Itoa(card.ID),
		})
		if len(choices) == maxChoices {
			break
		}
	}
	return choices, nil
}

func (h *Handler) editContent(r Responder, i *discordgo.InteractionCreate, content string) {
	h.edit(r, i, &discordgo.WebhookEdit{Content: &content})
}

func (h *Handler) edit(r Responder, i *discordgo.InteractionCreate, edit *discordgo.WebhookEdit) {
	if _, err := r.InteractionResponseEdit(i.Interaction, edit); err != nil {
		log.Printf("Failed to edit interaction response: %v", err)
	}
}
