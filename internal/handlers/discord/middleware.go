package discord

import (
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer recoverInteraction(handlerName, s, i)

		handler(s, i)
	}
}

func recoverInteraction(handlerName string, r Responder, i *discordgo.InteractionCreate) {
	if p := recover(); p != nil {
		log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, p, debug.Stack())
		respondWithError(r, i, "An unexpected error occurred.")
	}
}

// respondWithError attempts to send an error message to the user, whether or
// not the interaction was acknowledged already.
func respondWithError(r Responder, i *discordgo.InteractionCreate, message string) {
	content := "❌ " + message

	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}

	if _, err := r.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		log.Printf("Failed to send error response to user: %s", message)
	}
}
