package discord

import (
	"errors"
	"log"

	"github.com/celebi-bot/celebi/internal/clients/astonish"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
	characterService "github.com/celebi-bot/celebi/internal/services/character"
)

const (
	msgCharacterNotFound = "I couldn't find that character."
	msgRestricted        = "That character can't be shown here."
	msgUserMismatch      = "You can only view the inventory of a character linked to your account."
	msgForumUnavailable  = "The forum is unavailable right now, please try again later."
	msgCorruptData       = "The forum returned data I couldn't read. The profile may be corrupted, or I need an update."
)

// userMessage turns a command failure into something safe to show in
// Discord. Failures the user cannot act on are logged under a reference id
// that is included in the reply.
func (h *Handler) userMessage(command string, err error) string {
	switch {
	case astonish.IsCharacterNotFound(err):
		return msgCharacterNotFound
	case errors.Is(err, characterService.ErrRestrictedCharacter):
		return msgRestricted
	case errors.Is(err, characterService.ErrUserMismatch):
		return msgUserMismatch
	}

	switch dnderr.GetCode(err) {
	case dnderr.CodeNotFound, dnderr.CodeInvalidArgument, dnderr.CodePermissionDenied:
		return capitalize(innermostMessage(err)) + "."
	case dnderr.CodeUnauthenticated, dnderr.CodeUnavailable:
		log.Printf("Command /%s failed, forum unavailable: %v", command, err)
		return msgForumUnavailable
	case dnderr.CodeValidation:
		// scraped profile data the entities refused
		ref := h.reference()
		log.Printf("Command /%s read invalid forum data [ref %s] meta=%v: %v", command, ref, dnderr.GetMeta(err), err)
		return msgCorruptData + " Reference: `" + ref + "`"
	}

	ref := h.reference()
	log.Printf("Command /%s failed [ref %s] code=%s meta=%v: %v", command, ref, dnderr.GetCode(err), dnderr.GetMeta(err), err)
	return "Something went wrong. Reference: `" + ref + "`"
}

func (h *Handler) reference() string {
	ref := h.uuid.New()
	if len(ref) > 8 {
		ref = ref[:8]
	}
	return ref
}

// innermostMessage returns the message of the deepest coded error in the
// chain, which is the most specific one.
func innermostMessage(err error) string {
	msg := err.Error()
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		var appErr *dnderr.Error
		if errors.As(cur, &appErr) {
			msg = appErr.Message
			cur = appErr
		} else {
			break
		}
	}
	return msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
