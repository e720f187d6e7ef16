package character

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

var (
	// ErrRestrictedCharacter marks staff and other non-character accounts.
	ErrRestrictedCharacter = errors.New("character is restricted")

	// ErrUserMismatch means the character is not linked to the requesting user.
	ErrUserMismatch = errors.New("character is not linked to this user")
)

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return dnderr.InvalidArgument("input cannot be nil")
	}
	return input.Validate()
}

func (i *GetInventoryInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("GetInventoryInput cannot be nil")
	}
	if strings.TrimSpace(i.Query) == "" {
		return dnderr.InvalidArgument("character is required")
	}
	if i.RequesterID == 0 {
		return dnderr.InvalidArgument("requester id is required")
	}
	return nil
}

func (i *GivePokemonInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("GivePokemonInput cannot be nil")
	}
	if strings.TrimSpace(i.Query) == "" {
		return dnderr.InvalidArgument("character is required")
	}
	if i.PokemonID <= 0 {
		return dnderr.InvalidArgumentf("pokemon id must be positive, got %d", i.PokemonID)
	}
	if strings.TrimSpace(i.PokemonName) == "" {
		return dnderr.InvalidArgument("pokemon name is required")
	}
	return nil
}

func (i *RemovePokemonInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("RemovePokemonInput cannot be nil")
	}
	if strings.TrimSpace(i.Query) == "" {
		return dnderr.InvalidArgument("character is required")
	}
	if i.Slot < 0 {
		return dnderr.InvalidArgumentf("slot must be positive, got %d", i.Slot)
	}
	if i.Slot == 0 && strings.TrimSpace(i.Name) == "" {
		return dnderr.InvalidArgument("either a slot or a pokemon name is required")
	}
	if i.Slot > 0 && strings.TrimSpace(i.Name) != "" {
		return dnderr.InvalidArgument("give a slot or a pokemon name, not both")
	}
	return nil
}

func (i *LinkProfileInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("LinkProfileInput cannot be nil")
	}
	if strings.TrimSpace(i.ProfileURL) == "" {
		return dnderr.InvalidArgument("profile url is required")
	}
	if i.DiscordID == 0 {
		return dnderr.InvalidArgument("discord id is required")
	}
	return nil
}

// CheckVisible rejects characters that must not be shown in Discord.
func CheckVisible(c *entities.Character) error {
	if c.Restricted() {
		return dnderr.WrapWithCode(ErrRestrictedCharacter, dnderr.CodePermissionDenied,
			c.Username+" is not a character").
			WithMeta("group", c.Group)
	}
	return nil
}

// CheckOwner rejects requesters the character is not linked to.
func CheckOwner(c *entities.Character, discordID int64) error {
	if !c.LinkedTo(discordID) {
		return dnderr.WrapWithCode(ErrUserMismatch, dnderr.CodePermissionDenied,
			c.Username+" is not linked to your account")
	}
	return nil
}

// ParseProfileURL extracts the member id from a profile link such as
// https://astonish.jcink.net/index.php?showuser=173. The link must point at
// the forum rooted at forumURL.
func ParseProfileURL(raw, forumURL string) (int, error) {
	invalid := func(reason string) error {
		return dnderr.InvalidArgumentf("%q is not a valid profile link: %s", raw, reason).
			WithMeta("url", raw)
	}

	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalid("cannot be parsed")
	}
	if !u.IsAbs() {
		return 0, invalid("must be absolute")
	}

	forum, err := url.Parse(forumURL)
	if err != nil || !strings.EqualFold(u.Host, forum.Host) {
		return 0, invalid("must be on " + forumHost(forum))
	}
	if u.Path != "/index.php" {
		return 0, invalid("must be a profile page")
	}

	memberID, err := strconv.Atoi(u.Query().Get("showuser"))
	if err != nil || memberID <= 0 {
		return 0, invalid("missing member id")
	}
	return memberID, nil
}

func forumHost(forum *url.URL) string {
	if forum == nil {
		return "the forum"
	}
	return forum.Host
}
