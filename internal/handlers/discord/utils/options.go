package utils

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Options indexes the top-level options of a slash command by name.
// Accessors return the zero value for options the user left out, and never
// panic on a type mismatch.
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// ParseOptions indexes the options of a command interaction
func ParseOptions(i *discordgo.InteractionCreate) Options {
	opts := make(Options)
	if i == nil || i.Type != discordgo.InteractionApplicationCommand && i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return opts
	}
	for _, opt := range i.ApplicationCommandData().Options {
		opts[opt.Name] = opt
	}
	return opts
}

func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

// String returns a string option, trimmed
func (o Options) String(name string) string {
	opt, ok := o[name]
	if !ok {
		return ""
	}
	s, _ := opt.Value.(string)
	return strings.TrimSpace(s)
}

// Int returns an integer option. Discord delivers numbers as JSON floats.
func (o Options) Int(name string) int {
	opt, ok := o[name]
	if !ok {
		return 0
	}
	switch v := opt.Value.(type) {
	case float64:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (o Options) Bool(name string) bool {
	opt, ok := o[name]
	if !ok {
		return false
	}
	b, _ := opt.Value.(bool)
	return b
}

// UserID returns the snowflake of a user option as an integer
func (o Options) UserID(name string) int64 {
	opt, ok := o[name]
	if !ok {
		return 0
	}
	s, _ := opt.Value.(string)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Focused returns the option being autocompleted, if any
func (o Options) Focused() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range o {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// InvokerID returns the snowflake of whoever ran the command, or 0.
func InvokerID(i *discordgo.InteractionCreate) int64 {
	var user *discordgo.User
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
	case i.User != nil:
		user = i.User
	default:
		return 0
	}

	id, err := strconv.ParseInt(user.ID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}
