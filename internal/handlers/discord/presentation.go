package discord

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/celebi-bot/celebi/internal/entities"
)

const (
	// Discord rejects messages with more embeds than this
	maxEmbeds = 10

	forumName    = "ASTONISH"
	forumIconURL = "https://cdn.discordapp.com/icons/1143929947132538931/df2d24f751203a91585ad112a39edb1a.png"

	unknownValue = "?"
)

// characterMarkdown renders the username as a link to the profile
func characterMarkdown(c *entities.Character, forumURL string) string {
	return fmt.Sprintf("[%s](%s)", discordEscape(c.Username), c.ProfileURL(forumURL))
}

func discordEscape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "*", `\*`, "_", `\_`, "~", `\~`, "`", "\\`", "|", `\|`, ">", `\>`, "[", `\[`, "]", `\]`)
	return r.Replace(s)
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return unknownValue
	}
	return s
}

func buildCharacterEmbed(c *entities.Character, forumURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: c.Username,
		URL:   c.ProfileURL(forumURL),
		Author: &discordgo.MessageEmbedAuthor{
			Name:    forumName,
			URL:     strings.TrimRight(forumURL, "/") + "/",
			IconURL: forumIconURL,
		},
	}

	if c.FlavourText != "" {
		embed.Description = fmt.Sprintf(">>> *%s*", c.FlavourText)
	}
	if c.HoverImage != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: c.HoverImage}
	}

	trainerClass, _ := c.TrainerClass()
	embed.Color = trainerClass.Color()

	proficiencies := make([]string, 0, len(c.Proficiencies))
	for _, p := range c.ActiveProficiencies() {
		proficiencies = append(proficiencies, p.String())
	}
	if len(proficiencies) == 0 {
		proficiencies = append(proficiencies, entities.ProficiencyNone.String())
	}

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Gender", Value: orUnknown(c.GenderAndPronouns), Inline: true},
		{Name: "Age", Value: orUnknown(c.Age), Inline: true},
		{Name: "Birthday", Value: orUnknown(c.DateOfBirth), Inline: true},
		{Name: "Home Region", Value: orUnknown(c.HomeRegion), Inline: true},
		{Name: "Trainer Class", Value: orUnknown(trainerClass.String()), Inline: true},
		{Name: "Blood Type", Value: orUnknown(c.BloodType.String()), Inline: true},
		{Name: "Occupation", Value: orUnknown(c.Occupation)},
		{Name: "Proficiencies", Value: strings.Join(proficiencies, ", ")},
	}

	return embed
}

func buildPokemonEmbed(p entities.Pokemon, index, count int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       p.DisplayName(),
		Description: fmt.Sprintf("**No. %d**", p.ID),
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: p.SpriteURL()},
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d/%d", index+1, count)},
	}
}

func buildItemStackEmbed(item entities.ItemStack) *discordgo.MessageEmbed {
	title := item.Name
	if item.Stock > 1 {
		title = fmt.Sprintf("%s (x%d)", item.Name, item.Stock)
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: item.Description,
		Thumbnail:   &discordgo.MessageEmbedThumbnail{URL: item.IconURL},
	}
}

// teamMessage lists the first maxEmbeds Pokémon of a character's PC
func teamMessage(c *entities.Character, forumURL string) (string, []*discordgo.MessageEmbed) {
	count := len(c.PersonalComputer)
	content := fmt.Sprintf("%s has %d Pokémon on their team:", characterMarkdown(c, forumURL), count)
	if count > maxEmbeds {
		content = fmt.Sprintf("%s has %d Pokémon on their team (%d not shown):",
			characterMarkdown(c, forumURL), count, count-maxEmbeds)
	}

	embeds := make([]*discordgo.MessageEmbed, 0, min(count, maxEmbeds))
	for i, p := range c.PersonalComputer {
		if i == maxEmbeds {
			break
		}
		embeds = append(embeds, buildPokemonEmbed(p, i, count))
	}
	return content, embeds
}

func inventoryMessage(c *entities.Character, inv *entities.Inventory, forumURL string) (string, []*discordgo.MessageEmbed) {
	total := inv.TotalStock()
	content := fmt.Sprintf("%s owns %d item%s", characterMarkdown(c, forumURL), total, plural(total))

	if remaining := len(inv.Items) - maxEmbeds; remaining > 0 {
		content += fmt.Sprintf(" (%d stack%s not shown):", remaining, plural(remaining))
	} else {
		content += ":"
	}

	embeds := make([]*discordgo.MessageEmbed, 0, min(len(inv.Items), maxEmbeds))
	for i, item := range inv.Items {
		if i == maxEmbeds {
			break
		}
		embeds = append(embeds, buildItemStackEmbed(item))
	}
	return content, embeds
}

// memberListText renders one line per member, as attached by /all
func memberListText(cards []*entities.MemberCard) string {
	var b strings.Builder
	for _, card := range cards {
		fmt.Fprintf(&b, "#%3d: %s\n", card.ID, card.Username)
	}
	return b.String()
}

func extraDataBlock(extra entities.ExtraData) string {
	// ExtraData always marshals
	data, _ := json.MarshalIndent(extra, "", "  ")
	return "```json\n" + string(data) + "\n```"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
