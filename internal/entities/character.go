package entities

import (
	"fmt"
	"slices"
	"strings"
)

// Character is a forum member's role-play profile, assembled from the
// moderator "edit user" form and the public profile page.
type Character struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Group    string `json:"group"`

	Title     string `json:"title"`
	Website   string `json:"website"`
	Location  string `json:"location"`
	Interests string `json:"interests"`
	Signature string `json:"signature"`

	FullName               string           `json:"full_name"`
	Nicknames              string           `json:"nicknames"`
	Age                    string           `json:"age"`
	DateOfBirth            string           `json:"date_of_birth"`
	GenderAndPronouns      string           `json:"gender_and_pronouns"`
	BloodType              BloodType        `json:"blood_type"`
	InamorataStatus        bool             `json:"inamorata_status"`
	Orientation            string           `json:"orientation"`
	MaritalStatus          string           `json:"marital_status"`
	Height                 string           `json:"height"`
	Occupation             string           `json:"occupation"`
	HomeRegion             string           `json:"home_region"`
	FaceClaim              string           `json:"face_claim"`
	ArtCredits             string           `json:"art_credits"`
	FlavourText            string           `json:"flavour_text"`
	Biography              string           `json:"biography"`
	PlotPage               string           `json:"plot_page"`
	PlayerName             string           `json:"player_name"`
	PlayerPronouns         string           `json:"player_pronouns"`
	PlayerTimezone         int              `json:"player_timezone"`
	PreferredContactMethod ContactMethod    `json:"preferred_contact_method"`
	MatureContent          MatureContent    `json:"mature_content"`
	HoverImage             string           `json:"hover_image,omitempty"`
	TriggersAndWarnings    string           `json:"triggers_and_warnings"`
	PersonalComputer       PersonalComputer `json:"personal_computer"`
	InamorataAbility       string           `json:"inamorata_ability"`
	Proficiencies          [4]Proficiency   `json:"proficiencies"`
	DevelopmentForum       string           `json:"development_forum"`
	Extra                  ExtraData        `json:"extra"`
}

// ProfileURL returns the public profile page of the character on the forum
// rooted at forumURL.
func (c *Character) ProfileURL(forumURL string) string {
	return fmt.Sprintf("%s/index.php?showuser=%d", strings.TrimRight(forumURL, "/"), c.ID)
}

// ActiveProficiencies drops unset proficiency slots.
func (c *Character) ActiveProficiencies() []Proficiency {
	active := make([]Proficiency, 0, len(c.Proficiencies))
	for _, p := range c.Proficiencies {
		if p != ProficiencyNone && p != "" {
			active = append(active, p)
		}
	}
	return active
}

// Restricted reports whether this character should not be shown in Discord.
func (c *Character) Restricted() bool {
	return IsRestrictedGroup(c.Group)
}

// TrainerClass returns the character's class, if its group is one.
func (c *Character) TrainerClass() (TrainerClass, bool) {
	return ParseTrainerClass(c.Group)
}

// LinkedTo reports whether the character's extra data links it to discordID.
func (c *Character) LinkedTo(discordID int64) bool {
	return c.Extra.DiscordID != nil && *c.Extra.DiscordID == discordID
}

// Clone returns a deep copy safe to mutate independently of c.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c
	clone.PersonalComputer = slices.Clone(c.PersonalComputer)
	if c.Extra.DiscordID != nil {
		id := *c.Extra.DiscordID
		clone.Extra.DiscordID = &id
	}
	return &clone
}

// FormatTimezone renders a UTC offset the way the forum stores it:
// "0" for UTC and a signed number otherwise.
func FormatTimezone(offset int) string {
	if offset == 0 {
		return "0"
	}
	return fmt.Sprintf("%+d", offset)
}
