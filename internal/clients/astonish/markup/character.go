package markup

import (
	"strconv"
	"strings"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// Profile field names on the edit form. Only FieldPersonalComputer and
// FieldExtra are ever written by the bot.
const (
	FieldFullName               = "field_1"
	FieldNicknames              = "field_2"
	FieldAge                    = "field_3"
	FieldDateOfBirth            = "field_4"
	FieldGenderAndPronouns      = "field_5"
	FieldBloodType              = "field_6"
	FieldInamorataStatus        = "field_7"
	FieldOrientation            = "field_8"
	FieldMaritalStatus          = "field_9"
	FieldHeight                 = "field_10"
	FieldOccupation             = "field_11"
	FieldHomeRegion             = "field_12"
	FieldFaceClaim              = "field_13"
	FieldArtCredits             = "field_14"
	FieldFlavourText            = "field_15"
	FieldBiography              = "field_16"
	FieldPlotPage               = "field_17"
	FieldPlayerName             = "field_18"
	FieldPlayerPronouns         = "field_19"
	FieldPlayerTimezone         = "field_20"
	FieldPreferredContactMethod = "field_21"
	FieldMatureContent          = "field_22"
	FieldHoverImage             = "field_23"
	FieldTriggersAndWarnings    = "field_24"
	FieldPersonalComputer       = "field_25"
	FieldInamorataAbility       = "field_26"
	FieldProficiency1           = "field_27"
	FieldProficiency2           = "field_28"
	FieldProficiency3           = "field_29"
	FieldProficiency4           = "field_30"
	FieldDevelopmentForum       = "field_31"
	FieldExtra                  = "field_32"
)

// BuildCharacter merges edit form fields and the member's group into a
// validated Character.
func BuildCharacter(m *ModCPFields, group string) (*entities.Character, error) {
	f := func(name string) string {
		return strings.TrimSpace(m.Fields[name])
	}

	c := &entities.Character{
		ID:       m.MemberID,
		Username: m.Username,
		Group:    strings.TrimSpace(group),

		Title:     f("title"),
		Website:   f("website"),
		Location:  f("location"),
		Interests: f("interests"),
		Signature: f("signature"),

		FullName:            f(FieldFullName),
		Nicknames:           f(FieldNicknames),
		Age:                 f(FieldAge),
		DateOfBirth:         f(FieldDateOfBirth),
		GenderAndPronouns:   f(FieldGenderAndPronouns),
		Orientation:         f(FieldOrientation),
		MaritalStatus:       f(FieldMaritalStatus),
		Height:              f(FieldHeight),
		Occupation:          f(FieldOccupation),
		HomeRegion:          f(FieldHomeRegion),
		FaceClaim:           f(FieldFaceClaim),
		ArtCredits:          f(FieldArtCredits),
		FlavourText:         f(FieldFlavourText),
		Biography:           f(FieldBiography),
		PlotPage:            f(FieldPlotPage),
		PlayerName:          f(FieldPlayerName),
		PlayerPronouns:      f(FieldPlayerPronouns),
		TriggersAndWarnings: f(FieldTriggersAndWarnings),
		InamorataAbility:    f(FieldInamorataAbility),
		DevelopmentForum:    f(FieldDevelopmentForum),
		Extra:               entities.ParseExtraData(m.Fields[FieldExtra]),
	}

	if c.ID <= 0 {
		return nil, dnderr.Validationf("member id must be positive, got %d", c.ID)
	}

	var err error
	if c.BloodType, err = entities.ParseBloodType(f(FieldBloodType)); err != nil {
		return nil, err
	}
	if c.InamorataStatus, err = parseYesNo(f(FieldInamorataStatus)); err != nil {
		return nil, err
	}
	if c.PlayerTimezone, err = parseTimezone(f(FieldPlayerTimezone)); err != nil {
		return nil, err
	}
	if c.PreferredContactMethod, err = entities.ParseContactMethod(f(FieldPreferredContactMethod)); err != nil {
		return nil, err
	}
	if c.MatureContent, err = entities.ParseMatureContent(f(FieldMatureContent)); err != nil {
		return nil, err
	}

	if hover := f(FieldHoverImage); hover != "" && hover != "http://" {
		c.HoverImage = hover
	}

	for i, name := range []string{FieldProficiency1, FieldProficiency2, FieldProficiency3, FieldProficiency4} {
		if c.Proficiencies[i], err = entities.ParseProficiency(f(name)); err != nil {
			return nil, err
		}
	}

	if c.PersonalComputer, err = ParsePokemonFragment(m.Fields[FieldPersonalComputer]); err != nil {
		return nil, dnderr.Wrap(err, "personal computer")
	}

	return c, nil
}

// CharacterOverlay returns the form fields the bot owns, rendered from c.
// They replace the same keys of a freshly scraped edit form on submit.
func CharacterOverlay(c *entities.Character) (map[string]string, error) {
	pc, err := RenderPersonalComputer(c.PersonalComputer)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to render personal computer")
	}

	return map[string]string{
		FieldPersonalComputer: pc,
		FieldExtra:            c.Extra.JSON(),
	}, nil
}

func parseYesNo(v string) (bool, error) {
	switch v {
	case "y":
		return true, nil
	case "n", "":
		return false, nil
	}
	return false, dnderr.Validationf("expected y or n, got %q", v).WithMeta("field", "inamorata_status")
}

func parseTimezone(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	tz, err := strconv.Atoi(v)
	if err != nil {
		return 0, dnderr.Validationf("invalid timezone offset %q", v).WithMeta("field", "player_timezone")
	}
	return tz, nil
}
