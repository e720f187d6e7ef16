package entities

import (
	"strings"

	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// BloodType is the stored code of the forum's blood type select (field_6).
type BloodType string

const (
	BloodTypeUnset    BloodType = ""
	BloodTypeMortal   BloodType = "mo"
	BloodTypeMetic    BloodType = "me"
	BloodTypeHemitheo BloodType = "he"
)

var bloodTypeDescriptions = map[BloodType]string{
	BloodTypeMortal:   "Mortal",
	BloodTypeMetic:    "Metic",
	BloodTypeHemitheo: "Hemitheo",
}

// ParseBloodType validates a field_6 code. The empty string is allowed.
func ParseBloodType(code string) (BloodType, error) {
	b := BloodType(strings.TrimSpace(code))
	if b == BloodTypeUnset {
		return b, nil
	}
	if _, ok := bloodTypeDescriptions[b]; !ok {
		return "", dnderr.Validationf("unknown blood type %q", code).WithMeta("field", "blood_type")
	}
	return b, nil
}

func (b BloodType) String() string {
	return bloodTypeDescriptions[b]
}

// ContactMethod is the stored code of field_21.
type ContactMethod string

const (
	ContactMethodUnset     ContactMethod = ""
	ContactMethodTags      ContactMethod = "tag"
	ContactMethodMessages  ContactMethod = "dms"
	ContactMethodTagsOrDMs ContactMethod = "tdm"
)

var contactMethodDescriptions = map[ContactMethod]string{
	ContactMethodTags:      "Tags",
	ContactMethodMessages:  "Messages",
	ContactMethodTagsOrDMs: "Tags or DMs",
}

func ParseContactMethod(code string) (ContactMethod, error) {
	c := ContactMethod(strings.TrimSpace(code))
	if c == ContactMethodUnset {
		return c, nil
	}
	if _, ok := contactMethodDescriptions[c]; !ok {
		return "", dnderr.Validationf("unknown contact method %q", code).WithMeta("field", "preferred_contact_method")
	}
	return c, nil
}

func (c ContactMethod) String() string {
	return contactMethodDescriptions[c]
}

// MatureContent is the stored code of field_22.
type MatureContent string

const (
	MatureContentUnset MatureContent = ""
	MatureContentYes   MatureContent = "y"
	MatureContentNo    MatureContent = "n"
	MatureContentAsk   MatureContent = "a"
)

var matureContentDescriptions = map[MatureContent]string{
	MatureContentYes: "Yes",
	MatureContentNo:  "No",
	MatureContentAsk: "Ask",
}

func ParseMatureContent(code string) (MatureContent, error) {
	m := MatureContent(strings.TrimSpace(code))
	if m == MatureContentUnset {
		return m, nil
	}
	if _, ok := matureContentDescriptions[m]; !ok {
		return "", dnderr.Validationf("unknown mature content setting %q", code).WithMeta("field", "mature_content")
	}
	return m, nil
}

func (m MatureContent) String() string {
	return matureContentDescriptions[m]
}

// Proficiency is the stored code of one of the four proficiency selects
// (field_27 through field_30).
type Proficiency string

const (
	ProficiencyNone Proficiency = "n"

	// Basic proficiencies
	ProficiencyCombat           Proficiency = "c"
	ProficiencySurvival         Proficiency = "s"
	ProficiencyPokemonKnowledge Proficiency = "pk"
	ProficiencyPokemonHandling  Proficiency = "ph"
	ProficiencyHistory          Proficiency = "h"
	ProficiencyAura             Proficiency = "a"
	ProficiencyInsight          Proficiency = "ins"
	ProficiencyInvestigation    Proficiency = "inv"
	ProficiencyIntimidation     Proficiency = "int"
	ProficiencyPerformance      Proficiency = "perf"
	ProficiencyStyling          Proficiency = "st"
	ProficiencyPersuasion       Proficiency = "pers"

	// Master proficiencies
	ProficiencyCombatMastery           Proficiency = "cm"
	ProficiencySurvivalMastery         Proficiency = "sm"
	ProficiencyPokemonKnowledgeMastery Proficiency = "pkm"
	ProficiencyPokemonHandlingMastery  Proficiency = "phm"
	ProficiencyHistoryMastery          Proficiency = "hm"
	ProficiencyAuraMastery             Proficiency = "am"
	ProficiencyInsightMastery          Proficiency = "insm"
	ProficiencyInvestigationMastery    Proficiency = "invm"
	ProficiencyIntimidationMastery     Proficiency = "intm"
	ProficiencyPerformanceMastery      Proficiency = "perfm"
	ProficiencyStylingMastery          Proficiency = "stm"
	ProficiencyPersuasionMastery       Proficiency = "persm"
)

var proficiencyDescriptions = map[Proficiency]string{
	ProficiencyNone:                    "None",
	ProficiencyCombat:                  "Combat",
	ProficiencySurvival:                "Survival",
	ProficiencyPokemonKnowledge:        "Pokémon Knowledge",
	ProficiencyPokemonHandling:         "Pokémon Handling",
	ProficiencyHistory:                 "History",
	ProficiencyAura:                    "Aura",
	ProficiencyInsight:                 "Insight",
	ProficiencyInvestigation:           "Investigation",
	ProficiencyIntimidation:            "Intimidation",
	ProficiencyPerformance:             "Performance",
	ProficiencyStyling:                 "Styling",
	ProficiencyPersuasion:              "Persuasion",
	ProficiencyCombatMastery:           "Combat Mastery",
	ProficiencySurvivalMastery:         "Survival Mastery",
	ProficiencyPokemonKnowledgeMastery: "Pokémon Knowledge Mastery",
	ProficiencyPokemonHandlingMastery:  "Pokémon Handling Mastery",
	ProficiencyHistoryMastery:          "History Mastery",
	ProficiencyAuraMastery:             "Aura Mastery",
	ProficiencyInsightMastery:          "Insight Mastery",
	ProficiencyInvestigationMastery:    "Investigation Mastery",
	ProficiencyIntimidationMastery:     "Intimidation Mastery",
	ProficiencyPerformanceMastery:      "Performance Mastery",
	ProficiencyStylingMastery:          "Styling Mastery",
	ProficiencyPersuasionMastery:       "Persuasion Mastery",
}

// ParseProficiency validates a proficiency code. An empty select is treated
// as ProficiencyNone.
func ParseProficiency(code string) (Proficiency, error) {
	p := Proficiency(strings.TrimSpace(code))
	if p == "" {
		return ProficiencyNone, nil
	}
	if _, ok := proficiencyDescriptions[p]; !ok {
		return "", dnderr.Validationf("unknown proficiency %q", code).WithMeta("field", "proficiency")
	}
	return p, nil
}

func (p Proficiency) String() string {
	return proficiencyDescriptions[p]
}

// TrainerClass is the forum group of an accepted character.
type TrainerClass string

const (
	TrainerClassAphidoidea TrainerClass = "aphidoidea"
	TrainerClassKrisigos   TrainerClass = "krisigos"
	TrainerClassMnemntia   TrainerClass = "mnemntia"
	TrainerClassSophist    TrainerClass = "sophist"
	TrainerClassStrategos  TrainerClass = "strategos"
	TrainerClassThiarchos  TrainerClass = "thiarchos"

	// TrainerClassValidating marks characters that have not been accepted yet.
	TrainerClassValidating TrainerClass = "validating"

	// TrainerClassNereid marks characters used for testing.
	TrainerClassNereid TrainerClass = "Nereid"
)

var trainerClassColors = map[TrainerClass]int{
	TrainerClassAphidoidea: 0x266C54,
	TrainerClassKrisigos:   0x657925,
	TrainerClassMnemntia:   0x2E6F7F,
	TrainerClassSophist:    0x8E681E,
	TrainerClassStrategos:  0xB36B42,
	TrainerClassThiarchos:  0x8A56A4,
	TrainerClassNereid:     0x5383C6,
}

// ParseTrainerClass reports whether group names a trainer class.
func ParseTrainerClass(group string) (TrainerClass, bool) {
	tc := TrainerClass(group)
	switch tc {
	case TrainerClassAphidoidea, TrainerClassKrisigos, TrainerClassMnemntia,
		TrainerClassSophist, TrainerClassStrategos, TrainerClassThiarchos,
		TrainerClassValidating, TrainerClassNereid:
		return tc, true
	}
	return "", false
}

// IsRestrictedGroup reports whether members of group must not be shown in
// Discord (staff and other non-character accounts).
func IsRestrictedGroup(group string) bool {
	_, ok := ParseTrainerClass(group)
	return !ok
}

// Color returns the embed colour for the class, or 0 when it has none.
func (tc TrainerClass) Color() int {
	return trainerClassColors[tc]
}

func (tc TrainerClass) String() string {
	if tc == "" {
		return ""
	}
	s := string(tc)
	return strings.ToUpper(s[:1]) + s[1:]
}
