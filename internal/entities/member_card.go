package entities

import (
	"fmt"
	"strings"
)

// MemberCard is the summary of a member shown on the forum's member list.
type MemberCard struct {
	ID                int
	Username          string
	FlavourText       string
	Group             string
	Age               string
	GenderAndPronouns string
	Occupation        string
	FaceClaim         string
	Blood             string
	Inamorata         string
	PlayerName        string
}

func (m *MemberCard) ProfileURL(forumURL string) string {
	return fmt.Sprintf("%s/index.php?showuser=%d", strings.TrimRight(forumURL, "/"), m.ID)
}

func (m *MemberCard) Restricted() bool {
	return IsRestrictedGroup(m.Group)
}
