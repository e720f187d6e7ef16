package markup

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

const memberCardSelector = "div.member-list-member"

// ParseMemberList reads every member card on the members page. A later card
// with the same id replaces an earlier one.
func ParseMemberList(doc *goquery.Document) (map[int]*entities.MemberCard, error) {
	members := make(map[int]*entities.MemberCard)

	var parseErr error
	doc.Find(memberCardSelector).EachWithBreak(func(i int, div *goquery.Selection) bool {
		card, err := ParseMemberCard(div)
		if err != nil {
			parseErr = dnderr.Wrapf(err, "member card %d", i+1)
			return false
		}
		members[card.ID] = card
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return members, nil
}

// ParseMemberCard reads one member card. The basics list is positional, so
// each entry is matched by both class and index.
func ParseMemberCard(sel *goquery.Selection) (*entities.MemberCard, error) {
	a, err := selectOne(sel, "h1 > span > a[href]")
	if err != nil {
		return nil, err
	}
	id, err := showUserID(a.AttrOr("href", ""))
	if err != nil {
		return nil, err
	}

	basics, err := selectOne(sel, "ul.member-list-member-basics")
	if err != nil {
		return nil, err
	}

	text := func(parent *goquery.Selection, selector string) (string, error) {
		found, err := selectOne(parent, selector)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(found.Text()), nil
	}

	card := &entities.MemberCard{
		ID:       id,
		Username: strings.TrimSpace(a.Text()),
	}

	fields := []struct {
		parent   *goquery.Selection
		selector string
		dst      *string
	}{
		{sel, ".member-list-flavour-text", &card.FlavourText},
		{basics, "li.group:nth-child(1)", &card.Group},
		{basics, "li:nth-child(2)", &card.Age},
		{basics, "li:nth-child(3)", &card.GenderAndPronouns},
		{basics, "li.occupation:nth-child(4)", &card.Occupation},
		{basics, "li.face-claim:nth-child(5)", &card.FaceClaim},
		{basics, "li.blood:nth-child(6)", &card.Blood},
		{basics, "li.inamorata:nth-child(7)", &card.Inamorata},
		{sel, ".member-list-played-by > b", &card.PlayerName},
	}
	for _, f := range fields {
		if *f.dst, err = text(f.parent, f.selector); err != nil {
			return nil, err
		}
	}

	return card, nil
}

func showUserID(href string) (int, error) {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return 0, dnderr.Validationf("invalid profile link %q", href)
	}

	id, err := strconv.Atoi(u.Query().Get("showuser"))
	if err != nil || id <= 0 {
		return 0, dnderr.Validationf("profile link %q has no member id", href)
	}
	return id, nil
}
