package markup

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	userProfileLinkSelector = `#mobile-menu-activate > li[title="user profile"] > a[href*="showuser="]`
	trainerClassSelector    = "#main-profile-trainer-class > span.description"

	// guestMemberID is what the navigation links to when nobody is logged in.
	guestMemberID = "0"
)

// NewDocument parses a full HTML page.
func NewDocument(r io.Reader) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(r)
}

// IsLoggedIn inspects the navigation's "user profile" link. The forum serves
// pages with 200 whether or not the session is valid, so this is the only way
// to tell: a guest's link points at member 0.
func IsLoggedIn(doc *goquery.Document) (bool, error) {
	a, err := selectOne(doc.Selection, userProfileLinkSelector)
	if err != nil {
		return false, err
	}

	href, _ := a.Attr("href")
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return false, &ElementNotFoundError{Selector: userProfileLinkSelector}
	}

	return u.Query().Get("showuser") != guestMemberID, nil
}

// ParseCharacterGroup reads the trainer class description from a public
// profile page.
func ParseCharacterGroup(doc *goquery.Document) (string, error) {
	span, err := selectOne(doc.Selection, trainerClassSelector)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGroupNotFound, err)
	}
	return strings.TrimSpace(span.Text()), nil
}
