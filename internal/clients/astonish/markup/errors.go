package markup

import (
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

type ParseError string

func (e ParseError) Error() string {
	return string(e)
}

const (
	// ErrFormNotFound means the moderator edit form was absent. Upstream this
	// is the only usable signal that a member does not exist.
	ErrFormNotFound ParseError = "edit user form not found"

	// ErrUsernameNotFound means the "Edit a users profile" heading was absent.
	ErrUsernameNotFound ParseError = "edit user heading not found"

	// ErrGroupNotFound means a profile page had no trainer class. Profiles of
	// missing members render without one.
	ErrGroupNotFound ParseError = "trainer class not found"

	// ErrScriptNotFound means the shop's HTML injection script was absent.
	ErrScriptNotFound ParseError = "shop injection script not found"
)

// ElementNotFoundError reports a selector that did not match exactly once.
type ElementNotFoundError struct {
	Selector string
	Matches  int
}

func (e *ElementNotFoundError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("expected one element matching %q, found %d", e.Selector, e.Matches)
	}
	return fmt.Sprintf("element not found: %q", e.Selector)
}

// selectOne finds exactly one element under sel.
func selectOne(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := sel.Find(selector)
	if found.Length() != 1 {
		return nil, &ElementNotFoundError{Selector: selector, Matches: found.Length()}
	}
	return found, nil
}

// IsNotFound reports whether err means the page lacked an element it should
// have had.
func IsNotFound(err error) bool {
	var enf *ElementNotFoundError
	return errors.Is(err, ErrFormNotFound) ||
		errors.Is(err, ErrUsernameNotFound) ||
		errors.As(err, &enf)
}
