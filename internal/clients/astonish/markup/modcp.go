package markup

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

var editProfileTitle = regexp.MustCompile(`(?i)^Edit a users profile: (.+)$`)

// ModCPFields is everything scraped from the moderator "edit user" page.
type ModCPFields struct {
	// Username comes from the page heading, not the form.
	Username string

	// MemberID is taken from the form's submission URL.
	MemberID int

	// Action is the absolute URL the form submits to.
	Action *url.URL

	// Fields holds every successful form control, keyed by name. The forum
	// expects the whole set back on submit.
	Fields map[string]string
}

// ParseModCPFields locates the edit form on the page and extracts its
// fields. base is the forum root; only a form posting back to it counts.
// The form is looked up first: for a missing member the forum still renders
// the heading, with an empty name.
func ParseModCPFields(doc *goquery.Document, base *url.URL) (*ModCPFields, error) {
	var (
		form   *goquery.Selection
		action *url.URL
	)
	doc.Find("form").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if u, ok := editFormAction(sel, base); ok {
			form, action = sel, u
			return false
		}
		return true
	})
	if form == nil {
		return nil, ErrFormNotFound
	}

	username, err := parseEditUsername(doc)
	if err != nil {
		return nil, err
	}

	memberID, err := strconv.Atoi(action.Query().Get("memberid"))
	if err != nil || memberID <= 0 {
		return nil, dnderr.Validationf("edit form has invalid memberid %q", action.Query().Get("memberid"))
	}

	return &ModCPFields{
		Username: username,
		MemberID: memberID,
		Action:   action,
		Fields:   formValues(form),
	}, nil
}

func parseEditUsername(doc *goquery.Document) (string, error) {
	var username string
	doc.Find("div.maintitle").EachWithBreak(func(_ int, div *goquery.Selection) bool {
		if m := editProfileTitle.FindStringSubmatch(strings.TrimSpace(div.Text())); m != nil {
			username = strings.TrimSpace(m[1])
			return false
		}
		return true
	})

	if username == "" {
		return "", ErrUsernameNotFound
	}
	return username, nil
}

// editFormAction checks that form is the "ibform" posting to
// /index.php?act=modcp&CODE=compedit&memberid=N on the forum's origin.
func editFormAction(form *goquery.Selection, base *url.URL) (*url.URL, bool) {
	if form.AttrOr("name", "") != "ibform" {
		return nil, false
	}
	if !strings.EqualFold(form.AttrOr("method", "get"), "post") {
		return nil, false
	}

	ref, err := url.Parse(strings.TrimSpace(form.AttrOr("action", "")))
	if err != nil {
		return nil, false
	}
	action := base.ResolveReference(ref)

	q := action.Query()
	if !SameOrigin(action, base) ||
		action.Path != "/index.php" ||
		q.Get("act") != "modcp" ||
		q.Get("CODE") != "compedit" ||
		!q.Has("memberid") {
		return nil, false
	}
	return action, true
}

// SameOrigin compares scheme and host (including port).
func SameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(a.Host, b.Host)
}

// formValues collects what a browser would submit for the form: named
// inputs, checked boxes and radios, textareas and the chosen option of each
// select. Buttons and file inputs are skipped.
func formValues(form *goquery.Selection) map[string]string {
	values := make(map[string]string)

	form.Find("input, textarea, select").Each(func(_ int, control *goquery.Selection) {
		name, ok := control.Attr("name")
		if !ok || name == "" {
			return
		}
		if _, disabled := control.Attr("disabled"); disabled {
			return
		}

		switch goquery.NodeName(control) {
		case "textarea":
			values[name] = control.Text()
		case "select":
			values[name] = selectedOption(control)
		default:
			switch strings.ToLower(control.AttrOr("type", "text")) {
			case "checkbox", "radio":
				if _, checked := control.Attr("checked"); checked {
					values[name] = control.AttrOr("value", "on")
				}
			case "button", "reset", "file", "image":
			default:
				values[name] = control.AttrOr("value", "")
			}
		}
	})

	return values
}

func selectedOption(sel *goquery.Selection) string {
	options := sel.Find("option")
	chosen := options.FilterFunction(func(_ int, o *goquery.Selection) bool {
		_, selected := o.Attr("selected")
		return selected
	}).First()
	if chosen.Length() == 0 {
		chosen = options.First()
	}
	if chosen.Length() == 0 {
		return ""
	}

	if v, ok := chosen.Attr("value"); ok {
		return v
	}
	return strings.TrimSpace(chosen.Text())
}
