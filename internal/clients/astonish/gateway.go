package astonish

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/celebi-bot/celebi/internal/clients/astonish/markup"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// get fetches /index.php with params and parses the page. With requireLogin
// the session is established first if needed, the page is checked for a
// logged-in navigation bar, and a lost session is recovered once. Only the
// first request to see a lost session logs in again; later ones replay.
func (s *session) get(ctx context.Context, params url.Values, requireLogin bool) (*goquery.Document, error) {
	if !requireLogin {
		doc, _, err := s.getOnce(ctx, params, false)
		return doc, err
	}

	var sentUnder uint64
	relogin := func(ctx context.Context) error {
		return s.loginSince(ctx, sentUnder)
	}
	return withRelogin(ctx, relogin, func(ctx context.Context) (*goquery.Document, error) {
		doc, epoch, err := s.getOnce(ctx, params, true)
		sentUnder = epoch
		return doc, err
	})
}

// getOnce also returns the login epoch the request was sent under.
func (s *session) getOnce(ctx context.Context, params url.Values, requireLogin bool) (*goquery.Document, uint64, error) {
	epoch := s.epoch.Load()
	if requireLogin && !s.hasCookies() {
		if err := s.loginSince(ctx, epoch); err != nil {
			return nil, epoch, err
		}
		epoch = s.epoch.Load()
	}

	target := s.endpoint(params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, epoch, dnderr.Wrap(err, "failed to build request")
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, epoch, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "forum request failed")
	}
	defer drain(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, epoch, httpFailed(http.MethodGet, target, resp.StatusCode)
	}

	doc, err := markup.NewDocument(resp.Body)
	if err != nil {
		return nil, epoch, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to read forum response")
	}

	if requireLogin {
		loggedIn, err := markup.IsLoggedIn(doc)
		if err != nil {
			return nil, epoch, parseFailed(err, "navigation bar")
		}
		if !loggedIn {
			// a page sent before the latest login says nothing about the session
			if s.epoch.Load() == epoch {
				s.setState(StateUnauthenticated)
			}
			return nil, epoch, loginFailed("forum served the page to a guest")
		}
	}

	return doc, epoch, nil
}

// postForm submits a form as the logged-in user. It is never retried: the
// forum gives no way to tell whether a failed submit was applied.
func (s *session) postForm(ctx context.Context, target *url.URL, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return dnderr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "forum request failed")
	}
	defer drain(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return httpFailed(http.MethodPost, target.String(), resp.StatusCode)
	}
	return nil
}
