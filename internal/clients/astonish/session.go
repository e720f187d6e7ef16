package astonish

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// SessionState tracks what the client believes about its forum login.
type SessionState int32

const (
	StateUnauthenticated SessionState = iota
	StateAuthenticating
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

const (
	cookieMemberID  = "member_id"
	cookieSessionID = "session_id"
	cookiePassHash  = "pass_hash"

	// guest sessions get a member_id cookie of 0
	guestMemberID = "0"
)

// session owns the cookie jar and the login handshake. Both HTTP clients
// share the jar; the login one does not follow redirects so the Set-Cookie
// on the 302 can be inspected.
type session struct {
	base     *url.URL
	username string
	password string

	http  *http.Client
	login *http.Client
	jar   http.CookieJar

	state atomic.Int32

	// epoch counts successful logins. Requests remember the epoch they were
	// sent under so a stale guest page does not trigger a second login.
	epoch   atomic.Uint64
	flights singleflight.Group
}

func (s *session) State() SessionState {
	return SessionState(s.state.Load())
}

func (s *session) setState(state SessionState) {
	s.state.Store(int32(state))
}

// hasCookies reports whether the jar holds a session for the forum. It does
// not prove the session is still valid.
func (s *session) hasCookies() bool {
	var sessionID, passHash bool
	for _, c := range s.jar.Cookies(s.base) {
		switch c.Name {
		case cookieSessionID:
			sessionID = c.Value != ""
		case cookiePassHash:
			passHash = c.Value != ""
		}
	}
	return sessionID && passHash
}

func (s *session) endpoint(params url.Values) string {
	u := *s.base
	u.Path = "/index.php"
	u.RawQuery = params.Encode()
	return u.String()
}

// Login signs in, sharing one request between concurrent callers.
func (s *session) Login(ctx context.Context) error {
	return s.loginSince(ctx, s.epoch.Load())
}

// loginSince signs in unless a login has succeeded since epoch seen. The
// login runs detached from ctx so a caller giving up does not fail the others.
func (s *session) loginSince(ctx context.Context, seen uint64) error {
	ch := s.flights.DoChan("login", func() (any, error) {
		if s.epoch.Load() != seen {
			return nil, nil
		}
		return nil, s.doLogin(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *session) doLogin(ctx context.Context) error {
	s.setState(StateAuthenticating)
	log.Printf("Logging in to %s as %s", s.base.Host, s.username)

	form := url.Values{
		"referer":    {""},
		"UserName":   {s.username},
		"PassWord":   {s.password},
		"CookieDate": {"1"}, // remember me
		"Privacy":    {"1"}, // hide from the active users list
	}
	target := s.endpoint(url.Values{"act": {"Login"}, "CODE": {"01"}})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		s.setState(StateUnauthenticated)
		return dnderr.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.login.Do(req)
	if err != nil {
		s.setState(StateUnauthenticated)
		return dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "login request failed")
	}
	defer drain(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		s.setState(StateUnauthenticated)
		return httpFailed(http.MethodPost, target, resp.StatusCode)
	}

	for _, c := range resp.Cookies() {
		if c.Name == cookieMemberID && c.Value != "" && c.Value != guestMemberID {
			s.epoch.Add(1)
			s.setState(StateAuthenticated)
			log.Printf("Logged in to %s as member %s", s.base.Host, c.Value)
			return nil
		}
	}

	s.setState(StateUnauthenticated)
	log.Printf("Login to %s as %s was rejected", s.base.Host, s.username)
	return loginFailed("response did not set a member cookie")
}

// drain lets the transport reuse the connection.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
