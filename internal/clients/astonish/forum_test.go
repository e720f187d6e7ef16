package astonish_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	testUsername = "celebi"
	testPassword = "hunter2"

	fixtureOrigin = "https://astonish.jcink.net"
	loggedInNav   = `title="user profile"><a href="https://astonish.jcink.net/index.php?showuser=1"`
	guestNav      = `title="user profile"><a href="https://astonish.jcink.net/index.php?showuser=0"`
)

// fakeForum serves the markup fixtures the way the forum routes them and
// keeps count of what it was asked for.
type fakeForum struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	logins   int
	requests map[string]int
	queries  map[string]url.Values
	posts    []url.Values

	// pages maps a route key to a fixture under markup/testdata
	pages map[string]string

	rejectLogin   bool
	alwaysGuest   bool
	expireNext    int
	foreignAction bool
	failRoute     map[string]int

	// offline serves a maintenance page without navigation to every
	// login-only route
	offline bool
	// guestRoutes serves a route to a guest the given number of times
	guestRoutes map[string]int
	// delay holds back the response of a route
	delay map[string]time.Duration
}

const offlinePage = `<html><body><div class="maintitle">Board offline</div></body></html>`

func newFakeForum(t *testing.T) *fakeForum {
	f := &fakeForum{
		t:           t,
		requests:    make(map[string]int),
		queries:     make(map[string]url.Values),
		failRoute:   make(map[string]int),
		guestRoutes: make(map[string]int),
		delay:       make(map[string]time.Duration),
		pages: map[string]string{
			"modcp:45":     "modcp_bryn_vaughn.html",
			"profile:45":   "profile_krisigos.html",
			"modcp:46":     "modcp_bryn_vaughn.html",
			"profile:46":   "profile_krisigos.html",
			"modcp:999":    "modcp_not_found.html",
			"profile:999":  "modcp_not_found.html",
			"inventory:45": "inventory_single.html",
			"members":      "members.html",
			"shop":         "shop.html",
		},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeForum) URL() string {
	return f.server.URL
}

func (f *fakeForum) count(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[route]
}

func (f *fakeForum) query(route string) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[route]
}

func (f *fakeForum) loginCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins
}

func (f *fakeForum) lastPost() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.posts) == 0 {
		return nil
	}
	return f.posts[len(f.posts)-1]
}

func (f *fakeForum) set(fn func(f *fakeForum)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func route(q url.Values) string {
	switch {
	case q.Has("showuser"):
		return "profile:" + q.Get("showuser")
	case q.Get("act") == "modcp" && q.Get("CODE") == "doedituser":
		return "modcp:" + q.Get("memberid")
	case q.Get("act") == "modcp" && q.Get("CODE") == "compedit":
		return "compedit:" + q.Get("memberid")
	case q.Get("act") == "store" && q.Get("code") == "view_inventory":
		return "inventory:" + q.Get("memberid")
	case q.Get("act") == "store" && q.Get("code") == "shop":
		return "shop"
	case q.Get("act") == "Members":
		return "members"
	case q.Get("act") == "Login":
		return "login"
	}
	return "unknown"
}

func (f *fakeForum) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/index.php" {
		http.NotFound(w, r)
		return
	}
	key := route(r.URL.Query())

	f.mu.Lock()
	delay := f.delay[key]
	f.mu.Unlock()
	time.Sleep(delay)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests[key]++
	f.queries[key] = r.URL.Query()

	if n := f.failRoute[key]; n > 0 {
		w.WriteHeader(n)
		return
	}

	switch {
	case key == "login" && r.Method == http.MethodPost:
		f.handleLogin(w, r)
	case strings.HasPrefix(key, "compedit:") && r.Method == http.MethodPost:
		assert.NoError(f.t, r.ParseForm())
		f.posts = append(f.posts, r.PostForm)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>Profile updated</body></html>"))
	case r.Method == http.MethodGet:
		f.handlePage(w, r, key)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeForum) handleLogin(w http.ResponseWriter, r *http.Request) {
	f.logins++
	assert.NoError(f.t, r.ParseForm())

	memberID := "1"
	if f.rejectLogin || r.PostForm.Get("UserName") != testUsername || r.PostForm.Get("PassWord") != testPassword {
		memberID = "0"
	} else {
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "s3ss10n", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "pass_hash", Value: "h4sh", Path: "/"})
	}
	http.SetCookie(w, &http.Cookie{Name: "member_id", Value: memberID, Path: "/"})

	w.Header().Set("Location", "/index.php?")
	w.WriteHeader(http.StatusFound)
}

func (f *fakeForum) handlePage(w http.ResponseWriter, r *http.Request, key string) {
	name, ok := f.pages[key]
	if !ok {
		http.NotFound(w, r)
		return
	}

	loginOnly := key != "members" && key != "shop"
	if f.offline && loginOnly {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(offlinePage))
		return
	}

	raw, err := os.ReadFile(filepath.Join("markup", "testdata", name))
	if !assert.NoError(f.t, err) {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	page := string(raw)

	_, err = r.Cookie("session_id")
	guest := err != nil || f.alwaysGuest
	if !guest && f.expireNext > 0 && loginOnly {
		f.expireNext--
		guest = true
	}
	if !guest && f.guestRoutes[key] > 0 {
		f.guestRoutes[key]--
		guest = true
	}
	if guest {
		page = strings.Replace(page, loggedInNav, guestNav, 1)
	}

	if f.foreignAction {
		page = strings.Replace(page, `action="`+fixtureOrigin+`/index.php?act=modcp`, `action="https://evil.example/index.php?act=modcp`, 1)
	}
	page = strings.ReplaceAll(page, fixtureOrigin, f.server.URL)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}
