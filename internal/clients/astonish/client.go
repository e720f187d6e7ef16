package astonish

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/celebi-bot/celebi/internal"
	"github.com/celebi-bot/celebi/internal/clients/astonish/markup"
	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
	"github.com/celebi-bot/celebi/internal/repositories/characters"
)

const (
	DefaultBaseURL      = "https://astonish.jcink.net"
	DefaultTimeout      = 30 * time.Second
	DefaultShopCategory = 1

	// the forum errors out above this
	membersPerPage = 1000
)

type client struct {
	session      *session
	cache        characters.Cache
	shopCategory int
}

type Config struct {
	BaseURL  string
	Username string
	Password string

	// HttpClient supplies the transport and timeout. The client always uses
	// its own cookie jar.
	HttpClient *http.Client

	// Cache defaults to an in-memory LRU with the default size and TTL.
	Cache characters.Cache

	ShopCategory int
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Username == "" {
		return nil, internal.NewMissingParamError("cfg.Username")
	}
	if cfg.Password == "" {
		return nil, internal.NewMissingParamError("cfg.Password")
	}

	rawURL := cfg.BaseURL
	if rawURL == "" {
		rawURL = DefaultBaseURL
	}
	base, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, internal.NewInvalidParamError("cfg.BaseURL must be an absolute URL")
	}
	base = &url.URL{Scheme: base.Scheme, Host: base.Host}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	var (
		transport http.RoundTripper
		timeout   = DefaultTimeout
	)
	if cfg.HttpClient != nil {
		transport = cfg.HttpClient.Transport
		if cfg.HttpClient.Timeout > 0 {
			timeout = cfg.HttpClient.Timeout
		}
	}

	cache := cfg.Cache
	if cache == nil {
		cache = characters.NewInMemoryCache(characters.DefaultCacheSize, characters.DefaultCacheTTL)
	}

	shopCategory := cfg.ShopCategory
	if shopCategory <= 0 {
		shopCategory = DefaultShopCategory
	}

	return &client{
		session: &session{
			base:     base,
			username: cfg.Username,
			password: cfg.Password,
			jar:      jar,
			http: &http.Client{
				Transport: transport,
				Jar:       jar,
				Timeout:   timeout,
			},
			login: &http.Client{
				Transport: transport,
				Jar:       jar,
				Timeout:   timeout,
				CheckRedirect: func(*http.Request, []*http.Request) error {
					return http.ErrUseLastResponse
				},
			},
		},
		cache:        cache,
		shopCategory: shopCategory,
	}, nil
}

func (c *client) Login(ctx context.Context) error {
	return c.session.Login(ctx)
}

func (c *client) SessionState() SessionState {
	return c.session.State()
}

func (c *client) ForumURL() string {
	return c.session.base.String()
}

func (c *client) Close() {
	c.session.http.CloseIdleConnections()
}

func (c *client) GetCharacter(ctx context.Context, memberID int, cached bool) (*entities.Character, error) {
	if memberID <= 0 {
		return nil, dnderr.InvalidArgumentf("member id must be positive, got %d", memberID)
	}

	if cached {
		if character, ok := c.cache.Get(ctx, memberID); ok {
			return character, nil
		}
	}

	var (
		fields *markup.ModCPFields
		group  string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fields, err = c.getModCPFields(gctx, memberID)
		return err
	})
	g.Go(func() error {
		var err error
		group, err = c.GetCharacterGroup(gctx, memberID)
		return err
	})
	if err := g.Wait(); err != nil {
		if isMissingMember(err) {
			return nil, characterNotFound(memberID, err)
		}
		return nil, err
	}

	character, err := markup.BuildCharacter(fields, group)
	if err != nil {
		return nil, parseFailed(err, "character profile").WithMeta("member_id", memberID)
	}

	if character.ID != memberID {
		return nil, dnderr.Inconsistentf("requested member %d but the edit form is for member %d", memberID, character.ID).
			WithMeta("member_id", memberID)
	}

	if err := c.cache.Put(ctx, character); err != nil {
		log.Printf("Failed to cache character %d: %v", memberID, err)
	}

	return character, nil
}

func (c *client) GetCharacterGroup(ctx context.Context, memberID int) (string, error) {
	doc, err := c.session.get(ctx, url.Values{"showuser": {strconv.Itoa(memberID)}}, true)
	if err != nil {
		return "", err
	}

	group, err := markup.ParseCharacterGroup(doc)
	if err != nil {
		return "", parseFailed(err, "profile")
	}
	return group, nil
}

func (c *client) GetInventory(ctx context.Context, memberID int) (*entities.Inventory, error) {
	if memberID <= 0 {
		return nil, dnderr.InvalidArgumentf("member id must be positive, got %d", memberID)
	}

	doc, err := c.session.get(ctx, url.Values{
		"act":      {"store"},
		"code":     {"view_inventory"},
		"memberid": {strconv.Itoa(memberID)},
	}, true)
	if err != nil {
		return nil, err
	}

	inv, err := markup.ParseInventory(doc)
	if err != nil {
		return nil, parseFailed(err, "inventory")
	}
	return inv, nil
}

func (c *client) UpdateCharacter(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}

	fields, err := c.getModCPFields(ctx, character.ID)
	if err != nil {
		if errors.Is(err, markup.ErrFormNotFound) {
			return characterNotFound(character.ID, err)
		}
		return err
	}

	if fields.MemberID != character.ID {
		return dnderr.Inconsistentf("updating member %d but the edit form is for member %d", character.ID, fields.MemberID).
			WithMeta("member_id", character.ID)
	}
	if !markup.SameOrigin(fields.Action, c.session.base) {
		return dnderr.Inconsistentf("edit form posts to %s, outside the forum", fields.Action.Host).
			WithMeta("member_id", character.ID)
	}

	overlay, err := markup.CharacterOverlay(character)
	if err != nil {
		return err
	}

	form := make(url.Values, len(fields.Fields))
	for name, value := range fields.Fields {
		form.Set(name, value)
	}
	for name, value := range overlay {
		form.Set(name, value)
	}

	if err := c.session.postForm(ctx, fields.Action, form); err != nil {
		return dnderr.Wrapf(err, "failed to update character %d", character.ID)
	}
	log.Printf("Updated profile fields of character %d", character.ID)

	if err := c.cache.Put(ctx, character); err != nil {
		log.Printf("Failed to cache character %d: %v", character.ID, err)
	}
	return nil
}

func (c *client) GetAllCharacters(ctx context.Context) (map[int]*entities.MemberCard, error) {
	doc, err := c.session.get(ctx, url.Values{
		"act":         {"Members"},
		"max_results": {strconv.Itoa(membersPerPage)},
	}, false)
	if err != nil {
		return nil, err
	}

	members, err := markup.ParseMemberList(doc)
	if err != nil {
		return nil, parseFailed(err, "member list")
	}
	return members, nil
}

func (c *client) GetShopData(ctx context.Context) (*entities.Shop, error) {
	doc, err := c.session.get(ctx, url.Values{
		"act":      {"store"},
		"code":     {"shop"},
		"category": {strconv.Itoa(c.shopCategory)},
	}, false)
	if err != nil {
		return nil, err
	}

	shop, err := markup.ParseShop(doc)
	if err != nil {
		return nil, parseFailed(err, "shop")
	}
	return shop, nil
}

func (c *client) getModCPFields(ctx context.Context, memberID int) (*markup.ModCPFields, error) {
	doc, err := c.session.get(ctx, url.Values{
		"act":      {"modcp"},
		"CODE":     {"doedituser"},
		"memberid": {strconv.Itoa(memberID)},
	}, true)
	if err != nil {
		return nil, err
	}

	fields, err := markup.ParseModCPFields(doc, c.session.base)
	if err != nil {
		return nil, parseFailed(err, "edit form")
	}
	return fields, nil
}
