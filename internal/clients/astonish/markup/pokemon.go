package markup

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

const (
	pokemonBlockClass   = "pkmn-display"
	pokemonIDAttr       = "data-pkmn-id"
	pokemonNameSelector = "div.pkmn-name"
	shinyClass          = "shiny"

	profileComputerSelector = ".Computer > #biography-body > .pkmn-display"
)

// ParsePersonalComputer reads the Pokémon displayed in a public profile's
// biography section, in page order.
func ParsePersonalComputer(doc *goquery.Document) (entities.PersonalComputer, error) {
	return parsePokemonBlocks(doc.Find(profileComputerSelector))
}

// ParsePokemonFragment reads the raw HTML stored in the personal computer
// profile field. Every top-level element must be a Pokémon block.
func ParsePokemonFragment(raw string) (entities.PersonalComputer, error) {
	if strings.TrimSpace(raw) == "" {
		return entities.PersonalComputer{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, dnderr.Validationf("personal computer is not valid html: %v", err)
	}

	return parsePokemonBlocks(doc.Find("body").Children())
}

func parsePokemonBlocks(blocks *goquery.Selection) (entities.PersonalComputer, error) {
	pc := make(entities.PersonalComputer, 0, blocks.Length())

	var parseErr error
	blocks.EachWithBreak(func(i int, block *goquery.Selection) bool {
		pkmn, err := parsePokemon(block)
		if err != nil {
			parseErr = dnderr.Wrapf(err, "pokemon block %d", i+1)
			return false
		}
		pc = append(pc, *pkmn)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return pc, nil
}

func parsePokemon(block *goquery.Selection) (*entities.Pokemon, error) {
	img, err := selectOne(block, "img[src]")
	if err != nil {
		return nil, err
	}
	src := strings.TrimSpace(img.AttrOr("src", ""))

	// Prefer the explicit id; older entries only have it in the sprite file name.
	var id int
	if raw, ok := block.Attr(pokemonIDAttr); ok {
		id, err = strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, dnderr.Validationf("invalid %s %q", pokemonIDAttr, raw)
		}
	} else {
		id, err = idFromSprite(src)
		if err != nil {
			return nil, err
		}
	}

	name, err := selectOne(block, pokemonNameSelector)
	if err != nil {
		return nil, err
	}

	return entities.NewPokemon(id, name.Text(), block.HasClass(shinyClass), src)
}

func idFromSprite(src string) (int, error) {
	u, err := url.Parse(src)
	if err != nil {
		return 0, dnderr.Validationf("invalid sprite url %q", src)
	}

	base := path.Base(u.Path)
	stem := strings.TrimSuffix(base, path.Ext(base))

	id, err := strconv.Atoi(stem)
	if err != nil {
		return 0, dnderr.Validationf("cannot derive pokemon id from sprite %q", src)
	}
	return id, nil
}

// RenderPersonalComputer serializes the list into the HTML stored in the
// personal computer profile field. ParsePokemonFragment reverses it.
func RenderPersonalComputer(pc entities.PersonalComputer) (string, error) {
	var sb strings.Builder
	for i := range pc {
		if err := html.Render(&sb, pokemonNode(&pc[i])); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func pokemonNode(p *entities.Pokemon) *html.Node {
	class := pokemonBlockClass
	if p.Shiny {
		class += " " + shinyClass
	}

	block := element(atom.Div, html.Attribute{Key: "class", Val: class},
		html.Attribute{Key: pokemonIDAttr, Val: strconv.Itoa(p.ID)})
	block.AppendChild(element(atom.I, html.Attribute{Key: "class", Val: "fa-solid fa-sparkles"}))

	name := element(atom.Div, html.Attribute{Key: "class", Val: "pkmn-name"})
	name.AppendChild(&html.Node{Type: html.TextNode, Data: p.Name})
	block.AppendChild(name)

	block.AppendChild(element(atom.Img, html.Attribute{Key: "src", Val: p.SpriteURL()}))
	return block
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
