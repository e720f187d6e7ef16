package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// The shop renders its catching index client-side: the markup lives in a
// string literal assigned by an inline script.
var catchingIndexScript = regexp.MustCompile(`catchingIndex\.innerHTML\s*=\s*"(.+)";`)

const (
	regionSelector      = "#catchable-pkmn-content > .catchable-region:not(.baby):not(.starter)"
	babySelector        = ".catchable-region.baby > div"
	starterSelector     = ".catchable-region.starter"
	regionTitleSelector = ".region-title"
	rareSuffix          = "*"
)

// ParseShop extracts the catching index from the shop page.
func ParseShop(doc *goquery.Document) (*entities.Shop, error) {
	index, err := catchingIndex(doc)
	if err != nil {
		return nil, err
	}

	shop := &entities.Shop{}

	var parseErr error
	index.Find(regionSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		region, err := parseRegion(sel)
		if err != nil {
			parseErr = err
			return false
		}
		shop.Regions = append(shop.Regions, *region)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	baby, err := selectOne(index.Selection, babySelector)
	if err != nil {
		return nil, err
	}
	shop.BabyPokemon = splitNames(baby.Text())

	starters := index.Find(starterSelector)
	for _, stage := range []struct {
		title string
		dst   *entities.NameSet
	}{
		{"Stage 1 Starters", &shop.Stage1Starters},
		{"Stage 2 Starters", &shop.Stage2Starters},
		{"Stage 3 Starters", &shop.Stage3Starters},
	} {
		div, err := starterSection(starters, stage.title)
		if err != nil {
			return nil, err
		}
		*stage.dst = splitNames(div.Text())
	}

	return shop, nil
}

func catchingIndex(doc *goquery.Document) (*goquery.Document, error) {
	var literal string
	doc.Find("body > script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		if m := catchingIndexScript.FindStringSubmatch(script.Text()); m != nil {
			literal = m[1]
			return false
		}
		return true
	})
	if literal == "" {
		return nil, ErrScriptNotFound
	}

	fragment, err := unescapeJSString(literal)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to unescape catching index")
	}

	return goquery.NewDocumentFromReader(strings.NewReader(fragment))
}

// unescapeJSString decodes the body of a double-quoted JavaScript string.
// Go's quoting rules cover everything the shop emits except \/ and \'.
func unescapeJSString(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '/', '\'':
				sb.WriteByte(s[i+1])
				i++
				continue
			}
			sb.WriteByte(s[i])
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')

	return strconv.Unquote(sb.String())
}

func parseRegion(sel *goquery.Selection) (*entities.Region, error) {
	title, err := selectOne(sel, regionTitleSelector)
	if err != nil {
		return nil, err
	}

	region := &entities.Region{
		Name:  strings.TrimSpace(title.Text()),
		Types: make(map[string]entities.Rarity),
	}

	var parseErr error
	sel.Find("span.type").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		name := strings.ToLower(strings.TrimSpace(span.Text()))
		if name == "" {
			parseErr = dnderr.Validationf("region %q has an unnamed type", region.Name)
			return false
		}

		rarity := entities.RarityCommon
		if strings.HasSuffix(name, rareSuffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, rareSuffix))
			rarity = entities.RarityRare
		}

		if _, dup := region.Types[name]; dup {
			parseErr = dnderr.Validationf("region %q lists type %q twice", region.Name, name).
				WithMeta("region", region.Name)
			return false
		}
		region.Types[name] = rarity
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return region, nil
}

func starterSection(starters *goquery.Selection, title string) (*goquery.Selection, error) {
	section := starters.FilterFunction(func(_ int, s *goquery.Selection) bool {
		span, err := selectOne(s, "span.region-title")
		return err == nil && strings.TrimSpace(span.Text()) == title
	})

	selector := starterSelector + " " + title
	if section.Length() != 1 {
		return nil, &ElementNotFoundError{Selector: selector, Matches: section.Length()}
	}

	divs := section.Find("div")
	if divs.Length() != 1 {
		return nil, &ElementNotFoundError{Selector: selector + " div", Matches: divs.Length()}
	}
	return divs, nil
}

func splitNames(list string) entities.NameSet {
	return entities.NewNameSet(strings.Split(list, ",")...)
}
