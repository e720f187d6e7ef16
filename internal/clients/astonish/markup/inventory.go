package markup

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/celebi-bot/celebi/internal/entities"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

const (
	inventoryTableSelector = "#ucpcontent > table"
	inventoryOwnerSelector = "tr:nth-child(1) > td:nth-child(2) > a"

	// The first three rows are the owner, a spacer and the column headings.
	inventoryHeaderRows = 3

	inventoryEmptyText = "Inventory Empty."
)

// ParseInventory reads the store inventory page of a member.
func ParseInventory(doc *goquery.Document) (*entities.Inventory, error) {
	table, err := selectOne(doc.Selection, inventoryTableSelector)
	if err != nil {
		return nil, err
	}
	owner, err := selectOne(table, inventoryOwnerSelector)
	if err != nil {
		return nil, err
	}

	inv := &entities.Inventory{
		Owner: strings.TrimSpace(owner.Text()),
		Items: []entities.ItemStack{},
	}

	rows := table.Find("tr").Slice(inventoryHeaderRows, goquery.ToEnd)
	if rows.Length() == 0 || strings.TrimSpace(rows.First().Text()) == inventoryEmptyText {
		return inv, nil
	}

	var parseErr error
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		item, err := parseItemStack(tr)
		if err != nil {
			parseErr = dnderr.Wrapf(err, "inventory row %d", i+1)
			return false
		}
		inv.Items = append(inv.Items, *item)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return inv, nil
}

func parseItemStack(tr *goquery.Selection) (*entities.ItemStack, error) {
	tds := tr.ChildrenFiltered("td")
	if tds.Length() != 4 {
		return nil, &ElementNotFoundError{Selector: "tr > td", Matches: tds.Length()}
	}

	img, err := selectOne(tds.Eq(0), "img")
	if err != nil {
		return nil, err
	}

	rawStock := strings.TrimSpace(tds.Eq(3).Text())
	stock, err := strconv.Atoi(rawStock)
	if err != nil {
		return nil, dnderr.Validationf("invalid item stock %q", rawStock).WithMeta("field", "stock")
	}

	return entities.NewItemStack(
		img.AttrOr("src", ""),
		tds.Eq(1).Text(),
		tds.Eq(2).Text(),
		stock,
	)
}
