package entities

import (
	"strings"

	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// ItemStack is a single stack of store items owned by a character.
type ItemStack struct {
	IconURL     string
	Name        string
	Description string
	Stock       int
}

// NewItemStack validates one inventory row.
func NewItemStack(iconURL, name, description string, stock int) (*ItemStack, error) {
	if stock < 1 {
		return nil, dnderr.Validationf("item %q has stock %d, expected at least 1", name, stock).
			WithMeta("field", "stock")
	}
	if err := validateHTTPURL(strings.TrimSpace(iconURL)); err != nil {
		return nil, dnderr.Wrapf(err, "item %q icon", name)
	}

	return &ItemStack{
		IconURL:     strings.TrimSpace(iconURL),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Stock:       stock,
	}, nil
}

// Inventory is a snapshot of a member's store holdings.
type Inventory struct {
	Owner string
	Items []ItemStack
}

// TotalStock is the number of individual items across all stacks.
func (inv *Inventory) TotalStock() int {
	total := 0
	for _, item := range inv.Items {
		total += item.Stock
	}
	return total
}
