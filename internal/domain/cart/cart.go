// Package cart implements a shopping cart: an ordered list of item labels
// belonging to one account.
package cart

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/xenking/kart-relations/internal/domain/account"
	"github.com/xenking/kart-relations/internal/domain/money"
)

// Cart collects item labels for an account. The cart does not own the
// account; it only refers to it.
type Cart struct {
	owner *account.Account
	items []string
}

// New creates an empty cart for owner.
func New(owner *account.Account) *Cart {
	return &Cart{owner: owner}
}

// AddItem appends label. Duplicates are kept.
func (c *Cart) AddItem(label string) {
	c.items = append(c.items, label)
}

// Items returns the labels in insertion order.
func (c *Cart) Items() []string {
	return slices.Clone(c.items)
}

// Len returns the number of items in the cart.
func (c *Cart) Len() int { return len(c.items) }

// Owner returns the account the cart belongs to.
func (c *Cart) Owner() *account.Account { return c.owner }

// Total returns the cart value at the fixed unit price.
func (c *Cart) Total() decimal.Decimal {
	return money.Subtotal(len(c.items))
}
