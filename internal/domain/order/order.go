// Package order places orders for an account and reports their totals.
package order

import (
	"io"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/xenking/kart-relations/internal/domain/account"
	"github.com/xenking/kart-relations/internal/domain/discount"
	"github.com/xenking/kart-relations/internal/domain/money"
)

// Order is a list of item labels for an account, priced through a discount
// policy. The account and policy are borrowed and fixed at construction.
type Order struct {
	owner  *account.Account
	policy discount.Policy
	items  []string
}

// Totals holds the computed amounts of an order.
type Totals struct {
	Total    decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

// New creates an empty order.
func New(owner *account.Account, policy discount.Policy) *Order {
	return &Order{
		owner:  owner,
		policy: policy,
	}
}

// AddItem appends label. Duplicates are kept.
func (o *Order) AddItem(label string) {
	o.items = append(o.items, label)
}

// Items returns the labels in insertion order.
func (o *Order) Items() []string {
	return slices.Clone(o.items)
}

// Owner returns the account the order is placed for.
func (o *Order) Owner() *account.Account { return o.owner }

// Policy returns the discount policy used to price the order.
func (o *Order) Policy() discount.Policy { return o.policy }

// Totals prices the order: total at the unit price, the policy's discount,
// and the final amount total - discount.
func (o *Order) Totals() Totals {
	total := money.Subtotal(len(o.items))
	disc := o.policy.Calculate(total)
	return Totals{
		Total:    total,
		Discount: disc,
		Final:    total.Sub(disc),
	}
}

// Receipt snapshots the order under the given receipt ID.
func (o *Order) Receipt(id string) *Receipt {
	return &Receipt{
		ID:       id,
		Role:     o.owner.Role(),
		Username: o.owner.Username(),
		Items:    o.Items(),
		Totals:   o.Totals(),
	}
}

// Process writes the order report to w and returns the computed totals.
func (o *Order) Process(w io.Writer) (Totals, error) {
	r := o.Receipt("")
	if err := r.WriteText(w); err != nil {
		return Totals{}, err
	}
	return r.Totals, nil
}
