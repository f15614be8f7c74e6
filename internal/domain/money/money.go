// Package money holds the fixed pricing rules shared by carts and orders.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is appended to every amount shown to a customer.
const Currency = "USD"

// UnitPrice is the price of any single item, regardless of its label.
var UnitPrice = decimal.NewFromInt(10)

// Subtotal returns the price of n items.
func Subtotal(n int) decimal.Decimal {
	return UnitPrice.Mul(decimal.NewFromInt(int64(n)))
}

// Format renders an amount exactly, always with at least one fractional
// digit: 20 becomes "20.0" and 5.001 stays "5.001".
func Format(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
