package order

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/kart-relations/internal/domain/account"
	"github.com/xenking/kart-relations/internal/domain/money"
	"github.com/xenking/kart-relations/internal/domain/payment"
)

// Receipt is the outcome of processing an order.
type Receipt struct {
	ID       string
	Role     account.Role
	Username string
	Items    []string
	Totals   Totals
	Payment  payment.Method
}

// WriteText renders the human-readable order report:
//
//	Processing order for Customer with items:
//	- Tablet
//	Total: 10.0 USD
//	Discount: 0.0 USD
//	Final total after discount: 10.0 USD
func (r *Receipt) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Processing order for %s with items:\n", r.Role)
	for _, item := range r.Items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	fmt.Fprintf(&b, "Total: %s %s\n", money.Format(r.Totals.Total), money.Currency)
	fmt.Fprintf(&b, "Discount: %s %s\n", money.Format(r.Totals.Discount), money.Currency)
	fmt.Fprintf(&b, "Final total after discount: %s %s\n", money.Format(r.Totals.Final), money.Currency)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}

// EncodeJSON writes the receipt as a JSON object. Amounts are encoded as
// strings to keep their exact decimal value.
func (r *Receipt) EncodeJSON(e *jx.Encoder) {
	e.ObjStart()
	if r.ID != "" {
		e.FieldStart("id")
		e.Str(r.ID)
	}
	e.FieldStart("role")
	e.Str(r.Role.String())
	e.FieldStart("username")
	e.Str(r.Username)
	e.FieldStart("items")
	e.ArrStart()
	for _, item := range r.Items {
		e.Str(item)
	}
	e.ArrEnd()
	e.FieldStart("total")
	e.Str(money.Format(r.Totals.Total))
	e.FieldStart("discount")
	e.Str(money.Format(r.Totals.Discount))
	e.FieldStart("final_total")
	e.Str(money.Format(r.Totals.Final))
	e.FieldStart("currency")
	e.Str(money.Currency)
	if r.Payment != payment.MethodNone {
		e.FieldStart("payment")
		e.Str(string(r.Payment))
	}
	e.ObjEnd()
}

// MarshalJSON implements json.Marshaler.
func (r *Receipt) MarshalJSON() ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	r.EncodeJSON(e)
	return slices.Clone(e.Bytes()), nil
}
