// Package payment charges the final order amount through a payment method.
package payment

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/kart-relations/internal/domain/money"
)

// ErrUnknownMethod is returned for payment method names that are not supported.
var ErrUnknownMethod = errors.New("unknown payment method")

// Method identifies a payment method.
type Method string

const (
	// MethodNone skips payment.
	MethodNone Method = ""
	// MethodCreditCard charges a credit card.
	MethodCreditCard Method = "credit_card"
	// MethodPayPal charges a PayPal account.
	MethodPayPal Method = "paypal"
)

// ParseMethod normalizes a method name. An empty name yields MethodNone.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodNone, MethodCreditCard, MethodPayPal:
		return m, nil
	default:
		return MethodNone, errors.Wrapf(ErrUnknownMethod, "%q", s)
	}
}

// Processor charges an amount and reports the charge to w.
type Processor interface {
	Method() Method
	Pay(ctx context.Context, w io.Writer, amount decimal.Decimal) error
}

var (
	_ Processor = CreditCard{}
	_ Processor = PayPal{}
)

// New returns the processor for m. MethodNone returns a nil Processor.
func New(m Method) (Processor, error) {
	switch m {
	case MethodNone:
		return nil, nil
	case MethodCreditCard:
		return CreditCard{}, nil
	case MethodPayPal:
		return PayPal{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownMethod, "%q", string(m))
	}
}

// CreditCard processes card payments.
type CreditCard struct{}

// Method returns MethodCreditCard.
func (CreditCard) Method() Method { return MethodCreditCard }

// Pay reports the card charge.
func (CreditCard) Pay(_ context.Context, w io.Writer, amount decimal.Decimal) error {
	return charge(w, "Credit Card", amount)
}

// PayPal processes PayPal payments.
type PayPal struct{}

// Method returns MethodPayPal.
func (PayPal) Method() Method { return MethodPayPal }

// Pay reports the PayPal charge.
func (PayPal) Pay(_ context.Context, w io.Writer, amount decimal.Decimal) error {
	return charge(w, "PayPal", amount)
}

func charge(w io.Writer, kind string, amount decimal.Decimal) error {
	if _, err := fmt.Fprintf(w, "Processing %s payment of %s %s.\n", kind, money.Format(amount), money.Currency); err != nil {
		return errors.Wrapf(err, "write %s payment", kind)
	}
	return nil
}
