// Package discount computes order discounts from a monetary total.
package discount

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRate is returned when a rate is outside [0, 1].
	ErrInvalidRate = errors.New("discount rate must be between 0 and 1")
	// ErrInvalidThreshold is returned for a negative threshold.
	ErrInvalidThreshold = errors.New("discount threshold must not be negative")
)

var (
	// DefaultThreshold is the total an order must exceed to earn a discount.
	DefaultThreshold = decimal.NewFromInt(50)
	// DefaultRate is the share of the total taken off once the threshold is exceeded.
	DefaultRate = decimal.RequireFromString("0.10")
)

// Policy maps an order total to the discount amount.
type Policy interface {
	Calculate(total decimal.Decimal) decimal.Decimal
}

// Func adapts a plain function to Policy.
type Func func(total decimal.Decimal) decimal.Decimal

// Calculate calls f(total).
func (f Func) Calculate(total decimal.Decimal) decimal.Decimal { return f(total) }

var (
	_ Policy = Func(nil)
	_ Policy = ThresholdPolicy{}
)

// ThresholdPolicy takes Rate off totals strictly greater than Threshold.
// A total equal to Threshold gets nothing. The result is not rounded.
type ThresholdPolicy struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// Default returns the shop's standard policy: 10% off totals over 50.
func Default() ThresholdPolicy {
	return ThresholdPolicy{
		Threshold: DefaultThreshold,
		Rate:      DefaultRate,
	}
}

// NewThresholdPolicy validates the parameters and returns the policy.
func NewThresholdPolicy(threshold, rate decimal.Decimal) (ThresholdPolicy, error) {
	if threshold.IsNegative() {
		return ThresholdPolicy{}, errors.Wrapf(ErrInvalidThreshold, "threshold %s", threshold)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return ThresholdPolicy{}, errors.Wrapf(ErrInvalidRate, "rate %s", rate)
	}
	return ThresholdPolicy{Threshold: threshold, Rate: rate}, nil
}

// Calculate returns the discount for total.
func (p ThresholdPolicy) Calculate(total decimal.Decimal) decimal.Decimal {
	if !total.GreaterThan(p.Threshold) {
		return decimal.Zero
	}
	return total.Mul(p.Rate)
}
