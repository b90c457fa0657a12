package types

import (
	"github.com/shopspring/decimal"
)

// Cents is an amount of money in the smallest currency unit.
//
// All arithmetic on money happens on Cents. Conversion to currency
// units only happens for display.
type Cents int64

// Decimal returns the amount in currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats the amount in currency units with two decimals.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}
