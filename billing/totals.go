// Package billing holds the money arithmetic for invoices. All internal
// computation uses decimals so that subtotal + taxAmount == total holds
// exactly for every input; values cross the package boundary as two-decimal
// floats, matching the decimal(10,2) columns they are stored in.
package billing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// ItemAmount is the canonical line-item amount: rate * quantity, rounded to
// two decimal places.
func ItemAmount(rate float64, quantity int) float64 {
	amount := decimal.NewFromFloat(rate).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2)
	f, _ := amount.Float64()
	return f
}

// AmountMatches reports whether a caller-supplied amount agrees with
// rate * quantity at two decimal places.
func AmountMatches(supplied, rate float64, quantity int) bool {
	return decimal.NewFromFloat(supplied).Round(2).
		Equal(decimal.NewFromFloat(ItemAmount(rate, quantity)))
}

// ComputeTotals derives subtotal, tax amount and total from item amounts and
// a tax rate in percent. Item amounts are trusted as given; they are expected
// to have been validated against rate * quantity already.
func ComputeTotals(amounts []float64, taxRatePercent float64) Totals {
	subtotal := decimal.Zero
	for _, a := range amounts {
		subtotal = subtotal.Add(decimal.NewFromFloat(a))
	}
	subtotal = subtotal.Round(2)

	taxAmount := subtotal.
		Mul(decimal.NewFromFloat(taxRatePercent)).
		Div(hundred).
		Round(2)
	total := subtotal.Add(taxAmount)

	sub, _ := subtotal.Float64()
	tax, _ := taxAmount.Float64()
	tot, _ := total.Float64()
	return Totals{Subtotal: sub, TaxAmount: tax, Total: tot}
}

// MinorUnits converts an amount to integer minor currency units (cents).
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// PlatformFeeMinorUnits is the platform's cut of an amount, in minor units.
// amount * feePercent / 100 dollars is amount * feePercent cents.
func PlatformFeeMinorUnits(amount, feePercent float64) int64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(feePercent)).
		Round(0).
		IntPart()
}
