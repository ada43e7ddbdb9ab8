// Package mathutil provides common decimal utility functions for currency.
package mathutil

import (
	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
	"github.com/shopspring/decimal"
)

// Tolerance is one minor currency unit.
var Tolerance = decimal.RequireFromString(constants.CurrencyTolerance)

// Round rounds a value to currency precision, half away from zero (which is
// round-half-up for the non-negative amounts of a schedule).
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CurrencyPlaces)
}

// Carry rounds a value to the internal calculation precision.
func Carry(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.CalculationPlaces)
}

// Div divides at the internal calculation precision.
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, constants.CalculationPlaces)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val decimal.Decimal) bool {
	return val.Abs().LessThanOrEqual(Tolerance)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance decimal.Decimal) bool {
	return val1.Sub(val2).Abs().LessThanOrEqual(tolerance)
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
