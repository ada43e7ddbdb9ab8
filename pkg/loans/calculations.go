// Package loans computes loan amortization schedules: it generates the accrual
// and payment periods between the start and final dates, accrues interest on
// the running principal, sizes the installments and assembles the rounded rows
// that the API returns.
package loans

import (
	"fmt"
	"strings"

	"github.com/andre1397/calculadora-TOTVS/pkg/mathutil"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Method is the installment sizing policy.
type Method string

const (
	// MethodAnnuity pays a constant installment (French/Price table).
	MethodAnnuity Method = "annuity"
	// MethodConstant amortizes a constant share of principal (SAC).
	MethodConstant Method = "constant"
)

// ParseMethod maps a configuration value to a Method. Empty means annuity.
func ParseMethod(value string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(value))) {
	case "", MethodAnnuity:
		return MethodAnnuity, nil
	case MethodConstant:
		return MethodConstant, nil
	default:
		return "", fmt.Errorf("unknown amortization method %q: expected %s or %s", value, MethodAnnuity, MethodConstant)
	}
}

// AccrueInterest returns balance × rate × fraction at calculation precision.
// The proration is simple within a period; compounding across periods comes
// from applying it to the updated balance every period.
func AccrueInterest(balance, rate, fraction decimal.Decimal) decimal.Decimal {
	return mathutil.Carry(balance.Mul(rate).Mul(fraction))
}

// CalculateAnnuityPayment calculates the constant installment that retires
// principal over the given number of regular periods using the standard
// amortization formula P·r / (1 − (1+r)^−n). Schedules are sized with
// SolveAnnuityPayment, which also accounts for stubs.
func CalculateAnnuityPayment(principal, rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	if !rate.IsPositive() {
		return mathutil.Div(principal, decimal.NewFromInt(int64(periods)))
	}

	base := one.Add(rate)
	growth := one
	for i := 0; i < periods; i++ {
		growth = mathutil.Carry(growth.Mul(base))
	}
	// Rates below calculation precision leave growth at exactly one.
	if growth.Equal(one) {
		return mathutil.Div(principal, decimal.NewFromInt(int64(periods)))
	}
	return mathutil.Div(principal.Mul(rate).Mul(growth), growth.Sub(one))
}

// CalculateConstantAmortization returns the principal share of every
// installment under the constant amortization method.
func CalculateConstantAmortization(principal decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return decimal.Zero
	}
	return mathutil.Div(principal, decimal.NewFromInt(int64(periods)))
}
