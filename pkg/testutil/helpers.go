// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
	"github.com/andre1397/calculadora-TOTVS/pkg/datetime"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"github.com/shopspring/decimal"
)

// Request builds a schedule request from ISO dates and decimal strings.
// It panics on malformed input, which is only ever a broken test.
func Request(start, final, first, amount, rate string) loans.Request {
	return loans.Request{
		StartDate:        datetime.MustParseDate(start),
		FinalDate:        datetime.MustParseDate(final),
		FirstPaymentDate: datetime.MustParseDate(first),
		LoanAmount:       decimal.RequireFromString(amount),
		InterestRate:     decimal.RequireFromString(rate),
	}
}

// FindRow finds the row effective on date (YYYY-MM-DD).
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []loans.Row, date string) *loans.Row {
	for i := range rows {
		if rows[i].EffectiveDate.Format(constants.DateLayout) == date {
			return &rows[i]
		}
	}
	return nil
}

// Payments returns the rows that settle an installment, in order.
func Payments(rows []loans.Row) []loans.Row {
	var payments []loans.Row
	for _, row := range rows {
		if row.IsPayment() {
			payments = append(payments, row)
		}
	}
	return payments
}
