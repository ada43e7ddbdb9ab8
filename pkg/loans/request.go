package loans

import (
	"time"

	"github.com/andre1397/calculadora-TOTVS/pkg/datetime"
	"github.com/shopspring/decimal"
)

// Request holds the five inputs of a schedule. InterestRate is a fraction per
// regular (monthly) period, e.g. 0.02 for 2% a month.
type Request struct {
	StartDate        time.Time
	FinalDate        time.Time
	FirstPaymentDate time.Time
	LoanAmount       decimal.Decimal
	InterestRate     decimal.Decimal
}

// Limits bounds the accepted requests. Zero values disable a bound.
type Limits struct {
	MaxLoanAmount   decimal.Decimal
	MaxInterestRate decimal.Decimal
	MaxPeriods      int
}

// Normalized returns a copy of r with every date reduced to its calendar day.
func (r Request) Normalized() Request {
	r.StartDate = datetime.Normalize(r.StartDate)
	r.FinalDate = datetime.Normalize(r.FinalDate)
	r.FirstPaymentDate = datetime.Normalize(r.FirstPaymentDate)
	return r
}

// Validate checks the date ordering first and the amounts second. It returns
// an *Error so the kind and message survive to the caller.
func (r Request) Validate(limits Limits) error {
	if !r.FinalDate.After(r.StartDate) {
		return newError(ErrInvalidDateRange, MsgFinalBeforeStart)
	}
	if !r.FirstPaymentDate.After(r.StartDate) || !r.FirstPaymentDate.Before(r.FinalDate) {
		return newError(ErrInvalidDateRange, MsgFirstPaymentOutside)
	}

	if !r.LoanAmount.IsPositive() {
		return newError(ErrInvalidAmount, MsgLoanAmountNotPositive)
	}
	if !r.InterestRate.IsPositive() {
		return newError(ErrInvalidAmount, MsgInterestNotPositive)
	}
	if limits.MaxLoanAmount.IsPositive() && r.LoanAmount.GreaterThan(limits.MaxLoanAmount) {
		return newError(ErrInvalidAmount, MsgLoanAmountTooLarge)
	}
	if limits.MaxInterestRate.IsPositive() && r.InterestRate.GreaterThan(limits.MaxInterestRate) {
		return newError(ErrInvalidAmount, MsgInterestTooLarge)
	}

	return nil
}
