package loans

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrInvalidDateRange means the date ordering invariants do not hold.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidAmount means a non-positive (or out of bounds) principal or rate.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNonAmortizingSchedule means the rate/term combination cannot retire
	// the principal under the configured payment policy.
	ErrNonAmortizingSchedule = errors.New("non-amortizing schedule")
)

// Stable messages surfaced verbatim to clients.
const (
	MsgFinalBeforeStart      = "the final date must be after the start date"
	MsgFirstPaymentOutside   = "the first payment date must be after the start date and before the final date"
	MsgLoanAmountNotPositive = "the loan amount must be greater than zero"
	MsgInterestNotPositive   = "the interest rate must be greater than zero"
	MsgLoanAmountTooLarge    = "the loan amount exceeds the maximum allowed"
	MsgInterestTooLarge      = "the interest rate exceeds the maximum allowed"
	MsgTooManyPeriods        = "the date range produces more periods than allowed"
	MsgNonAmortizing         = "the installment does not cover the accrued interest; the rate and term cannot retire the principal"
)

// Error is a client-facing schedule error carrying one of the kinds above and
// a stable message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Code returns a machine-friendly identifier of the kind.
func (e *Error) Code() string {
	switch e.Kind {
	case ErrInvalidDateRange:
		return "INVALID_DATE_RANGE"
	case ErrInvalidAmount:
		return "INVALID_AMOUNT"
	case ErrNonAmortizingSchedule:
		return "NON_AMORTIZING_SCHEDULE"
	default:
		return "UNKNOWN"
	}
}

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}
