package loans

import (
	"github.com/andre1397/calculadora-TOTVS/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// ledgerEntry holds the unrounded amounts of one period.
type ledgerEntry struct {
	Period       Period
	Interest     decimal.Decimal // accrued during the period
	InterestPaid decimal.Decimal // provision settled by the payment
	Payment      decimal.Decimal
	Amortization decimal.Decimal
	Principal    decimal.Decimal // after the period
	Provision    decimal.Decimal // after the period
}

// amortize sizes the installments for method and walks the periods with them.
func amortize(periods []Period, req Request, method Method) ([]ledgerEntry, error) {
	n := CountPayments(periods)

	if method == MethodConstant {
		share := CalculateConstantAmortization(req.LoanAmount, n)
		return settle(periods, req, n, func(decimal.Decimal) decimal.Decimal {
			return share
		})
	}

	payment := SolveAnnuityPayment(periods, req.LoanAmount, req.InterestRate)
	return settle(periods, req, n, func(provision decimal.Decimal) decimal.Decimal {
		return payment.Sub(provision)
	})
}

// settle walks the periods in order, accruing interest into the provision and
// settling all of it on every payment. amortization gives the principal share
// of each non-final installment; the last installment retires whatever
// principal remains. A non-final installment that does not reduce the
// principal makes the schedule non-amortizing.
func settle(periods []Period, req Request, n int, amortization func(provision decimal.Decimal) decimal.Decimal) ([]ledgerEntry, error) {
	principal := req.LoanAmount
	provision := decimal.Zero
	entries := make([]ledgerEntry, 0, len(periods))

	for _, p := range periods {
		e := ledgerEntry{Period: p}

		if p.Kind != KindOrigination {
			e.Interest = AccrueInterest(principal, req.InterestRate, p.Fraction)
			provision = provision.Add(e.Interest)
		}

		if p.Kind == KindPayment {
			e.InterestPaid = provision
			if p.Installment == n {
				e.Amortization = principal
			} else {
				e.Amortization = amortization(provision)
				if !e.Amortization.IsPositive() {
					return nil, newError(ErrNonAmortizingSchedule, MsgNonAmortizing)
				}
			}
			e.Payment = e.Amortization.Add(e.InterestPaid)
			principal = principal.Sub(e.Amortization)
			provision = decimal.Zero
		}

		e.Principal = principal
		e.Provision = provision
		entries = append(entries, e)
	}

	return entries, nil
}

// SolveAnnuityPayment returns the constant installment that retires principal
// on the last payment of periods, stubs included. The balance left after the
// last payment is linear in the installment, so two dry runs (installments of
// 0 and 1) determine it. On a regular grid the result equals
// CalculateAnnuityPayment.
func SolveAnnuityPayment(periods []Period, principal, rate decimal.Decimal) decimal.Decimal {
	if CountPayments(periods) == 0 {
		return decimal.Zero
	}
	r0 := residual(periods, principal, rate, decimal.Zero)
	r1 := residual(periods, principal, rate, one)
	return mathutil.Div(r0, r0.Sub(r1))
}

// residual is the principal left after paying installment on every payment
// period, the last one included. Accrual is the same as in settle.
func residual(periods []Period, principal, rate, installment decimal.Decimal) decimal.Decimal {
	provision := decimal.Zero
	for _, p := range periods {
		if p.Kind == KindOrigination {
			continue
		}
		provision = provision.Add(AccrueInterest(principal, rate, p.Fraction))
		if p.Kind == KindPayment {
			principal = principal.Add(provision).Sub(installment)
			provision = decimal.Zero
		}
	}
	return principal
}
