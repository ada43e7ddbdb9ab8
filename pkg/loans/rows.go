package loans

import (
	"fmt"
	"time"

	"github.com/andre1397/calculadora-TOTVS/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Settlement tells payment rows apart from accrual-only rows.
type Settlement int

const (
	// SettlementNone marks origination and accrual-only rows.
	SettlementNone Settlement = iota
	// SettlementRegular marks every installment but the last.
	SettlementRegular
	// SettlementFinal marks the installment that retires the loan.
	SettlementFinal
)

// Row is one line of the amortization table. All amounts are rounded to
// currency precision.
type Row struct {
	EffectiveDate      time.Time
	Kind               Kind
	Settlement         Settlement
	Consolidated       *string // "k/n" on payment rows, nil otherwise
	LoanAmount         decimal.Decimal
	OutstandingBalance decimal.Decimal
	TotalPayment       decimal.Decimal
	Amortization       decimal.Decimal
	PrincipalBalance   decimal.Decimal
	Provision          decimal.Decimal
	Accumulated        decimal.Decimal
	Paid               decimal.Decimal
	Interest           decimal.Decimal // accrued during the period; not part of the wire row
}

// IsPayment reports whether the row settles an installment.
func (r Row) IsPayment() bool {
	return r.Settlement != SettlementNone
}

// assemble rounds the ledger into rows. Balances and running totals are
// rounded once per row and the per-row amortization is the difference of
// consecutive rounded principal balances, so the amortizations add up to the
// loan amount exactly.
func assemble(entries []ledgerEntry, loanAmount decimal.Decimal) []Row {
	n := 0
	for _, e := range entries {
		if e.Period.Kind == KindPayment {
			n++
		}
	}

	rows := make([]Row, 0, len(entries))
	accumulated := decimal.Zero
	paid := decimal.Zero
	previous := mathutil.Round(loanAmount)

	for _, e := range entries {
		accumulated = accumulated.Add(e.Interest)
		paid = paid.Add(e.Payment)

		principal := mathutil.Round(e.Principal)
		provision := mathutil.Round(e.Provision)

		row := Row{
			EffectiveDate:      e.Period.Date,
			Kind:               e.Period.Kind,
			LoanAmount:         decimal.Zero,
			OutstandingBalance: principal.Add(provision),
			TotalPayment:       mathutil.Round(e.Payment),
			Amortization:       previous.Sub(principal),
			PrincipalBalance:   principal,
			Provision:          provision,
			Accumulated:        mathutil.Round(accumulated),
			Paid:               mathutil.Round(paid),
			Interest:           mathutil.Round(e.Interest),
		}

		switch e.Period.Kind {
		case KindOrigination:
			row.LoanAmount = mathutil.Round(loanAmount)
		case KindPayment:
			label := fmt.Sprintf("%d/%d", e.Period.Installment, n)
			row.Consolidated = &label
			row.Settlement = SettlementRegular
			if e.Period.Installment == n {
				row.Settlement = SettlementFinal
			}
		}

		rows = append(rows, row)
		previous = principal
	}

	return rows
}
