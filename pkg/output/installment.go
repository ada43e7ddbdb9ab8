package output

import (
	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"github.com/shopspring/decimal"
)

// Money marshals as a bare JSON number with two fractional digits.
type Money decimal.Decimal

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(constants.CurrencyPlaces)), nil
}

// Installment is the wire shape of one schedule row.
type Installment struct {
	EffectiveDate      string  `json:"effectiveDate"`
	LoanAmount         Money   `json:"loanAmount"`
	OutstandingBalance Money   `json:"outstandingBalance"`
	Consolidated       *string `json:"consolidated"`
	TotalPayment       Money   `json:"totalPayment"`
	Amortization       Money   `json:"amortization"`
	PrincipalBalance   Money   `json:"principalBalance"`
	Provision          Money   `json:"provision"`
	Accumulated        Money   `json:"accumulated"`
	Paid               Money   `json:"paid"`
}

// NewInstallments maps rows to their wire shape in order. It never returns
// nil so an empty table encodes as [].
func NewInstallments(rows []loans.Row) []Installment {
	installments := make([]Installment, 0, len(rows))
	for _, row := range rows {
		installments = append(installments, Installment{
			EffectiveDate:      row.EffectiveDate.Format(constants.DateLayout),
			LoanAmount:         Money(row.LoanAmount),
			OutstandingBalance: Money(row.OutstandingBalance),
			Consolidated:       row.Consolidated,
			TotalPayment:       Money(row.TotalPayment),
			Amortization:       Money(row.Amortization),
			PrincipalBalance:   Money(row.PrincipalBalance),
			Provision:          Money(row.Provision),
			Accumulated:        Money(row.Accumulated),
			Paid:               Money(row.Paid),
		})
	}
	return installments
}
