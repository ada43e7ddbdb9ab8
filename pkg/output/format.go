// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
	"github.com/andre1397/calculadora-TOTVS/pkg/format"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var csvHeader = []string{
	"effectiveDate", "loanAmount", "outstandingBalance", "consolidated", "totalPayment",
	"amortization", "principalBalance", "provision", "accumulated", "paid",
}

// Render writes rows to w in the named format.
func Render(w io.Writer, outputFormat string, rows []loans.Row) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, rows)
	case constants.OutputFormatCSV:
		return CsvFormat(w, rows)
	case constants.OutputFormatJSON:
		return JSONFormat(w, rows)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, rows []loans.Row) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "%-10s | %-7s | %14s | %14s | %14s | %14s | %12s | %14s | %14s\n",
		"Date", "Inst.", "Payment", "Amortization", "Principal", "Outstanding", "Provision", "Accumulated", "Paid"); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "%-10s | %-7s | %14s | %14s | %14s | %14s | %12s | %14s | %14s\n",
		"__________", "_______", "_______", "____________", "_________", "___________", "_________", "___________", "____"); err != nil {
		return err
	}

	payments := 0
	for _, row := range rows {
		label := "-"
		if row.Consolidated != nil {
			label = *row.Consolidated
			payments++
		}
		if _, err := p.Fprintf(w, "%-10s | %-7s | %14s | %14s | %14s | %14s | %12s | %14s | %14s\n",
			row.EffectiveDate.Format(constants.DateLayout),
			label,
			format.NumericCurrency(row.TotalPayment),
			format.NumericCurrency(row.Amortization),
			format.NumericCurrency(row.PrincipalBalance),
			format.NumericCurrency(row.OutstandingBalance),
			format.NumericCurrency(row.Provision),
			format.NumericCurrency(row.Accumulated),
			format.NumericCurrency(row.Paid),
		); err != nil {
			return err
		}
	}

	paid, interest := decimal.Zero, decimal.Zero
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		paid, interest = last.Paid, last.Accumulated
	}
	_, err := p.Fprintf(w, "\n%d periods, %d installments, total paid %s, total interest %s\n",
		len(rows), payments, format.Currency(paid), format.Currency(interest))
	return err
}

// CsvFormat outputs in comma-separated value format with the wire field names
// as the header.
func CsvFormat(w io.Writer, rows []loans.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, inst := range NewInstallments(rows) {
		consolidated := ""
		if inst.Consolidated != nil {
			consolidated = *inst.Consolidated
		}
		record := []string{
			inst.EffectiveDate,
			fixed(inst.LoanAmount),
			fixed(inst.OutstandingBalance),
			consolidated,
			fixed(inst.TotalPayment),
			fixed(inst.Amortization),
			fixed(inst.PrincipalBalance),
			fixed(inst.Provision),
			fixed(inst.Accumulated),
			fixed(inst.Paid),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSONFormat writes the same array the HTTP API returns.
func JSONFormat(w io.Writer, rows []loans.Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewInstallments(rows))
}

func fixed(m Money) string {
	return decimal.Decimal(m).StringFixed(constants.CurrencyPlaces)
}
