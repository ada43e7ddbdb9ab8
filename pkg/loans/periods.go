package loans

import (
	"sort"
	"time"

	"github.com/andre1397/calculadora-TOTVS/pkg/calendar"
	"github.com/andre1397/calculadora-TOTVS/pkg/datetime"
	"github.com/andre1397/calculadora-TOTVS/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// Kind classifies a period.
type Kind int

const (
	// KindOrigination is the disbursement row at the start date.
	KindOrigination Kind = iota
	// KindAccrual accrues interest into the provision without a payment.
	KindAccrual
	// KindPayment ends with a scheduled installment.
	KindPayment
)

func (k Kind) String() string {
	switch k {
	case KindOrigination:
		return "origination"
	case KindAccrual:
		return "accrual"
	case KindPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// Period is one row of the schedule before any amounts are attached.
type Period struct {
	Index       int
	Date        time.Time
	Kind        Kind
	Fraction    decimal.Decimal // elapsed share of a regular interval since the previous period
	Installment int             // 1-based for payments, 0 otherwise
}

// PeriodOptions toggles the optional period sources.
type PeriodOptions struct {
	// MonthEndAccruals adds an accrual period at every month end.
	MonthEndAccruals bool
	// Calendar rolls payment dates to the next business day; nil disables it.
	Calendar *calendar.Calendar
}

// paymentGrid is the regular monthly interval anchored at the first payment
// date. Grid dates are always derived from the anchor so the day of month
// survives short months.
type paymentGrid struct {
	anchor     time.Time
	endOfMonth bool
}

func newPaymentGrid(anchor time.Time) paymentGrid {
	return paymentGrid{anchor: anchor, endOfMonth: datetime.IsEndOfMonth(anchor)}
}

func (g paymentGrid) at(k int) time.Time {
	return datetime.AddMonths(g.anchor, k, g.endOfMonth)
}

// endIndex returns the smallest k with at(k) >= t.
func (g paymentGrid) endIndex(t time.Time) int {
	k := datetime.MonthsBetween(g.anchor, t)
	for g.at(k).Before(t) {
		k++
	}
	for !g.at(k - 1).Before(t) {
		k--
	}
	return k
}

// fraction is the share of the regular interval containing cur that elapsed
// between prev and cur.
func (g paymentGrid) fraction(prev, cur time.Time) decimal.Decimal {
	k := g.endIndex(cur)
	length := datetime.DaysBetween(g.at(k-1), g.at(k))
	elapsed := datetime.DaysBetween(prev, cur)
	return mathutil.Div(decimal.NewFromInt(int64(elapsed)), decimal.NewFromInt(int64(length)))
}

type mark struct {
	date time.Time
	kind Kind
}

// GeneratePeriods derives the ordered periods from startDate to finalDate
// inclusive. The request must already be valid.
func GeneratePeriods(req Request, opts PeriodOptions) []Period {
	start, final := req.StartDate, req.FinalDate
	grid := newPaymentGrid(req.FirstPaymentDate)

	var marks []mark
	firstPayment := 0
	back := grid.at(-1)
	switch {
	case back.After(start):
		// Long stub: accrue at every grid date between start and the anchor.
		for k := -1; grid.at(k).After(start); k-- {
			marks = append(marks, mark{date: grid.at(k), kind: KindAccrual})
		}
	case back.Before(start):
		// Short stub: the anchor only accrues and installments start one
		// interval later.
		marks = append(marks, mark{date: grid.anchor, kind: KindAccrual})
		firstPayment = 1
	}

	for k := firstPayment; grid.at(k).Before(final); k++ {
		date := grid.at(k)
		if opts.Calendar != nil {
			date = opts.Calendar.AdjustFollowing(date)
		}
		if !date.Before(final) {
			break
		}
		marks = append(marks, mark{date: date, kind: KindPayment})
	}
	marks = append(marks, mark{date: final, kind: KindPayment})

	if opts.MonthEndAccruals {
		for _, date := range datetime.MonthEnds(start, final) {
			marks = append(marks, mark{date: date, kind: KindAccrual})
		}
	}

	marks = mergeMarks(marks)

	periods := make([]Period, 0, len(marks)+1)
	periods = append(periods, Period{Index: 0, Date: start, Kind: KindOrigination, Fraction: decimal.Zero})
	installment := 0
	for _, m := range marks {
		prev := periods[len(periods)-1].Date
		p := Period{
			Index:    len(periods),
			Date:     m.date,
			Kind:     m.kind,
			Fraction: grid.fraction(prev, m.date),
		}
		if m.kind == KindPayment {
			installment++
			p.Installment = installment
		}
		periods = append(periods, p)
	}

	return periods
}

// mergeMarks sorts by date and collapses duplicates; a payment wins over an
// accrual on the same date.
func mergeMarks(marks []mark) []mark {
	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].date.Before(marks[j].date)
	})

	merged := marks[:0]
	for _, m := range marks {
		if n := len(merged); n > 0 && merged[n-1].date.Equal(m.date) {
			if m.kind > merged[n-1].kind {
				merged[n-1].kind = m.kind
			}
			continue
		}
		merged = append(merged, m)
	}
	return merged
}

// CountPayments returns the number of payment periods.
func CountPayments(periods []Period) int {
	n := 0
	for _, p := range periods {
		if p.Kind == KindPayment {
			n++
		}
	}
	return n
}
