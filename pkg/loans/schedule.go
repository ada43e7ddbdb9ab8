package loans

import (
	"github.com/andre1397/calculadora-TOTVS/pkg/datetime"
	"go.uber.org/zap"
)

// Options configures a Calculator. The zero value computes annuity schedules
// with no optional periods and no limits.
type Options struct {
	Method  Method
	Periods PeriodOptions
	Limits  Limits
}

// Calculator computes schedules. It holds only immutable options, so one
// instance serves any number of concurrent calls.
type Calculator struct {
	logger *zap.Logger
	opts   Options
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger, opts Options) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Method == "" {
		opts.Method = MethodAnnuity
	}
	return &Calculator{logger: logger, opts: opts}
}

// Method returns the installment policy in use.
func (c *Calculator) Method() Method {
	return c.opts.Method
}

// Calculate validates req and returns its amortization table, one row per
// period in date order. No partial table is returned on error.
func (c *Calculator) Calculate(req Request) ([]Row, error) {
	req = req.Normalized()
	if err := req.Validate(c.opts.Limits); err != nil {
		return nil, err
	}

	maxPeriods := c.opts.Limits.MaxPeriods
	if maxPeriods > 0 && datetime.MonthsBetween(req.StartDate, req.FinalDate) > maxPeriods {
		return nil, newError(ErrInvalidDateRange, MsgTooManyPeriods)
	}

	periods := GeneratePeriods(req, c.opts.Periods)
	if maxPeriods > 0 && len(periods) > maxPeriods {
		return nil, newError(ErrInvalidDateRange, MsgTooManyPeriods)
	}

	c.logger.Debug("generated schedule periods",
		zap.String("op", "loans.Calculate"),
		zap.Int("periods", len(periods)),
		zap.Int("payments", CountPayments(periods)),
		zap.String("method", string(c.opts.Method)),
	)

	entries, err := amortize(periods, req, c.opts.Method)
	if err != nil {
		return nil, err
	}

	return assemble(entries, req.LoanAmount), nil
}
