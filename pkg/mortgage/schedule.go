package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-math/pkg/mathutil"
	"go.uber.org/zap"
)

// ScheduleRow holds the values for one payment period. Fields are rounded to
// two decimals for reporting; the running balance underneath is not.
type ScheduleRow struct {
	Period           int
	Payment          float64
	Principal        float64
	Interest         float64
	RemainingBalance float64
}

// ScheduleGenerator provides utilities for generating loan amortization schedules
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// GenerateSchedule creates a complete amortization schedule for the loan, one
// row per month, ending early if the balance reaches zero before the term
// does.
func (g *ScheduleGenerator) GenerateSchedule(terms LoanTerms) ([]ScheduleRow, error) {
	monthlyPayment, err := CalculateMonthlyPayment(terms)
	if err != nil {
		return nil, err
	}

	termMonths := terms.TermMonths()
	rows := make([]ScheduleRow, 0, termMonths)
	balance := terms.Principal

	for period := 1; period <= termMonths; period++ {
		interest := CalculateInterestPayment(balance, terms.AnnualInterestRate)
		principal := monthlyPayment - interest
		balance -= principal

		if period == termMonths || mathutil.Round(balance) <= 0 {
			// We will get machine error otherwise so just set to 0.
			balance = 0
		}

		rows = append(rows, ScheduleRow{
			Period:           period,
			Payment:          mathutil.Round(monthlyPayment),
			Principal:        mathutil.Round(principal),
			Interest:         mathutil.Round(interest),
			RemainingBalance: mathutil.Round(balance),
		})

		if balance == 0 {
			if period < termMonths {
				g.logger.Debug(fmt.Sprintf("schedule matured at period %d of %d", period, termMonths),
					zap.String("op", "mortgage.GenerateSchedule"),
				)
			}
			break
		}
	}

	return rows, nil
}
