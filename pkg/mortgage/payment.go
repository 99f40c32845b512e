package mortgage

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-math/pkg/constants"
)

// LoanTerms holds the parameters of a loan.
type LoanTerms struct {
	Principal          float64
	AnnualInterestRate float64 // percent
	TermYears          int
}

func (terms LoanTerms) validate() error {
	if terms.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive, got %.2f", ErrInvalidInput, terms.Principal)
	}
	if terms.AnnualInterestRate < 0 {
		return fmt.Errorf("%w: interest rate must be non-negative, got %.2f", ErrInvalidInput, terms.AnnualInterestRate)
	}
	if terms.TermYears <= 0 {
		return fmt.Errorf("%w: term must be at least 1 year, got %d", ErrInvalidInput, terms.TermYears)
	}
	return nil
}

// TermMonths returns the number of payment periods.
func (terms LoanTerms) TermMonths() int {
	return terms.TermYears * constants.MonthsPerYear
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard annuity formula. A zero interest rate amortizes straight-line.
func CalculateMonthlyPayment(terms LoanTerms) (float64, error) {
	if err := terms.validate(); err != nil {
		return 0, err
	}

	termMonths := terms.TermMonths()
	if terms.AnnualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return terms.Principal / float64(termMonths), nil
	}

	periodicInterestRate := terms.AnnualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return terms.Principal * periodicInterestRate / discountFactor, nil
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingBalance, annualInterestRate float64) float64 {
	return remainingBalance * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Summary aggregates the lifetime figures for a loan.
type Summary struct {
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
}

// LoanSummary returns the monthly payment alongside the total paid and total
// interest over the full term.
func LoanSummary(terms LoanTerms) (Summary, error) {
	monthlyPayment, err := CalculateMonthlyPayment(terms)
	if err != nil {
		return Summary{}, err
	}
	totalPaid := monthlyPayment * float64(terms.TermMonths())
	return Summary{
		MonthlyPayment: monthlyPayment,
		TotalPaid:      totalPaid,
		TotalInterest:  totalPaid - terms.Principal,
	}, nil
}
