package mortgage

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-math/pkg/constants"
)

// AffordabilityInput holds the parameters for estimating the maximum
// affordable loan from income. A zero DebtToIncomeRatio selects
// constants.DefaultDebtToIncomeRatio.
type AffordabilityInput struct {
	MonthlyIncome      float64
	MonthlyDebts       float64
	AnnualInterestRate float64 // percent
	TermYears          int
	DebtToIncomeRatio  float64
}

func (input AffordabilityInput) validate() error {
	if input.MonthlyIncome <= 0 {
		return fmt.Errorf("%w: monthly income must be positive, got %.2f", ErrInvalidInput, input.MonthlyIncome)
	}
	if input.MonthlyDebts < 0 {
		return fmt.Errorf("%w: monthly debts must be non-negative, got %.2f", ErrInvalidInput, input.MonthlyDebts)
	}
	if input.AnnualInterestRate < 0 {
		return fmt.Errorf("%w: interest rate must be non-negative, got %.2f", ErrInvalidInput, input.AnnualInterestRate)
	}
	if input.TermYears <= 0 {
		return fmt.Errorf("%w: term must be at least 1 year, got %d", ErrInvalidInput, input.TermYears)
	}
	if input.DebtToIncomeRatio < 0 || input.DebtToIncomeRatio > 1 {
		return fmt.Errorf("%w: debt-to-income ratio must be in (0,1], got %.2f", ErrInvalidInput, input.DebtToIncomeRatio)
	}
	return nil
}

func (input AffordabilityInput) ratio() float64 {
	if input.DebtToIncomeRatio == 0 {
		return constants.DefaultDebtToIncomeRatio
	}
	return input.DebtToIncomeRatio
}

// MaxMonthlyPayment returns the payment capacity left after existing debts.
// May be negative; CalculateMaxAffordableLoan clamps that case to zero.
func (input AffordabilityInput) MaxMonthlyPayment() float64 {
	return input.MonthlyIncome*input.ratio() - input.MonthlyDebts
}

// CalculateMaxAffordableLoan estimates the maximum loan principal the income
// supports, using the inverse annuity formula. When existing debts consume
// the entire payment capacity the affordable loan is 0, not negative. A zero
// interest rate falls back to straight-line capacity (payment times term).
func CalculateMaxAffordableLoan(input AffordabilityInput) (float64, error) {
	if err := input.validate(); err != nil {
		return 0, err
	}

	maxMonthlyPayment := input.MaxMonthlyPayment()
	if maxMonthlyPayment <= 0 {
		return 0, nil
	}

	termMonths := input.TermYears * constants.MonthsPerYear
	if input.AnnualInterestRate == 0 {
		return maxMonthlyPayment * float64(termMonths), nil
	}

	periodicInterestRate := input.AnnualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	return maxMonthlyPayment * (power - 1.00) / (periodicInterestRate * power), nil
}

// CalculateMaxHomePrice extends the affordable loan with a down payment
// assumption: a buyer covering downPaymentPercent of the price in cash can
// afford a home priced at loan / (1 - downPaymentPercent/100).
func CalculateMaxHomePrice(input AffordabilityInput, downPaymentPercent float64) (float64, error) {
	if downPaymentPercent < 0 || downPaymentPercent >= 100 {
		return 0, fmt.Errorf("%w: down payment percent must be in [0,100), got %.2f", ErrInvalidInput, downPaymentPercent)
	}
	maxLoan, err := CalculateMaxAffordableLoan(input)
	if err != nil {
		return 0, err
	}
	return maxLoan / (1.00 - downPaymentPercent/constants.PercentageMultiplier), nil
}
