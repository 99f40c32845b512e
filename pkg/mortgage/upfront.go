package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-math/pkg/constants"
	"github.com/iwvelando/mortgage-math/pkg/feeschedule"
)

// FeeKind tags an upfront cost component so callers can waive it.
type FeeKind string

const (
	FeeTransferDuty  FeeKind = "transferDuty"
	FeeLoanStampDuty FeeKind = "loanStampDuty"
	FeeLegal         FeeKind = "legalFees"
)

// UpfrontCostInput holds the parameters for an upfront cost estimate. Zero
// values for DownPaymentPercent and LoanStampDutyRatePercent select the
// package defaults; nil schedules select the canonical tables.
type UpfrontCostInput struct {
	PropertyPrice            float64
	LoanAmount               float64
	DiscountPercent          float64
	DownPaymentPercent       float64
	LoanStampDutyRatePercent float64
	WaivedFees               map[FeeKind]bool
	TransferDuty             *feeschedule.Schedule
	LegalFees                *feeschedule.Schedule
}

// UpfrontCosts breaks down the cash due at purchase. DownPayment is negative
// when the developer discount exceeds the baseline down payment (a rebate),
// and Total carries the same sign contract: a negative total means the buyer
// nets money back.
type UpfrontCosts struct {
	DownPayment   float64
	TransferDuty  float64
	LoanStampDuty float64
	LegalFees     float64
	Total         float64
}

// IsRebate reports whether the overall result is money back to the buyer.
func (c UpfrontCosts) IsRebate() bool {
	return c.Total < 0
}

// CalculateDownPayment returns the cash portion of the purchase price.
func CalculateDownPayment(propertyPrice, downPaymentPercent float64) float64 {
	return propertyPrice * downPaymentPercent / constants.PercentageMultiplier
}

// CalculateLoanStampDuty returns the flat-rate stamp duty on the loan agreement.
func CalculateLoanStampDuty(loanAmount, ratePercent float64) float64 {
	return loanAmount * ratePercent / constants.PercentageMultiplier
}

func (input UpfrontCostInput) validate() error {
	if input.PropertyPrice <= 0 {
		return fmt.Errorf("%w: property price must be positive, got %.2f", ErrInvalidInput, input.PropertyPrice)
	}
	if input.LoanAmount < 0 {
		return fmt.Errorf("%w: loan amount must be non-negative, got %.2f", ErrInvalidInput, input.LoanAmount)
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return fmt.Errorf("%w: discount percent must be in [0,100], got %.2f", ErrInvalidInput, input.DiscountPercent)
	}
	if input.DownPaymentPercent < 0 || input.DownPaymentPercent > 100 {
		return fmt.Errorf("%w: down payment percent must be in [0,100], got %.2f", ErrInvalidInput, input.DownPaymentPercent)
	}
	return nil
}

// CalculateUpfrontCosts estimates the cash due at purchase: down payment net
// of any developer discount, transfer duty and legal fees from their tier
// schedules, and flat stamp duty on the loan. Fees named in WaivedFees are
// zeroed. A discount above the baseline down payment flips the down payment
// negative, and if the rebate outweighs the fees the total itself goes
// negative.
func CalculateUpfrontCosts(input UpfrontCostInput) (UpfrontCosts, error) {
	if err := input.validate(); err != nil {
		return UpfrontCosts{}, err
	}

	downPaymentPercent := input.DownPaymentPercent
	if downPaymentPercent == 0 {
		downPaymentPercent = constants.BaselineDownPaymentPercent
	}
	stampDutyRate := input.LoanStampDutyRatePercent
	if stampDutyRate == 0 {
		stampDutyRate = constants.DefaultLoanStampDutyRatePercent
	}

	transferDuty := feeschedule.TransferDuty
	if input.TransferDuty != nil {
		transferDuty = *input.TransferDuty
	}
	legalFees := feeschedule.LegalFees
	if input.LegalFees != nil {
		legalFees = *input.LegalFees
	}
	if err := transferDuty.Validate(); err != nil {
		return UpfrontCosts{}, err
	}
	if err := legalFees.Validate(); err != nil {
		return UpfrontCosts{}, err
	}

	var costs UpfrontCosts
	costs.DownPayment = CalculateDownPayment(input.PropertyPrice, downPaymentPercent-input.DiscountPercent)
	if !input.WaivedFees[FeeTransferDuty] {
		costs.TransferDuty = transferDuty.Fee(input.PropertyPrice)
	}
	if !input.WaivedFees[FeeLoanStampDuty] {
		costs.LoanStampDuty = CalculateLoanStampDuty(input.LoanAmount, stampDutyRate)
	}
	if !input.WaivedFees[FeeLegal] {
		costs.LegalFees = legalFees.Fee(input.PropertyPrice)
	}
	costs.Total = costs.DownPayment + costs.TransferDuty + costs.LoanStampDuty + costs.LegalFees

	return costs, nil
}
