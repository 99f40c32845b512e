package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-math/pkg/feeschedule"
	"github.com/iwvelando/mortgage-math/pkg/mortgage"
)

// LoanTerms converts the mortgage section into the calculation input record.
func (c *MortgageConfig) LoanTerms() mortgage.LoanTerms {
	return mortgage.LoanTerms{
		Principal:          c.LoanAmount,
		AnnualInterestRate: c.InterestRate,
		TermYears:          c.TermYears,
	}
}

// Input converts the affordability section into the calculation input record.
func (c *AffordabilityConfig) Input() mortgage.AffordabilityInput {
	return mortgage.AffordabilityInput{
		MonthlyIncome:      c.MonthlyIncome,
		MonthlyDebts:       c.MonthlyDebts,
		AnnualInterestRate: c.InterestRate,
		TermYears:          c.TermYears,
		DebtToIncomeRatio:  c.DebtToIncomeRatio,
	}
}

// Schedule converts a user-supplied fee schedule into its domain form. The
// result still needs Validate; load-time validation happens in
// Configuration.FeeScheduleTables.
func (c FeeScheduleConfig) Schedule() feeschedule.Schedule {
	schedule := feeschedule.Schedule{
		Name:       c.Name,
		MinimumFee: c.MinimumFee,
	}
	for _, tier := range c.Tiers {
		upperBound := tier.UpperBound
		if upperBound == 0 {
			upperBound = feeschedule.Unbounded
		}
		schedule.Tiers = append(schedule.Tiers, feeschedule.Tier{
			UpperBound:          upperBound,
			BaseFee:             tier.BaseFee,
			MarginalRatePercent: tier.Rate,
			MarginalBase:        tier.MarginalBase,
		})
	}
	return schedule
}

// FeeScheduleTables validates every user-supplied fee schedule and returns
// them keyed by name. A malformed table is fatal at load time, before any
// calculation runs.
func (conf *Configuration) FeeScheduleTables() (map[string]feeschedule.Schedule, error) {
	tables := make(map[string]feeschedule.Schedule)
	for _, entry := range conf.FeeSchedules {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: fee schedule missing a name", feeschedule.ErrInvalidConfig)
		}
		if _, exists := tables[entry.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate fee schedule %q", feeschedule.ErrInvalidConfig, entry.Name)
		}
		schedule := entry.Schedule()
		if err := schedule.Validate(); err != nil {
			return nil, err
		}
		tables[entry.Name] = schedule
	}
	return tables, nil
}

// Input converts the upfront costs section into the calculation input
// record, resolving schedule references against the validated tables.
func (c *UpfrontCostsConfig) Input(tables map[string]feeschedule.Schedule) (mortgage.UpfrontCostInput, error) {
	input := mortgage.UpfrontCostInput{
		PropertyPrice:            c.PropertyPrice,
		LoanAmount:               c.LoanAmount,
		DiscountPercent:          c.DiscountPercent,
		DownPaymentPercent:       c.DownPaymentPercent,
		LoanStampDutyRatePercent: c.LoanStampDutyRate,
	}

	if len(c.WaivedFees) > 0 {
		input.WaivedFees = make(map[mortgage.FeeKind]bool)
		for _, tag := range c.WaivedFees {
			switch kind := mortgage.FeeKind(tag); kind {
			case mortgage.FeeTransferDuty, mortgage.FeeLoanStampDuty, mortgage.FeeLegal:
				input.WaivedFees[kind] = true
			default:
				return input, fmt.Errorf("%w: unknown waived fee tag %q", mortgage.ErrInvalidInput, tag)
			}
		}
	}

	if c.TransferDutySchedule != "" {
		schedule, exists := tables[c.TransferDutySchedule]
		if !exists {
			return input, fmt.Errorf("%w: fee schedule %q not defined", feeschedule.ErrInvalidConfig, c.TransferDutySchedule)
		}
		input.TransferDuty = &schedule
	}
	if c.LegalFeeSchedule != "" {
		schedule, exists := tables[c.LegalFeeSchedule]
		if !exists {
			return input, fmt.Errorf("%w: fee schedule %q not defined", feeschedule.ErrInvalidConfig, c.LegalFeeSchedule)
		}
		input.LegalFees = &schedule
	}

	return input, nil
}
