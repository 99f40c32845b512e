// Package report runs the configured calculators and assembles their results
// into renderable records for the output layer.
package report

import (
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-math/internal/config"
	"github.com/iwvelando/mortgage-math/pkg/format"
	"github.com/iwvelando/mortgage-math/pkg/mortgage"
	"go.uber.org/zap"
)

// Line is one labelled amount in a report. Amounts carrying the cost/rebate
// sign contract are stored as absolute values with the polarity folded into
// the label.
type Line struct {
	Label  string
	Amount float64
}

// Report holds the results for one calculator.
type Report struct {
	Name     string
	Lines    []Line
	Schedule []mortgage.ScheduleRow
}

// Generate runs every calculator requested in the configuration and returns
// one report per calculator.
func Generate(logger *zap.Logger, conf config.Configuration) ([]Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tables, err := conf.FeeScheduleTables()
	if err != nil {
		return nil, err
	}

	var reports []Report

	if conf.Mortgage != nil {
		result, err := mortgageReport(logger, *conf.Mortgage)
		if err != nil {
			return nil, err
		}
		reports = append(reports, result)
	}

	if conf.Affordability != nil {
		result, err := affordabilityReport(logger, *conf.Affordability)
		if err != nil {
			return nil, err
		}
		reports = append(reports, result)
	}

	if conf.UpfrontCosts != nil {
		input, err := conf.UpfrontCosts.Input(tables)
		if err != nil {
			return nil, err
		}
		result, err := upfrontReport(logger, input)
		if err != nil {
			return nil, err
		}
		reports = append(reports, result)
	}

	return reports, nil
}

func mortgageReport(logger *zap.Logger, conf config.MortgageConfig) (Report, error) {
	terms := conf.LoanTerms()
	summary, err := mortgage.LoanSummary(terms)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Name: "Monthly Mortgage Estimation",
		Lines: []Line{
			{Label: "Monthly Payment", Amount: summary.MonthlyPayment},
			{Label: "Total Paid", Amount: summary.TotalPaid},
			{Label: "Total Interest", Amount: summary.TotalInterest},
		},
	}

	if conf.WithSchedule {
		generator := mortgage.NewScheduleGenerator(logger)
		schedule, err := generator.GenerateSchedule(terms)
		if err != nil {
			return Report{}, err
		}
		report.Schedule = schedule
	}

	logger.Debug(fmt.Sprintf("monthly payment %.2f over %d periods", summary.MonthlyPayment, terms.TermMonths()),
		zap.String("op", "report.mortgageReport"),
	)
	return report, nil
}

func affordabilityReport(logger *zap.Logger, conf config.AffordabilityConfig) (Report, error) {
	input := conf.Input()
	maxLoan, err := mortgage.CalculateMaxAffordableLoan(input)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Name: "Home Affordability Estimation",
		Lines: []Line{
			{Label: "Max Monthly Payment", Amount: math.Max(input.MaxMonthlyPayment(), 0)},
			{Label: "Max Affordable Loan", Amount: maxLoan},
		},
	}

	if conf.DownPaymentPercent > 0 {
		maxPrice, err := mortgage.CalculateMaxHomePrice(input, conf.DownPaymentPercent)
		if err != nil {
			return Report{}, err
		}
		report.Lines = append(report.Lines, Line{Label: "Max Home Price", Amount: maxPrice})
	}

	logger.Debug(fmt.Sprintf("max affordable loan %.2f", maxLoan),
		zap.String("op", "report.affordabilityReport"),
	)
	return report, nil
}

func upfrontReport(logger *zap.Logger, input mortgage.UpfrontCostInput) (Report, error) {
	costs, err := mortgage.CalculateUpfrontCosts(input)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Name: "Upfront Costs Estimation",
		Lines: []Line{
			{Label: format.SignLabel(costs.DownPayment, "Down Payment", "Rebate"), Amount: math.Abs(costs.DownPayment)},
			{Label: "Transfer Duty", Amount: costs.TransferDuty},
			{Label: "Loan Stamp Duty", Amount: costs.LoanStampDuty},
			{Label: "Legal Fees", Amount: costs.LegalFees},
			{Label: format.SignLabel(costs.Total, "Total Upfront Costs", "Net Rebate"), Amount: math.Abs(costs.Total)},
		},
	}

	if costs.IsRebate() {
		logger.Debug(fmt.Sprintf("discount outweighs fees; net rebate %.2f", math.Abs(costs.Total)),
			zap.String("op", "report.upfrontReport"),
		)
	}
	return report, nil
}
