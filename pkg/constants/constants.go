// Package constants provides shared constants for the mortgage-math application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Calculator defaults
const (
	// DefaultDebtToIncomeRatio is the share of monthly income assumed
	// available for debt service when the caller does not supply one
	DefaultDebtToIncomeRatio = 0.28

	// BaselineDownPaymentPercent is the conventional down payment rate;
	// discounts above this threshold turn the down payment into a rebate
	BaselineDownPaymentPercent = 10.0

	// DefaultLoanStampDutyRatePercent is the flat stamp duty rate applied
	// to the loan agreement when the caller does not supply one
	DefaultLoanStampDutyRatePercent = 0.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
