// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/mortgage-math/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-math.
type Configuration struct {
	Logging       LoggingConfig        `yaml:"logging,omitempty"`
	Output        OutputConfig         `yaml:"output,omitempty"`
	Mortgage      *MortgageConfig      `yaml:"mortgage,omitempty"`
	Affordability *AffordabilityConfig `yaml:"affordability,omitempty"`
	UpfrontCosts  *UpfrontCostsConfig  `yaml:"upfrontCosts,omitempty"`
	FeeSchedules  []FeeScheduleConfig  `yaml:"feeSchedules,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// MortgageConfig requests a monthly payment estimate and optionally the full
// amortization schedule.
type MortgageConfig struct {
	LoanAmount   float64 `yaml:"loanAmount"`
	InterestRate float64 `yaml:"interestRate"`
	TermYears    int     `yaml:"termYears"`
	WithSchedule bool    `yaml:"withSchedule,omitempty"`
}

// AffordabilityConfig requests a maximum affordable loan estimate. A
// non-zero DownPaymentPercent additionally requests the maximum home price.
type AffordabilityConfig struct {
	MonthlyIncome      float64 `yaml:"monthlyIncome"`
	MonthlyDebts       float64 `yaml:"monthlyDebts"`
	InterestRate       float64 `yaml:"interestRate"`
	TermYears          int     `yaml:"termYears"`
	DebtToIncomeRatio  float64 `yaml:"debtToIncomeRatio,omitempty"`
	DownPaymentPercent float64 `yaml:"downPaymentPercent,omitempty"`
}

// UpfrontCostsConfig requests an upfront cost breakdown. Schedule names
// refer to entries under feeSchedules; empty names select the canonical
// tables.
type UpfrontCostsConfig struct {
	PropertyPrice        float64  `yaml:"propertyPrice"`
	LoanAmount           float64  `yaml:"loanAmount"`
	DiscountPercent      float64  `yaml:"discountPercent,omitempty"`
	DownPaymentPercent   float64  `yaml:"downPaymentPercent,omitempty"`
	LoanStampDutyRate    float64  `yaml:"loanStampDutyRate,omitempty"`
	WaivedFees           []string `yaml:"waivedFees,omitempty"`
	TransferDutySchedule string   `yaml:"transferDutySchedule,omitempty"`
	LegalFeeSchedule     string   `yaml:"legalFeeSchedule,omitempty"`
}

// FeeScheduleConfig describes a user-supplied tiered fee table.
type FeeScheduleConfig struct {
	Name       string          `yaml:"name"`
	MinimumFee float64         `yaml:"minimumFee,omitempty"`
	Tiers      []FeeTierConfig `yaml:"tiers"`
}

// FeeTierConfig is one tier of a user-supplied schedule. A zero UpperBound
// marks the final, unbounded tier.
type FeeTierConfig struct {
	UpperBound   float64 `yaml:"upperBound,omitempty"`
	BaseFee      float64 `yaml:"baseFee,omitempty"`
	Rate         float64 `yaml:"rate"`
	MarginalBase float64 `yaml:"marginalBase,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs soft validation and returns human-readable
// warnings. Hard input errors surface later from the calculation layer.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if conf.Mortgage == nil && conf.Affordability == nil && conf.UpfrontCosts == nil {
		warnings = append(warnings, "no calculators requested; nothing to compute")
	}

	if conf.Affordability != nil {
		ratio := conf.Affordability.DebtToIncomeRatio
		if ratio > 0.36 {
			warnings = append(warnings, fmt.Sprintf(
				"debt-to-income ratio %.2f exceeds the conventional 0.36 ceiling", ratio))
		}
	}

	if conf.UpfrontCosts != nil {
		baseline := conf.UpfrontCosts.DownPaymentPercent
		if baseline == 0 {
			baseline = constants.BaselineDownPaymentPercent
		}
		if conf.UpfrontCosts.DiscountPercent > baseline {
			warnings = append(warnings, fmt.Sprintf(
				"discount %.2f%% exceeds the %.2f%% down payment; result will be reported as a rebate",
				conf.UpfrontCosts.DiscountPercent, baseline))
		}
	}

	return warnings
}
