package feeschedule

import (
	"errors"
	"math"
	"testing"
)

func TestCanonicalSchedulesAreWellFormed(t *testing.T) {
	for _, schedule := range []Schedule{TransferDuty, LegalFees} {
		if err := schedule.Validate(); err != nil {
			t.Errorf("canonical schedule %q failed validation: %v", schedule.Name, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		schedule  Schedule
		expectErr bool
	}{
		{
			name:      "Empty schedule",
			schedule:  Schedule{Name: "empty"},
			expectErr: true,
		},
		{
			name: "Single unbounded tier",
			schedule: Schedule{Name: "flat", Tiers: []Tier{
				{UpperBound: Unbounded, MarginalRatePercent: 2.0},
			}},
			expectErr: false,
		},
		{
			name: "First tier not starting at zero",
			schedule: Schedule{Name: "offset", Tiers: []Tier{
				{UpperBound: Unbounded, MarginalRatePercent: 1.0, MarginalBase: 100},
			}},
			expectErr: true,
		},
		{
			name: "Missing unbounded final tier",
			schedule: Schedule{Name: "capped", Tiers: []Tier{
				{UpperBound: 100000, MarginalRatePercent: 1.0},
			}},
			expectErr: true,
		},
		{
			name: "Non-monotonic bounds",
			schedule: Schedule{Name: "shuffled", Tiers: []Tier{
				{UpperBound: 500000, MarginalRatePercent: 1.0},
				{UpperBound: 100000, MarginalRatePercent: 2.0, MarginalBase: 500000},
				{UpperBound: Unbounded, MarginalRatePercent: 3.0, MarginalBase: 100000},
			}},
			expectErr: true,
		},
		{
			name: "Gap between tiers",
			schedule: Schedule{Name: "gapped", Tiers: []Tier{
				{UpperBound: 100000, MarginalRatePercent: 1.0},
				{UpperBound: Unbounded, MarginalRatePercent: 2.0, MarginalBase: 200000},
			}},
			expectErr: true,
		},
		{
			name: "Negative rate",
			schedule: Schedule{Name: "negative", Tiers: []Tier{
				{UpperBound: Unbounded, MarginalRatePercent: -1.0},
			}},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schedule.Validate()
			if tt.expectErr {
				if err == nil {
					t.Errorf("Validate() expected error but got none")
				} else if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error = %v", err)
			}
		})
	}
}

func TestTransferDutyFee(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"Within first tier", 50000, 500},        // 1% of 50,000
		{"First breakpoint", 100000, 1000},       // 1% of 100,000
		{"Second tier", 300000, 5000},            // 1,000 + 2% of 200,000
		{"Second breakpoint", 500000, 9000},      // 1,000 + 2% of 400,000
		{"Third tier", 750000, 16500},            // 9,000 + 3% of 250,000
		{"Third breakpoint", 1000000, 24000},     // 9,000 + 3% of 500,000
		{"Unbounded tier", 1500000, 44000},       // 24,000 + 4% of 500,000
		{"Zero property price edge", 0, 0},       // degenerate but defined
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TransferDuty.Fee(tt.amount)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("TransferDuty.Fee(%.2f) = %.2f, expected %.2f", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestLegalFeesFee(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"Below the floor", 20000, 500},       // 1.25% would be 250, floor applies
		{"Exactly at the floor", 40000, 500},  // 1.25% of 40,000 = 500
		{"First tier", 300000, 3750},          // 1.25% of 300,000
		{"First breakpoint", 500000, 6250},    // 1.25% of 500,000
		{"Second tier", 800000, 9250},         // 6,250 + 1% of 300,000
		{"Second breakpoint", 1000000, 11250}, // 6,250 + 1% of 500,000
		{"Unbounded tier", 2000000, 16250},    // 11,250 + 0.5% of 1,000,000
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LegalFees.Fee(tt.amount)
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("LegalFees.Fee(%.2f) = %.2f, expected %.2f", tt.amount, result, tt.expected)
			}
		})
	}
}

// Fees must be non-decreasing in amount and continuous at tier boundaries:
// stepping across a breakpoint may only add the marginal rate, never a jump.
func TestFeeMonotonicityAndContinuity(t *testing.T) {
	for _, schedule := range []Schedule{TransferDuty, LegalFees} {
		previous := schedule.Fee(0)
		for amount := 1000.0; amount <= 2000000; amount += 1000 {
			current := schedule.Fee(amount)
			if current < previous-0.01 {
				t.Fatalf("%s: fee decreased from %.2f to %.2f at amount %.2f",
					schedule.Name, previous, current, amount)
			}
			previous = current
		}

		for _, tier := range schedule.Tiers {
			if tier.UpperBound == Unbounded {
				continue
			}
			below := schedule.Fee(tier.UpperBound - 0.01)
			above := schedule.Fee(tier.UpperBound + 0.01)
			if math.Abs(above-below) > 1.0 {
				t.Errorf("%s: discontinuity at boundary %.2f (%.4f vs %.4f)",
					schedule.Name, tier.UpperBound, below, above)
			}
		}
	}
}
