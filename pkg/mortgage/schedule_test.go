package mortgage

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func TestGenerateSchedule(t *testing.T) {
	tests := []struct {
		name  string
		terms LoanTerms
	}{
		{"Standard 30-year mortgage", LoanTerms{Principal: 300000, AnnualInterestRate: 3.9, TermYears: 30}},
		{"Short car loan", LoanTerms{Principal: 20000, AnnualInterestRate: 4.0, TermYears: 5}},
		{"Zero-rate loan", LoanTerms{Principal: 12000, AnnualInterestRate: 0, TermYears: 5}},
		{"One-year loan", LoanTerms{Principal: 6000, AnnualInterestRate: 8.0, TermYears: 1}},
	}

	generator := NewScheduleGenerator(zap.NewNop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := generator.GenerateSchedule(tt.terms)
			if err != nil {
				t.Fatalf("GenerateSchedule() unexpected error = %v", err)
			}

			termMonths := tt.terms.TermMonths()
			if len(schedule) == 0 || len(schedule) > termMonths {
				t.Fatalf("GenerateSchedule() returned %d rows, expected 1..%d", len(schedule), termMonths)
			}

			for i, row := range schedule {
				if row.Period != i+1 {
					t.Errorf("row %d has period %d, expected %d", i, row.Period, i+1)
				}
				// Each payment splits into principal plus interest.
				if math.Abs(row.Payment-(row.Principal+row.Interest)) > 0.02 {
					t.Errorf("period %d: payment %.2f != principal %.2f + interest %.2f",
						row.Period, row.Payment, row.Principal, row.Interest)
				}
			}

			final := schedule[len(schedule)-1]
			if math.Abs(final.RemainingBalance) > 0.01 {
				t.Errorf("final remaining balance %.2f, expected within 1 cent of 0", final.RemainingBalance)
			}
		})
	}
}

func TestGenerateScheduleZeroRateExact(t *testing.T) {
	generator := NewScheduleGenerator(nil)
	schedule, err := generator.GenerateSchedule(LoanTerms{Principal: 12000, AnnualInterestRate: 0, TermYears: 5})
	if err != nil {
		t.Fatalf("GenerateSchedule() unexpected error = %v", err)
	}

	for _, row := range schedule {
		if row.Interest != 0 {
			t.Errorf("period %d: zero-rate loan accrued interest %.2f", row.Period, row.Interest)
		}
		if row.Payment != 200.00 {
			t.Errorf("period %d: payment %.2f, expected 200.00", row.Period, row.Payment)
		}
	}
}

func TestGenerateSchedulePrincipalSumsToLoan(t *testing.T) {
	generator := NewScheduleGenerator(nil)
	terms := LoanTerms{Principal: 100000, AnnualInterestRate: 5.5, TermYears: 15}

	schedule, err := generator.GenerateSchedule(terms)
	if err != nil {
		t.Fatalf("GenerateSchedule() unexpected error = %v", err)
	}

	principalPaid := 0.0
	for _, row := range schedule {
		principalPaid += row.Principal
	}
	// Per-row rounding may drift by a fraction of a cent per period.
	tolerance := 0.01 * float64(len(schedule))
	if math.Abs(principalPaid-terms.Principal) > tolerance {
		t.Errorf("principal portions sum to %.2f, expected %.2f within %.2f",
			principalPaid, terms.Principal, tolerance)
	}
}

func TestGenerateScheduleInvalidInput(t *testing.T) {
	generator := NewScheduleGenerator(nil)
	_, err := generator.GenerateSchedule(LoanTerms{Principal: -1, AnnualInterestRate: 5, TermYears: 30})
	if err == nil {
		t.Errorf("GenerateSchedule() expected error for negative principal")
	}
}
