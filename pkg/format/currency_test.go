package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0.0, "$0.00"},
		{"Small amount", 12.5, "$12.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative amount", -1234.56, "-$1,234.56"},
		{"Exactly one thousand", 1000.0, "$1,000.00"},
		{"Three digits no separator", 999.99, "$999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive", 1234.5, "1,234.50"},
		{"Negative", -30000.0, "-30,000.00"},
		{"Zero", 0.0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumericCurrency(tt.amount)
			if result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestSignLabel(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Positive amount is a cost", 30000.0, "Down Payment"},
		{"Zero amount is a cost", 0.0, "Down Payment"},
		{"Negative amount is a rebate", -15000.0, "Rebate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SignLabel(tt.amount, "Down Payment", "Rebate")
			if result != tt.expected {
				t.Errorf("SignLabel(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}
