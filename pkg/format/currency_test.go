package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"0", "$0.00"},
		{"1", "$1.00"},
		{"999.999", "$1,000.00"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"-1234.56", "-$1,234.56"},
		{"-0.001", "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Currency(decimal.RequireFromString(tt.input)); got != tt.expected {
				t.Errorf("Currency(%s) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"346.754672", "346.75"},
		{"10000", "10,000.00"},
		{"-250000.5", "-250,000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NumericCurrency(decimal.RequireFromString(tt.input)); got != tt.expected {
				t.Errorf("NumericCurrency(%s) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}
