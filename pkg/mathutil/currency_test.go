package mathutil

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Round up at midpoint", "1.235", "1.24"},
		{"Round down below midpoint", "1.234", "1.23"},
		{"No rounding needed", "1.23", "1.23"},
		{"Large number", "12345.678", "12345.68"},
		{"Midpoint that float rounding gets wrong", "1.005", "1.01"},
		{"Negative number away from zero", "-1.235", "-1.24"},
		{"Zero", "0", "0"},
		{"Very small positive", "0.001", "0"},
		{"Nearly two cents", "0.019", "0.02"},
		{"Long expansion", "346.754672591818116436", "346.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(d(tt.input))
			if !result.Equal(d(tt.expected)) {
				t.Errorf("Round(%s) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCarry(t *testing.T) {
	result := Carry(d("0.1234567890123456789"))
	if result.Exponent() != -18 {
		t.Errorf("Carry() exponent = %d, expected -18", result.Exponent())
	}
	if !result.Equal(d("0.123456789012345679")) {
		t.Errorf("Carry() = %s", result)
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b     string
		expected string
	}{
		{"10", "4", "2.5"},
		{"2", "3", "0.666666666666666667"},
		{"15", "31", "0.483870967741935484"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if result := Div(d(tt.a), d(tt.b)); !result.Equal(d(tt.expected)) {
				t.Errorf("Div(%s, %s) = %s, expected %s", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Exactly zero", "0", true},
		{"One cent", "0.01", true},
		{"Negative cent", "-0.01", true},
		{"Just above a cent", "0.011", false},
		{"Ten cents", "0.10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(d(tt.input)); result != tt.expected {
				t.Errorf("IsZero(%s) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		a, b, tol string
		expected  bool
	}{
		{"Equal values", "100.00", "100.00", "0.01", true},
		{"Within a cent", "100.00", "100.01", "0.01", true},
		{"Outside a cent", "100.00", "100.02", "0.01", false},
		{"Order does not matter", "100.02", "100.00", "0.05", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WithinTolerance(d(tt.a), d(tt.b), d(tt.tol)); result != tt.expected {
				t.Errorf("WithinTolerance(%s, %s, %s) = %v, expected %v", tt.a, tt.b, tt.tol, result, tt.expected)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if result := Sum(); !result.IsZero() {
		t.Errorf("Sum() = %s, expected 0", result)
	}
	if result := Sum(d("326.75"), d("333.29"), d("339.96")); !result.Equal(d("1000")) {
		t.Errorf("Sum() = %s, expected 1000", result)
	}
}
