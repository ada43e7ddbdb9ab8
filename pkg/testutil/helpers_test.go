package testutil

import (
	"testing"

	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"go.uber.org/zap"
)

func rows(t *testing.T) []loans.Row {
	t.Helper()
	result, err := loans.NewCalculator(zap.NewNop(), loans.Options{}).
		Calculate(Request("2024-01-01", "2024-06-16", "2024-01-16", "1000", "0.02"))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	return result
}

func TestRequestPanicsOnBadInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected Request to panic with invalid amount")
		}
	}()

	Request("2024-01-01", "2024-06-16", "2024-01-16", "lots", "0.02")
}

func TestFindRow(t *testing.T) {
	result := rows(t)

	tests := []struct {
		name        string
		date        string
		expectFound bool
		expectKind  loans.Kind
	}{
		{"Find origination", "2024-01-01", true, loans.KindOrigination},
		{"Find stub accrual", "2024-01-16", true, loans.KindAccrual},
		{"Find final payment", "2024-06-16", true, loans.KindPayment},
		{"Date off the schedule", "2024-02-01", false, 0},
		{"Empty date", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := FindRow(result, tt.date)
			if tt.expectFound {
				if row == nil {
					t.Fatalf("Expected to find row %s, but got nil", tt.date)
				}
				if row.Kind != tt.expectKind {
					t.Errorf("Expected kind %s, got %s", tt.expectKind, row.Kind)
				}
			} else if row != nil {
				t.Errorf("Expected not to find row %s, but found one", tt.date)
			}
		})
	}
}

func TestFindRowReturnsPointerIntoSlice(t *testing.T) {
	result := rows(t)
	row := FindRow(result, "2024-01-01")
	if row != &result[0] {
		t.Error("FindRow should return a pointer to the original slice element")
	}
}

func TestPayments(t *testing.T) {
	payments := Payments(rows(t))
	if len(payments) != 5 {
		t.Fatalf("Expected 5 payments, got %d", len(payments))
	}
	if *payments[0].Consolidated != "1/5" || *payments[4].Consolidated != "5/5" {
		t.Errorf("Unexpected installment labels %s..%s", *payments[0].Consolidated, *payments[4].Consolidated)
	}
	if Payments(nil) != nil {
		t.Error("Expected nil for no rows")
	}
}
