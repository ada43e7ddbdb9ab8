package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andre1397/calculadora-TOTVS/internal/config"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"go.uber.org/zap"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		logging  config.LoggingConfig
		override string
		wantErr  bool
	}{
		{name: "Defaults", logging: config.LoggingConfig{}},
		{name: "Console debug", logging: config.LoggingConfig{Level: "debug", Format: "console"}},
		{name: "Override wins", logging: config.LoggingConfig{Level: "bogus"}, override: "warn"},
		{name: "Invalid level", logging: config.LoggingConfig{Level: "loud"}, wantErr: true},
		{name: "Invalid format", logging: config.LoggingConfig{Format: "xml"}, wantErr: true},
		{
			name:    "Output file",
			logging: config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "calc.log")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			logger.Info("test", zap.String("op", "main.TestInitializeLogger"))
			_ = logger.Sync()
		})
	}
}

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write request: %v", err)
	}
	return path
}

func TestCalculateFile(t *testing.T) {
	calc := loans.NewCalculator(zap.NewNop(), loans.Options{})
	path := writeRequest(t, `{"startDate":"2024-01-01","finalDate":"2024-04-01","firstPaymentDate":"2024-02-01","loanAmount":1000,"interestRate":0.02}`)

	var buf bytes.Buffer
	if err := calculateFile(zap.NewNop(), calc, path, "csv", &buf); err != nil {
		t.Fatalf("calculateFile() error = %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 5 {
		t.Fatalf("expected header plus 4 rows, got %d lines", len(lines))
	}
}

func TestCalculateFileErrors(t *testing.T) {
	calc := loans.NewCalculator(zap.NewNop(), loans.Options{})

	if err := calculateFile(zap.NewNop(), calc, filepath.Join(t.TempDir(), "missing.json"), "json", &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing file")
	}

	malformed := writeRequest(t, `{"startDate":`)
	if err := calculateFile(zap.NewNop(), calc, malformed, "json", &bytes.Buffer{}); err == nil {
		t.Error("expected error for malformed request")
	}

	invalid := writeRequest(t, `{"startDate":"2024-01-01","finalDate":"2023-01-01","firstPaymentDate":"2024-02-01","loanAmount":1000,"interestRate":0.02}`)
	err := calculateFile(zap.NewNop(), calc, invalid, "json", &bytes.Buffer{})
	if !errors.Is(err, loans.ErrInvalidDateRange) {
		t.Errorf("expected invalid date range, got %v", err)
	}
}
