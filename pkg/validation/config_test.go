package validation

import (
	"strings"
	"testing"
	"time"
)

func TestValidateLogLevel(t *testing.T) {
	tests := []struct {
		level     string
		expectErr bool
	}{
		{"", false},
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"warning", false},
		{"error", false},
		{"fatal", true},
		{"INFO", true},
		{"verbose", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := ValidateLogLevel(tt.level)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogLevel(%q) expected error but got none", tt.level)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogLevel(%q) unexpected error = %v", tt.level, err)
			}
		})
	}
}

func TestValidateLogFormat(t *testing.T) {
	tests := []struct {
		format    string
		expectErr bool
	}{
		{"", false},
		{"json", false},
		{"console", false},
		{"text", true},
		{"pretty", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateLogFormat(tt.format)
			if tt.expectErr && err == nil {
				t.Errorf("ValidateLogFormat(%q) expected error but got none", tt.format)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("ValidateLogFormat(%q) unexpected error = %v", tt.format, err)
			}
		})
	}
}

func TestValidateTimeouts(t *testing.T) {
	tests := []struct {
		name                  string
		read, write, shutdown time.Duration
		expectWarnings        int
		contains              string
	}{
		{
			name:           "Defaults",
			read:           15 * time.Second,
			write:          15 * time.Second,
			shutdown:       10 * time.Second,
			expectWarnings: 0,
		},
		{
			name:           "Disabled read timeout",
			read:           0,
			write:          15 * time.Second,
			shutdown:       20 * time.Second,
			expectWarnings: 1,
			contains:       "readTimeout",
		},
		{
			name:           "Disabled shutdown drain",
			read:           15 * time.Second,
			write:          15 * time.Second,
			shutdown:       -time.Second,
			expectWarnings: 1,
			contains:       "shutdownTimeout",
		},
		{
			name:           "Everything disabled",
			expectWarnings: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateTimeouts(tt.read, tt.write, tt.shutdown)
			if len(warnings) != tt.expectWarnings {
				t.Fatalf("ValidateTimeouts() returned %d warnings, expected %d: %v", len(warnings), tt.expectWarnings, warnings)
			}
			if tt.contains != "" && !strings.Contains(warnings[0], tt.contains) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.contains)
			}
		})
	}
}
