package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"pretty", "csv", "json"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) unexpected error = %v", format, err)
		}
	}

	// Formats are matched exactly: no case folding, no trimming.
	invalid := []string{"", "PRETTY", "Json", " csv ", "xml", "yaml", "pretty-print"}
	for _, format := range invalid {
		t.Run("invalid "+format, func(t *testing.T) {
			err := ValidateOutputFormat(format)
			if err == nil {
				t.Fatalf("ValidateOutputFormat(%q) expected error but got none", format)
			}
			for _, want := range []string{"pretty", "csv", "json"} {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not list supported format %s", err, want)
				}
			}
			if format != "" && !strings.HasSuffix(err.Error(), format) {
				t.Errorf("error %q does not name the rejected value %q", err, format)
			}
		})
	}
}
