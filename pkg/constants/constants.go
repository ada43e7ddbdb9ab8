// Package constants provides shared constants for the loan calculator.
package constants

import "time"

// DateLayout is the ISO-8601 calendar date format used on the wire, in
// configuration files and in every rendered output.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// CurrencyPlaces is the number of fractional digits reported for money.
	CurrencyPlaces = 2

	// CalculationPlaces is the number of fractional digits carried internally
	// between periods before the schedule is rounded for reporting.
	CalculationPlaces = 18

	// CurrencyTolerance is the tolerance for currency comparisons (1 minor unit)
	CurrencyTolerance = "0.01"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON emits the same array the HTTP API returns
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix prefixes environment overrides, e.g. LOANCALC_SERVER_ADDRESS.
	EnvPrefix = "LOANCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestSizeBytes int64 = 64 * 1024

	// DefaultReadTimeout matches the 15 second round-trip budget of the web client.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the default time allowed to write a response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout bounds keep-alive connections.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultVersion is reported by /api/version when none is configured.
	DefaultVersion = "dev"
)

// DefaultAllowedOrigins are the development origins of the web client.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Schedule defaults
const (
	// DefaultMaxPeriods caps the number of generated periods per schedule.
	DefaultMaxPeriods = 1200
)

// DefaultHolidays are the fixed-date national holidays ("MM-DD") observed when
// business-day adjustment is enabled.
var DefaultHolidays = []string{
	"01-01", "04-21", "05-01", "09-07", "10-12", "11-02", "11-15", "12-25",
}
