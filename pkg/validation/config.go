package validation

import (
	"fmt"
	"time"
)

// ValidateLogLevel accepts the levels the logger understands. Empty means the
// default level.
func ValidateLogLevel(level string) error {
	switch level {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat accepts json and console. Empty means json.
func ValidateLogFormat(format string) error {
	switch format {
	case "", "json", "console":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}

// ValidateTimeouts returns warnings for server timeouts that disable a limit.
func ValidateTimeouts(read, write, shutdown time.Duration) []string {
	var warnings []string

	if read <= 0 {
		warnings = append(warnings, "server.readTimeout is not positive; slow clients can hold connections open")
	}
	if write <= 0 {
		warnings = append(warnings, "server.writeTimeout is not positive; responses have no deadline")
	}
	if shutdown <= 0 {
		warnings = append(warnings, "server.shutdownTimeout is not positive; in-flight requests are dropped on shutdown")
	}

	return warnings
}
