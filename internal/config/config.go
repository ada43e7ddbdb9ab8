// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/andre1397/calculadora-TOTVS/pkg/calendar"
	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"github.com/andre1397/calculadora-TOTVS/pkg/validation"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for the loan calculator.
type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Output   OutputConfig   `yaml:"output,omitempty"`
	Schedule ScheduleConfig `yaml:"schedule"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address         string        `yaml:"address"`
	MaxRequestSize  string        `yaml:"maxRequestSize"` // bytes, or with a K/M/G suffix
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
	Version         string        `yaml:"version"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ScheduleConfig selects the installment policy, the optional periods and the
// request bounds. Amount bounds are decimal strings; empty or zero disables
// them.
type ScheduleConfig struct {
	Method                string   `yaml:"method"`
	MonthEndAccruals      bool     `yaml:"monthEndAccruals"`
	BusinessDayAdjustment bool     `yaml:"businessDayAdjustment"`
	Holidays              []string `yaml:"holidays"`
	MaxLoanAmount         string   `yaml:"maxLoanAmount,omitempty"`
	MaxInterestRate       string   `yaml:"maxInterestRate,omitempty"`
	MaxPeriods            int      `yaml:"maxPeriods"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Every key needs a default so that environment overrides reach Unmarshal.
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.maxRequestSize", fmt.Sprintf("%d", constants.DefaultMaxRequestSizeBytes))
	v.SetDefault("server.readTimeout", constants.DefaultReadTimeout)
	v.SetDefault("server.writeTimeout", constants.DefaultWriteTimeout)
	v.SetDefault("server.idleTimeout", constants.DefaultIdleTimeout)
	v.SetDefault("server.shutdownTimeout", constants.DefaultShutdownTimeout)
	v.SetDefault("server.allowedOrigins", constants.DefaultAllowedOrigins)
	v.SetDefault("server.version", constants.DefaultVersion)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("schedule.method", string(loans.MethodAnnuity))
	v.SetDefault("schedule.monthEndAccruals", false)
	v.SetDefault("schedule.businessDayAdjustment", false)
	v.SetDefault("schedule.holidays", constants.DefaultHolidays)
	v.SetDefault("schedule.maxLoanAmount", "")
	v.SetDefault("schedule.maxInterestRate", "")
	v.SetDefault("schedule.maxPeriods", constants.DefaultMaxPeriods)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields the defaults; environment
// variables prefixed with LOANCALC_ override both.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

// ScheduleOptions converts the schedule section into calculator options.
func (c *Configuration) ScheduleOptions() (loans.Options, error) {
	var opts loans.Options

	method, err := loans.ParseMethod(c.Schedule.Method)
	if err != nil {
		return opts, err
	}
	opts.Method = method
	opts.Periods.MonthEndAccruals = c.Schedule.MonthEndAccruals

	if c.Schedule.BusinessDayAdjustment {
		cal, err := calendar.New(c.Schedule.Holidays)
		if err != nil {
			return opts, fmt.Errorf("failed to build business day calendar: %w", err)
		}
		opts.Periods.Calendar = cal
	}

	if opts.Limits.MaxLoanAmount, err = parseBound("maxLoanAmount", c.Schedule.MaxLoanAmount); err != nil {
		return opts, err
	}
	if opts.Limits.MaxInterestRate, err = parseBound("maxInterestRate", c.Schedule.MaxInterestRate); err != nil {
		return opts, err
	}
	if c.Schedule.MaxPeriods < 0 {
		return opts, fmt.Errorf("schedule.maxPeriods must not be negative, got %d", c.Schedule.MaxPeriods)
	}
	opts.Limits.MaxPeriods = c.Schedule.MaxPeriods

	return opts, nil
}

func parseBound(name, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid schedule.%s %q: %w", name, value, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("schedule.%s must not be negative, got %s", name, value)
	}
	return d, nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		warnings = append(warnings, err.Error())
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		warnings = append(warnings, err.Error())
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	warnings = append(warnings, validation.ValidateTimeouts(c.Server.ReadTimeout, c.Server.WriteTimeout, c.Server.ShutdownTimeout)...)

	if len(c.Server.AllowedOrigins) == 0 {
		warnings = append(warnings, "no CORS origins allowed; browser clients on other origins will be rejected")
	}
	if c.Schedule.MaxPeriods == 0 {
		warnings = append(warnings, "schedule.maxPeriods is 0; schedule length is unbounded")
	}
	if !c.Schedule.BusinessDayAdjustment && len(c.Schedule.Holidays) > 0 && !sameHolidays(c.Schedule.Holidays, constants.DefaultHolidays) {
		warnings = append(warnings, "schedule.holidays is set but businessDayAdjustment is disabled; holidays are ignored")
	}

	return warnings
}

func sameHolidays(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.TrimSpace(a[i]) != b[i] {
			return false
		}
	}
	return true
}

// YAML renders the effective configuration.
func (c *Configuration) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return data, nil
}
