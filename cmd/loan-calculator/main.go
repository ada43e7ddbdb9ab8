package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/andre1397/calculadora-TOTVS/internal/config"
	"github.com/andre1397/calculadora-TOTVS/internal/server"
	"github.com/andre1397/calculadora-TOTVS/pkg/constants"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"github.com/andre1397/calculadora-TOTVS/pkg/output"
	"github.com/andre1397/calculadora-TOTVS/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Schedules go to stdout in one-shot mode, so logs stay on stderr
	config.OutputPaths = []string{"stderr"}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// calculateFile computes the schedule for the JSON request stored at path and
// writes it to w.
func calculateFile(logger *zap.Logger, calc *loans.Calculator, path, outputFormat string, w io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open request file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("failed to close request file",
				zap.String("op", "main.calculateFile"),
				zap.Error(closeErr),
			)
		}
	}()

	req, err := server.DecodeCalculateRequest(file)
	if err != nil {
		return fmt.Errorf("failed to read request %s: %w", path, err)
	}

	rows, err := calc.Calculate(req)
	if err != nil {
		return err
	}

	return output.Render(w, outputFormat, rows)
}

// serve runs the HTTP API until SIGINT or SIGTERM, then drains in-flight
// requests for at most the shutdown timeout.
func serve(logger *zap.Logger, calc *loans.Calculator, cfg *server.Config) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      server.NewHandler(logger, calc, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server",
			zap.String("op", "main.serve"),
			zap.String("address", cfg.Address),
			zap.String("version", cfg.Version),
			zap.Int64("max_request_size", cfg.RequestSizeBytes()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server",
		zap.String("op", "main.serve"),
		zap.Duration("timeout", cfg.ShutdownTimeout),
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	requestFile := flag.String("request", "", "calculate the JSON request in this file and exit instead of serving HTTP")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	address := flag.String("address", "", "HTTP listen address override")
	printConfig := flag.Bool("print-config", false, "print the effective configuration as YAML and exit")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *printConfig {
		data, err := conf.YAML()
		if err != nil {
			logger.Fatal("failed to render configuration",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		_, _ = os.Stdout.Write(data)
		return
	}

	// Validate configuration and display any warnings
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	opts, err := conf.ScheduleOptions()
	if err != nil {
		logger.Fatal("invalid schedule configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	calc := loans.NewCalculator(logger, opts)

	if *requestFile != "" {
		// Determine output format (CLI override takes precedence over config)
		outputFormat := conf.Output.Format
		if *outputFormatFlag != "" {
			outputFormat = *outputFormatFlag
		}
		if outputFormat == "" {
			outputFormat = constants.OutputFormatPretty // Default to pretty format
		}

		if err := validation.ValidateOutputFormat(outputFormat); err != nil {
			logger.Fatal(err.Error(),
				zap.String("op", "main"),
			)
		}

		if err := calculateFile(logger, calc, *requestFile, outputFormat, os.Stdout); err != nil {
			fields := []zap.Field{zap.String("op", "main"), zap.Error(err)}
			var scheduleErr *loans.Error
			if errors.As(err, &scheduleErr) {
				fields = append(fields, zap.String("code", scheduleErr.Code()))
			}
			logger.Fatal("failed to calculate schedule", fields...)
		}
		return
	}

	serverConfig, err := server.NewConfig(conf.Server)
	if err != nil {
		logger.Fatal("invalid server configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	if *address != "" {
		serverConfig.Address = *address
	}

	if err := serve(logger, calc, serverConfig); err != nil {
		logger.Fatal("server stopped with error",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
