// Package server exposes the schedule calculator over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andre1397/calculadora-TOTVS/pkg/datetime"
	"github.com/andre1397/calculadora-TOTVS/pkg/loans"
	"github.com/andre1397/calculadora-TOTVS/pkg/output"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	routeCalculate = "/api/calculate"
	routeVersion   = "/api/version"
	routeHealth    = "/healthz"
	routeMetrics   = "/metrics"
)

// Codes for failures that do not come from the schedule engine.
const (
	codeInvalidRequest   = "INVALID_REQUEST"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeTooLarge         = "REQUEST_TOO_LARGE"
	codeInternal         = "INTERNAL_ERROR"
)

const msgInternal = "an unexpected error occurred while calculating the schedule, please try again later"

type handler struct {
	logger         *zap.Logger
	calc           *loans.Calculator
	maxRequestSize int64
	version        string
	metrics        *metrics
}

type errorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

type calculateRequest struct {
	StartDate        *string          `json:"startDate"`
	FinalDate        *string          `json:"finalDate"`
	FirstPaymentDate *string          `json:"firstPaymentDate"`
	LoanAmount       *decimal.Decimal `json:"loanAmount"`
	InterestRate     *decimal.Decimal `json:"interestRate"`
}

// NewHandler constructs the HTTP handler that serves the calculation API.
func NewHandler(logger *zap.Logger, calc *loans.Calculator, cfg *Config) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = loans.NewCalculator(logger, loans.Options{})
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	h := &handler{
		logger:         logger,
		calc:           calc,
		maxRequestSize: cfg.RequestSizeBytes(),
		version:        cfg.Version,
		metrics:        newMetrics(),
	}

	mux := http.NewServeMux()

	// Schedule calculation
	mux.HandleFunc(routeCalculate, h.handleCalculate)

	// Version endpoint for UI metadata
	mux.HandleFunc(routeVersion, h.handleVersion)

	mux.HandleFunc(routeHealth, h.handleHealth)
	mux.Handle(routeMetrics, h.metrics.handler())

	return h.withRequestLog(h.withRecovery(withCORS(cfg.AllowedOrigins, mux)))
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.respondError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), op)
		return
	}

	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	req, err := DecodeCalculateRequest(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge, codeTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxRequestSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, codeInvalidRequest, err.Error(), op)
		return
	}

	rows, err := h.calc.Calculate(req)
	if err != nil {
		var scheduleErr *loans.Error
		if errors.As(err, &scheduleErr) {
			h.respondError(w, r, statusForKind(scheduleErr.Kind), scheduleErr.Code(), scheduleErr.Message, op)
			return
		}
		h.logger.Error("failed to calculate schedule",
			zap.String("op", op),
			zap.String("request_id", requestID(r.Context())),
			zap.Error(err),
		)
		h.respondError(w, r, http.StatusInternalServerError, codeInternal, msgInternal, op)
		return
	}

	h.metrics.observeRows(len(rows))
	h.logger.Debug("calculated schedule",
		zap.String("op", op),
		zap.String("request_id", requestID(r.Context())),
		zap.Int("rows", len(rows)),
	)
	h.writeJSON(w, http.StatusOK, output.NewInstallments(rows))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.respondError(w, r, http.StatusMethodNotAllowed, codeMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed), "server.handleVersion")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// DecodeCalculateRequest reads a single JSON object and checks that every
// field is present. Date and amount invariants are left to the calculator.
func DecodeCalculateRequest(body io.Reader) (loans.Request, error) {
	var payload calculateRequest

	dec := json.NewDecoder(body)
	if err := dec.Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return loans.Request{}, err
		}
		if errors.Is(err, io.EOF) {
			return loans.Request{}, errors.New("request body is empty")
		}
		return loans.Request{}, fmt.Errorf("malformed request body: %v", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return loans.Request{}, err
		}
		return loans.Request{}, errors.New("malformed request body: unexpected data after the JSON object")
	}

	var missing []string
	if payload.StartDate == nil {
		missing = append(missing, "startDate")
	}
	if payload.FinalDate == nil {
		missing = append(missing, "finalDate")
	}
	if payload.FirstPaymentDate == nil {
		missing = append(missing, "firstPaymentDate")
	}
	if payload.LoanAmount == nil {
		missing = append(missing, "loanAmount")
	}
	if payload.InterestRate == nil {
		missing = append(missing, "interestRate")
	}
	if len(missing) > 0 {
		return loans.Request{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	start, err := datetime.ParseDate(*payload.StartDate)
	if err != nil {
		return loans.Request{}, fmt.Errorf("startDate: %w", err)
	}
	final, err := datetime.ParseDate(*payload.FinalDate)
	if err != nil {
		return loans.Request{}, fmt.Errorf("finalDate: %w", err)
	}
	first, err := datetime.ParseDate(*payload.FirstPaymentDate)
	if err != nil {
		return loans.Request{}, fmt.Errorf("firstPaymentDate: %w", err)
	}

	return loans.Request{
		StartDate:        start,
		FinalDate:        final,
		FirstPaymentDate: first,
		LoanAmount:       *payload.LoanAmount,
		InterestRate:     *payload.InterestRate,
	}, nil
}

func statusForKind(kind error) int {
	switch {
	case errors.Is(kind, loans.ErrNonAmortizingSchedule):
		return http.StatusUnprocessableEntity
	case errors.Is(kind, loans.ErrInvalidDateRange), errors.Is(kind, loans.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, code, msg, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("request_id", requestID(r.Context())),
		zap.Int("status", status),
		zap.String("code", code),
		zap.String("error", msg),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields...)
	} else {
		h.logger.Warn("request rejected", fields...)
	}
	h.metrics.observeFailure(code)
	h.writeJSON(w, status, errorResponse{Message: msg, Code: code})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
