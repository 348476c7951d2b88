package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"home-goal/domain"
	"home-goal/logging"
	"home-goal/metrics"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

var errUnsupportedMediaType = errors.New("Content-Type must be application/json")

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return errUnsupportedMediaType
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeDecodeError answers a failed decodeJSON with 415 or 400.
func writeDecodeError(w http.ResponseWriter, logger logging.Logger, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		writeError(w, http.StatusUnsupportedMediaType, err.Error(), "")
		return
	}
	logger.Debug("decode request body", logging.Err(err))
	writeError(w, http.StatusBadRequest, "invalid request body", "")
}

// respondJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func respondJSON(w http.ResponseWriter, logger logging.Logger, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error("encode response", logging.Err(err))
		writeError(w, http.StatusInternalServerError, "internal server error", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("write response", logging.Err(err))
	}
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Field: field})
}

// writeCalcError maps invalid input to 400 and anything else to 500.
func writeCalcError(w http.ResponseWriter, logger logging.Logger, err error) {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, invalid.Error(), invalid.Field)
		return
	}
	logger.Error("calculation failed", logging.Err(err))
	writeError(w, http.StatusInternalServerError, "internal server error", "")
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
}

func observeOutcome(recorder metrics.Recorder, operation string, err error) {
	switch {
	case err == nil:
		recorder.ObserveCalculation(operation, metrics.OutcomeOK)
	case errors.Is(err, domain.ErrInvalidInput):
		recorder.ObserveCalculation(operation, metrics.OutcomeInvalid)
	default:
		recorder.ObserveCalculation(operation, metrics.OutcomeError)
	}
}
