package handlers

import (
	"errors"
	"net/http"
	"time"

	"text-toolkit/internal/langdetect"
	"text-toolkit/internal/logging"
	"text-toolkit/internal/metrics"
	"text-toolkit/internal/quote"
	"text-toolkit/internal/textutil"
)

const (
	detailUndetected = "Could not detect language of the input text."
	detailQuote      = "Failed to fetch quote"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// classify maps an error to its status code, detail message and metrics outcome.
func classify(err error) (status int, detail, outcome string) {
	var validationErr *ValidationError
	var upstreamErr *quote.UpstreamError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Status, validationErr.Message, metrics.OutcomeInvalid
	case errors.Is(err, textutil.ErrEmptyWord):
		return http.StatusUnprocessableEntity, fieldMessages["AcronymRequest.words[]"], metrics.OutcomeInvalid
	case errors.Is(err, langdetect.ErrUndetectable):
		return http.StatusBadRequest, detailUndetected, metrics.OutcomeUndetected
	case errors.As(err, &upstreamErr):
		return upstreamErr.StatusCode, detailQuote, metrics.OutcomeUpstream
	default:
		return http.StatusInternalServerError, err.Error(), metrics.OutcomeError
	}
}

// fail writes err as a JSON error response and records the outcome
func fail(w http.ResponseWriter, r *http.Request, op string, start time.Time, err error) {
	status, detail, outcome := classify(err)
	metrics.ObserveOperation(op, outcome, time.Since(start).Seconds())

	if status >= http.StatusInternalServerError {
		logging.Error("%s %s failed: %v", r.Method, r.URL.Path, err)
	} else {
		logging.Debug("%s %s rejected with %d: %s", r.Method, r.URL.Path, status, detail)
	}

	writeJSONError(w, detail, status)
}

// succeed writes the operation result and records its duration
func succeed(w http.ResponseWriter, op string, start time.Time, v interface{}) {
	metrics.ObserveOperation(op, metrics.OutcomeSuccess, time.Since(start).Seconds())
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, v)
}
