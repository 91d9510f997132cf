package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"text-toolkit/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecoveryConvertsPanic(t *testing.T) {
	logs := observeLogs(t)
	before := testutil.ToFloat64(metrics.HTTPPanicsRecovered)

	handler := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/acronym-generator", http.NoBody))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not JSON: %v", err)
	}
	if body["detail"] == "" {
		t.Error("Expected a detail message")
	}

	if got := testutil.ToFloat64(metrics.HTTPPanicsRecovered) - before; got != 1 {
		t.Errorf("Expected panic counter to increase by 1, got %v", got)
	}
	if logs.Len() != 1 {
		t.Errorf("Expected one error log entry, got %d", logs.Len())
	}
}

func TestRecoveryPassesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	Recovery(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRecoveryRepanicsOnAbort(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("Expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
}
