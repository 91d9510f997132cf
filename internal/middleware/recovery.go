package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"text-toolkit/internal/logging"
	"text-toolkit/internal/metrics"
)

// Recovery converts handler panics into a 500 JSON error response
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			metrics.HTTPPanicsRecovered.Inc()
			logging.Error("panic serving %s %s: %v\n%s", r.Method, sanitizeLogField(r.URL.Path), rec, debug.Stack())

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Internal Server Error"})
		}()
		next.ServeHTTP(w, r)
	})
}
