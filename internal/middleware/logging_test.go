package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"text-toolkit/internal/logging"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(nil) })
	return logs
}

func TestNewResponseWriter(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	if rw.statusCode != http.StatusOK {
		t.Errorf("Expected default status code 200, got %d", rw.statusCode)
	}
	if rw.bytesWritten != 0 {
		t.Errorf("Expected bytesWritten to be 0, got %d", rw.bytesWritten)
	}
	if rw.wroteHeader {
		t.Error("Expected wroteHeader to be false initially")
	}
}

func TestResponseWriterWriteHeader(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	rw.WriteHeader(http.StatusUnprocessableEntity)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusUnprocessableEntity {
		t.Errorf("Expected status code 422, got %d", rw.statusCode)
	}
}

func TestResponseWriterWrite(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	data := []byte(`{"acronym":"HW"}`)
	n, err := rw.Write(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != len(data) || rw.bytesWritten != int64(len(data)) {
		t.Errorf("Expected %d bytes written, got n=%d total=%d", len(data), n, rw.bytesWritten)
	}
	if !rw.wroteHeader {
		t.Error("Expected wroteHeader to be true after Write")
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		config        LoggingConfig
		expectLogging bool
	}{
		{
			name:          "Logs API requests",
			path:          "/text-manipulation/word-count",
			config:        DefaultLoggingConfig(),
			expectLogging: true,
		},
		{
			name:          "Logs health checks when enabled",
			path:          "/livez",
			config:        LoggingConfig{LogHealthChecks: true},
			expectLogging: true,
		},
		{
			name:          "Skips health checks when disabled",
			path:          "/readyz",
			config:        LoggingConfig{LogHealthChecks: false},
			expectLogging: false,
		},
		{
			name:          "Skips configured prefixes",
			path:          "/version",
			config:        LoggingConfig{LogHealthChecks: true, SkipPaths: []string{"/version"}},
			expectLogging: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			handler := Logger(tt.config)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte("ok"))
			}))

			req := httptest.NewRequest(http.MethodPost, tt.path, http.NoBody)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}

			got := logs.Len() > 0
			if got != tt.expectLogging {
				t.Errorf("Expected logging=%v, got %v", tt.expectLogging, got)
			}
			if got && !strings.Contains(logs.All()[0].Message, " POST "+tt.path+" ") {
				t.Errorf("Log line missing method and path: %q", logs.All()[0].Message)
			}
		})
	}
}

func TestFormatW3C(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/acronym-generator?x=1", http.NoBody)
	req.RemoteAddr = "10.0.0.7:51234"
	req.Header.Set("User-Agent", "curl/8.0 (linux)")
	req.Header.Set("Origin", "https://example.com")

	rw := newResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusUnprocessableEntity)
	_, _ = rw.Write([]byte("12345"))

	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	line := formatW3C(req, rw, 42*time.Millisecond, now)

	want := `2026-03-04 05:06:07 10.0.0.7 POST /acronym-generator x=1 422 5 42 https://example.com "curl/8.0 (linux)"`
	if line != want {
		t.Errorf("formatW3C() =\n%q\nwant\n%q", line, want)
	}
}

func TestSanitizeLogField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a\nb\rc", "a b c"},
		{"nul\x00byte", "nulbyte"},
		{"esc\x1b[31m", "esc[31m"},
		{"tab\tkept", "tab\tkept"},
		{"bell\x07", "bell"},
	}

	for _, tt := range tests {
		if got := sanitizeLogField(tt.in); got != tt.want {
			t.Errorf("sanitizeLogField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "1.2.3.4, 10.0.0.1"}, "10.0.0.1:80", "1.2.3.4"},
		{"real ip", map[string]string{"X-Real-IP": "5.6.7.8"}, "10.0.0.1:80", "5.6.7.8"},
		{"remote addr", nil, "192.168.1.9:4000", "192.168.1.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeW3CField(t *testing.T) {
	if got := escapeW3CField("simple"); got != "simple" {
		t.Errorf("Expected unquoted value, got %q", got)
	}
	if got := escapeW3CField(`say "hi"`); got != `"say ""hi"""` {
		t.Errorf("Expected quoted value, got %q", got)
	}
}
