package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunNoArgs(t *testing.T) {
	code, _, stderr := runCommand(t, "")
	if code != exitUsage {
		t.Errorf("Expected exit code %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr, "Usage: textkit") {
		t.Error("Expected usage on stderr")
	}
}

func TestRunUnknownCommandIsSanitized(t *testing.T) {
	code, _, stderr := runCommand(t, "", "bad\x1b[31mcmd")
	if code != exitUsage {
		t.Errorf("Expected exit code %d, got %d", exitUsage, code)
	}
	if !strings.Contains(stderr, "Unknown command: bad__31mcmd") {
		t.Errorf("Expected sanitized command in output, got %q", stderr)
	}
}

func TestSanitizeCommand(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"words", "words"},
		{"with-dash_ok", "with-dash_ok"},
		{"semi;colon", "semi_colon"},
		{"new\nline", "new_line"},
		{"ünïcode", "_n_code"},
	}

	for _, tt := range tests {
		if got := sanitizeCommand(tt.in); got != tt.want {
			t.Errorf("sanitizeCommand(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunPassword(t *testing.T) {
	code, stdout, _ := runCommand(t, "", "password", "20")
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}

	var resp struct {
		GeneratedPassword string `json:"generated_password"`
	}
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if len(resp.GeneratedPassword) != 20 {
		t.Errorf("Expected 20 characters, got %d", len(resp.GeneratedPassword))
	}
}

func TestRunPasswordRejectsOutOfRange(t *testing.T) {
	for _, arg := range []string{"7", "129", "twelve"} {
		code, _, stderr := runCommand(t, "", "password", arg)
		if code != exitError {
			t.Errorf("password %s: expected exit code %d, got %d", arg, exitError, code)
		}
		if !strings.HasPrefix(stderr, "Error: ") {
			t.Errorf("password %s: expected error message, got %q", arg, stderr)
		}
	}
}

func TestRunAcronym(t *testing.T) {
	code, stdout, _ := runCommand(t, "", "acronym", "hello", "world")
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, `"acronym": "HW"`) {
		t.Errorf("Unexpected output: %s", stdout)
	}

	if code, _, _ := runCommand(t, "", "acronym"); code != exitError {
		t.Errorf("Expected acronym without words to fail, got %d", code)
	}
}

func TestRunReadsStdin(t *testing.T) {
	code, stdout, _ := runCommand(t, "a b a", "words")
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}

	var resp struct {
		WordFrequencies map[string]int `json:"word_frequencies"`
	}
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if resp.WordFrequencies["a"] != 2 || resp.WordFrequencies["b"] != 1 {
		t.Errorf("Unexpected frequencies: %v", resp.WordFrequencies)
	}
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(`<a href="/x">x</a><a href="/y">y</a>`), 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	code, stdout, _ := runCommand(t, "", "links", path)
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, `"/x"`) || !strings.Contains(stdout, `"/y"`) {
		t.Errorf("Unexpected output: %s", stdout)
	}
}

func TestRunMissingFile(t *testing.T) {
	code, _, stderr := runCommand(t, "", "strip", filepath.Join(t.TempDir(), "missing.html"))
	if code != exitError {
		t.Errorf("Expected exit code %d, got %d", exitError, code)
	}
	if !strings.Contains(stderr, "read input") {
		t.Errorf("Unexpected error output: %q", stderr)
	}
}

func TestRunExtractAndChars(t *testing.T) {
	code, stdout, _ := runCommand(t, "contact a@b.com or http://x.com", "extract")
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, `"a@b.com"`) || !strings.Contains(stdout, `"http://x.com"`) {
		t.Errorf("Unexpected output: %s", stdout)
	}

	code, stdout, _ = runCommand(t, "aab", "chars")
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, `"a": 2`) {
		t.Errorf("Unexpected output: %s", stdout)
	}
}

func TestRunDetectUndetectable(t *testing.T) {
	code, _, stderr := runCommand(t, "   ", "detect")
	if code != exitError {
		t.Errorf("Expected exit code %d, got %d", exitError, code)
	}
	if !strings.Contains(stderr, "could not detect language") {
		t.Errorf("Unexpected error output: %q", stderr)
	}
}

func TestRunQuote(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"content":"Be brief.","author":"Anon"}`))
	}))
	defer upstream.Close()
	t.Setenv("QUOTE_API_URL", upstream.URL)

	code, stdout, _ := runCommand(t, "", "quote")
	if code != exitOK {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, `"quote": "Be brief."`) || !strings.Contains(stdout, `"author": "Anon"`) {
		t.Errorf("Unexpected output: %s", stdout)
	}
}
