package handlers

import (
	"net/http"
	"time"

	"text-toolkit/internal/metrics"
	"text-toolkit/internal/password"
	"text-toolkit/internal/textutil"
)

// GeneratePassword returns a random password; length defaults to 12
func (h *Handlers) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpPasswordGenerator

	var req PasswordGeneratorRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}

	length := password.DefaultLength
	if req.Length != nil {
		length = *req.Length
	}

	generated, err := h.passwords.Generate(length)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	succeed(w, op, start, PasswordGeneratorResponse{GeneratedPassword: generated})
}

// GenerateAcronym joins the upper-cased first letter of each word
func (h *Handlers) GenerateAcronym(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpAcronymGenerator

	var req AcronymRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}

	acronym, err := textutil.Acronym(req.Words)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}

	succeed(w, op, start, AcronymResponse{Acronym: acronym})
}
