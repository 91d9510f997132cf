package handlers

import (
	"fmt"
	"net/http"
	"time"

	"text-toolkit/internal/metrics"
)

// RandomQuote proxies one quote from the upstream quote service
func (h *Handlers) RandomQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpRandomQuote

	q, err := h.quotes.Random(r.Context())
	if err != nil {
		fail(w, r, op, start, fmt.Errorf("fetch quote: %w", err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	succeed(w, op, start, RandomQuoteResponse{Quote: q.Content, Author: q.Author})
}
