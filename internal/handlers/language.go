package handlers

import (
	"net/http"
	"time"

	"text-toolkit/internal/metrics"
)

// DetectLanguage returns the ISO 639 code of the text's language
func (h *Handlers) DetectLanguage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpDetectLanguage

	var req LanguageDetectionRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.Text))

	lang, err := h.detector.Detect(*req.Text)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.LanguageDetectionsTotal.WithLabelValues(lang).Inc()

	succeed(w, op, start, LanguageDetectionResponse{Language: lang})
}
