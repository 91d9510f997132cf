package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes adds the API and health routes to router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	text := router.PathPrefix("/text-manipulation").Subrouter()
	text.HandleFunc("/remove-tags/json", h.RemoveTagsJSON).Methods(http.MethodPost)
	text.HandleFunc("/remove-tags/file", h.RemoveTagsFile).Methods(http.MethodPost)
	text.HandleFunc("/extract-emails-urls", h.ExtractEmailsURLs).Methods(http.MethodPost)
	text.HandleFunc("/word-count", h.WordCount).Methods(http.MethodPost)
	text.HandleFunc("/remove-line-breaks", h.RemoveLineBreaks).Methods(http.MethodPost)
	text.HandleFunc("/character-counter", h.CharacterCounter).Methods(http.MethodPost)
	text.HandleFunc("/detect-language", h.DetectLanguage).Methods(http.MethodPost)

	router.HandleFunc("/html-manipulation/html-link-extractor", h.HTMLLinkExtractor).Methods(http.MethodPost)
	router.HandleFunc("/password-generator", h.GeneratePassword).Methods(http.MethodPost)
	router.HandleFunc("/acronym-generator", h.GenerateAcronym).Methods(http.MethodPost)
	router.HandleFunc("/random-quote", h.RandomQuote).Methods(http.MethodGet)

	// Probes and build info
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/healthz", h.HealthCheck).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/livez", h.LivenessCheck).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/readyz", h.ReadinessCheck).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)
}

// NotFound answers requests that match no route
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, "Not Found", http.StatusNotFound)
}

// MethodNotAllowed answers requests whose path matches but method does not
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}
