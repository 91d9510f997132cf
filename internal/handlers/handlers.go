package handlers

import (
	"context"
	"sync/atomic"
	"time"

	"text-toolkit/internal/quote"
	"text-toolkit/internal/startup"

	"github.com/go-playground/validator/v10"
)

// LanguageDetector identifies the language of a text
type LanguageDetector interface {
	Detect(text string) (string, error)
}

// QuoteFetcher retrieves a random quote
type QuoteFetcher interface {
	Random(ctx context.Context) (*quote.Quote, error)
}

// PasswordGenerator produces random passwords
type PasswordGenerator interface {
	Generate(length int) (string, error)
}

type Handlers struct {
	detector       LanguageDetector
	quotes         QuoteFetcher
	passwords      PasswordGenerator
	validate       *validator.Validate
	maxUploadBytes int64
	startTime      time.Time
	ready          atomic.Bool
}

func New(detector LanguageDetector, quotes QuoteFetcher, passwords PasswordGenerator, config *startup.Config) *Handlers {
	maxUpload := config.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = startup.DefaultMaxUploadBytes
	}

	return &Handlers{
		detector:       detector,
		quotes:         quotes,
		passwords:      passwords,
		validate:       newValidator(),
		maxUploadBytes: maxUpload,
		startTime:      time.Now(),
	}
}

// SetReady marks whether the service should receive traffic
func (h *Handlers) SetReady(ready bool) {
	h.ready.Store(ready)
}
