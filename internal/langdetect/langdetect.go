// Package langdetect wraps the whatlanggo statistical detector behind a
// small interface that reports ISO 639 codes and a single failure error.
package langdetect

import (
	"errors"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// ErrUndetectable is returned when no language can be determined.
var ErrUndetectable = errors.New("could not detect language of the input text")

// Detector detects the language of a text
type Detector struct {
	reliableOnly bool
}

// New returns a Detector. With reliableOnly set, detections the underlying
// model marks as unreliable are reported as ErrUndetectable.
func New(reliableOnly bool) *Detector {
	return &Detector{reliableOnly: reliableOnly}
}

// Detect returns the ISO 639-1 code of the text's language, or the ISO 639-3
// code for languages that have no two-letter code.
func (d *Detector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetectable
	}

	info := whatlanggo.Detect(text)
	if info.Script == nil {
		return "", ErrUndetectable
	}
	if d.reliableOnly && !info.IsReliable() {
		return "", ErrUndetectable
	}

	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	if code == "" {
		return "", ErrUndetectable
	}
	return code, nil
}
