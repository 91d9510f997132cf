package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
	"unicode/utf8"

	"text-toolkit/internal/metrics"
	"text-toolkit/internal/textutil"
)

// uploadField is the multipart field carrying the HTML document
const uploadField = "html_file"

// multipartMemory caps how much of an upload is kept in memory before spilling to disk
const multipartMemory = 8 << 20

// RemoveTagsJSON strips tags from inline HTML
func (h *Handlers) RemoveTagsJSON(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpRemoveTags

	var req RemoveTagsRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.HTML))

	cleaned, err := textutil.StripTags(*req.HTML)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}

	succeed(w, op, start, RemoveTagsResponse{CleanedText: cleaned})
}

// RemoveTagsFile strips tags from an uploaded UTF-8 HTML file
func (h *Handlers) RemoveTagsFile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpRemoveTagsFile

	content, err := h.readUpload(w, r)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(content))

	cleaned, err := textutil.StripTags(content)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}

	succeed(w, op, start, RemoveTagsResponse{CleanedText: cleaned})
}

// readUpload returns the html_file part of a multipart request as a string
func (h *Handlers) readUpload(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.ContentLength > h.maxUploadBytes {
		return "", invalid(http.StatusRequestEntityTooLarge, "Upload exceeds %d bytes.", h.maxUploadBytes)
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var sizeErr *http.MaxBytesError
		switch {
		case errors.As(err, &sizeErr):
			return "", invalid(http.StatusRequestEntityTooLarge, "Upload exceeds %d bytes.", sizeErr.Limit)
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			return "", invalid(http.StatusUnprocessableEntity, "Field '%s' is required.", uploadField)
		default:
			return "", invalid(http.StatusBadRequest, "Malformed multipart body.")
		}
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", invalid(http.StatusUnprocessableEntity, "Field '%s' is required.", uploadField)
		}
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if !utf8.Valid(data) {
		return "", invalid(http.StatusUnprocessableEntity, "Uploaded file must be UTF-8 encoded text.")
	}

	return string(data), nil
}

// ExtractEmailsURLs finds email addresses and URLs in the text content of a document
func (h *Handlers) ExtractEmailsURLs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpExtractEmailsURLs

	var req TextRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.Text))

	found, err := textutil.ExtractEmailsAndURLs(*req.Text)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}

	succeed(w, op, start, ExtractEmailsURLsResponse{Emails: found.Emails, URLs: found.URLs})
}

// WordCount returns the frequency of each word token
func (h *Handlers) WordCount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpWordCount

	var req TextRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.Text))

	succeed(w, op, start, WordCountResponse{WordFrequencies: textutil.CountWords(*req.Text)})
}

// RemoveLineBreaks deletes every CR and LF
func (h *Handlers) RemoveLineBreaks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpRemoveLineBreaks

	var req TextRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.Text))

	succeed(w, op, start, RemoveLineBreaksResponse{TextWithoutLineBreaks: textutil.RemoveLineBreaks(*req.Text)})
}

// CharacterCounter returns the frequency of each code point
func (h *Handlers) CharacterCounter(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpCharacterCounter

	var req TextRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.Text))

	succeed(w, op, start, CharacterCounterResponse{CharacterCount: textutil.CountCharacters(*req.Text)})
}

// HTMLLinkExtractor lists the href of every anchor in document order
func (h *Handlers) HTMLLinkExtractor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	op := metrics.OpHTMLLinkExtractor

	var req HTMLLinkExtractorRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		fail(w, r, op, start, err)
		return
	}
	metrics.ObserveInputSize(op, len(*req.HTML))

	links, err := textutil.ExtractLinks(*req.HTML)
	if err != nil {
		fail(w, r, op, start, err)
		return
	}

	succeed(w, op, start, HTMLLinkExtractorResponse{Links: links})
}
