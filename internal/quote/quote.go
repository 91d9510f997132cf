// Package quote fetches random quotes from a third-party HTTP service.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"text-toolkit/internal/logging"
	"text-toolkit/internal/metrics"
)

// maxResponseBytes caps how much of the upstream body is read.
const maxResponseBytes = 1 << 20

// Quote is a quote and its author
type Quote struct {
	Content string
	Author  string
}

// UpstreamError reports a non-200 response from the quote service.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("quote service returned status %d", e.StatusCode)
}

// upstreamQuote mirrors the fields consumed from the service's JSON body.
type upstreamQuote struct {
	Content *string `json:"content"`
	Author  *string `json:"author"`
}

// Client fetches quotes. It is safe for concurrent use.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient returns a Client for the given endpoint. Every call is bounded
// by timeout in addition to the caller's context.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Random fetches one quote. A non-200 status yields *UpstreamError; any
// other failure is returned wrapped.
func (c *Client) Random(ctx context.Context) (*Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.QuoteUpstreamDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteUpstreamRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("requesting quote: %w", err)
	}
	defer resp.Body.Close()

	metrics.QuoteUpstreamRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	logging.Debug("quote upstream %s responded %d in %v", c.url, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var body upstreamQuote
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding quote response: %w", err)
	}
	if body.Content == nil {
		return nil, errors.New("quote response is missing \"content\"")
	}
	if body.Author == nil {
		return nil, errors.New("quote response is missing \"author\"")
	}

	return &Quote{Content: *body.Content, Author: *body.Author}, nil
}
