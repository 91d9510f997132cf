package quote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRandomPassesThroughContentAndAuthor(t *testing.T) {
	srv := newUpstream(t, http.StatusOK,
		`{"_id":"x1","content":"Stay hungry, stay foolish.","author":"Steve Jobs","tags":["life"],"length":26}`)

	q, err := NewClient(srv.URL, time.Second).Random(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Stay hungry, stay foolish.", q.Content)
	assert.Equal(t, "Steve Jobs", q.Author)
}

func TestRandomForwardsUpstreamStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusTooManyRequests, http.StatusServiceUnavailable} {
		srv := newUpstream(t, status, `{"statusCode":500,"statusMessage":"nope"}`)

		_, err := NewClient(srv.URL, time.Second).Random(context.Background())

		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr), "expected UpstreamError, got %v", err)
		assert.Equal(t, status, upstreamErr.StatusCode)
	}
}

func TestRandomRejectsMalformedBodies(t *testing.T) {
	tests := map[string]string{
		"not json":        `<html>maintenance</html>`,
		"missing author":  `{"content":"words"}`,
		"missing content": `{"author":"someone"}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			srv := newUpstream(t, http.StatusOK, body)

			_, err := NewClient(srv.URL, time.Second).Random(context.Background())
			require.Error(t, err)

			var upstreamErr *UpstreamError
			assert.False(t, errors.As(err, &upstreamErr))
		})
	}
}

func TestRandomTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	start := time.Now()
	_, err := NewClient(srv.URL, 50*time.Millisecond).Random(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRandomHonoursContextCancellation(t *testing.T) {
	srv := newUpstream(t, http.StatusOK, `{"content":"c","author":"a"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, time.Second).Random(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{StatusCode: 503}
	assert.Equal(t, "quote service returned status 503", err.Error())
}
