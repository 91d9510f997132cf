package middleware

import (
	"compress/gzip"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
)

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// MinSize is the smallest body, in bytes, worth compressing
	MinSize int
	// Level is a compress/gzip level
	Level int
	// MediaTypes lists the response media types eligible for compression
	MediaTypes []string
}

// DefaultCompressionConfig compresses JSON and plain text bodies of 1KB or more
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:    1024,
		Level:      gzip.DefaultCompression,
		MediaTypes: []string{"application/json", "text/plain"},
	}
}

var gzipPools sync.Map // level -> *sync.Pool

func gzipPool(level int) *sync.Pool {
	if p, ok := gzipPools.Load(level); ok {
		return p.(*sync.Pool)
	}
	p, _ := gzipPools.LoadOrStore(level, &sync.Pool{
		New: func() any {
			w, err := gzip.NewWriterLevel(io.Discard, level)
			if err != nil {
				w = gzip.NewWriter(io.Discard)
			}
			return w
		},
	})
	return p.(*sync.Pool)
}

// gzipWriter holds the body back until MinSize bytes arrive or the handler
// returns, then commits to either a compressed or a plain response.
type gzipWriter struct {
	http.ResponseWriter
	config    CompressionConfig
	pending   []byte
	status    int
	committed bool
	gz        *gzip.Writer
}

func (g *gzipWriter) WriteHeader(status int) {
	if !g.committed && g.status == 0 {
		g.status = status
	}
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	if g.committed {
		if g.gz != nil {
			return g.gz.Write(p)
		}
		return g.ResponseWriter.Write(p)
	}

	g.pending = append(g.pending, p...)
	if len(g.pending) >= g.config.MinSize {
		if err := g.commit(); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (g *gzipWriter) eligible(size int) bool {
	if size < g.config.MinSize || g.Header().Get("Content-Encoding") != "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(g.Header().Get("Content-Type"))
	if err != nil {
		return false
	}
	for _, mt := range g.config.MediaTypes {
		if strings.EqualFold(mediaType, mt) {
			return true
		}
	}
	return false
}

func (g *gzipWriter) commit() error {
	g.committed = true
	if g.status == 0 {
		g.status = http.StatusOK
	}

	body := g.pending
	g.pending = nil

	if !g.eligible(len(body)) {
		g.ResponseWriter.WriteHeader(g.status)
		_, err := g.ResponseWriter.Write(body)
		return err
	}

	h := g.Header()
	h.Del("Content-Length")
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	g.ResponseWriter.WriteHeader(g.status)

	g.gz = gzipPool(g.config.Level).Get().(*gzip.Writer)
	g.gz.Reset(g.ResponseWriter)
	_, err := g.gz.Write(body)
	return err
}

// close flushes anything still held back and releases the gzip writer
func (g *gzipWriter) close() error {
	if !g.committed {
		if err := g.commit(); err != nil {
			return err
		}
	}
	if g.gz == nil {
		return nil
	}
	err := g.gz.Close()
	gzipPool(g.config.Level).Put(g.gz)
	g.gz = nil
	return err
}

// abort drops the held-back body so an outer handler can still write the
// response. A stream that is already compressed is left truncated.
func (g *gzipWriter) abort() {
	g.pending = nil
	g.committed = true
	if g.gz == nil {
		return
	}
	g.gz.Reset(io.Discard)
	gzipPool(g.config.Level).Put(g.gz)
	g.gz = nil
}

func (g *gzipWriter) Flush() {
	if !g.committed {
		_ = g.commit()
	}
	if g.gz != nil {
		_ = g.gz.Flush()
	}
	if f, ok := g.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// acceptsGzip reports whether the Accept-Encoding header lists gzip with a non-zero q
func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}

// Compression returns a middleware that gzips eligible responses
func Compression(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			gzw := &gzipWriter{ResponseWriter: w, config: config}
			defer func() {
				if p := recover(); p != nil {
					gzw.abort()
					panic(p)
				}
				_ = gzw.close()
			}()

			next.ServeHTTP(gzw, r)
		})
	}
}
