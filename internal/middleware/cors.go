package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORSConfig holds configuration for the CORS middleware
type CORSConfig struct {
	// AllowedOrigins lists permitted origins; "*" permits any origin.
	AllowedOrigins   []string
	AllowCredentials bool
	// MaxAge is how long, in seconds, browsers may cache a preflight result
	MaxAge int
}

// DefaultCORSConfig allows any origin, method and header, with credentials
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           600,
	}
}

var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CORS returns a middleware applying the given policy. A wildcard origin
// is answered by echoing the request origin, since browsers reject "*"
// on credentialed requests.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   allMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: config.AllowCredentials,
		MaxAge:           config.MaxAge,
	}

	if containsWildcard(config.AllowedOrigins) {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = config.AllowedOrigins
	}

	return cors.New(opts).Handler
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// Chain wraps h with the given middlewares; the first one is outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
