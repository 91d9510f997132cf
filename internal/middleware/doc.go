// Package middleware provides HTTP middleware for the text toolkit service.
//
// It includes:
//   - Panic recovery into JSON 500 responses
//   - An open CORS policy built on github.com/rs/cors
//   - Request logging in W3C Extended Log Format
//   - Prometheus request metrics keyed by route template
//   - gzip response compression for JSON bodies
package middleware
