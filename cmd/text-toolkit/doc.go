// Package main provides the entry point for the text toolkit API.
//
// The service exposes stateless text utilities over HTTP: tag stripping,
// email and URL extraction, word and character counting, line-break
// removal, anchor link extraction, password and acronym generation,
// language detection and a proxied random quote.
//
// # Application Lifecycle
//
//  1. Configuration Loading: Reads environment variables and an optional env file
//  2. Component Initialization: language detector, quote client, password generator
//  3. HTTP Server Setup: Registers routes and middleware, then starts listening
//  4. Graceful Shutdown: Handles SIGINT/SIGTERM and drains both servers
//
// # HTTP Server
//
// The application runs two HTTP servers:
//
//  1. Main Server (default port 8080):
//     - Text manipulation, generator and quote endpoints
//     - Health probes (/health, /healthz, /livez, /readyz) and /version
//
//  2. Metrics Server (default port 9090, optional):
//     - Prometheus metrics endpoint (/metrics)
//     - Health check endpoint (/health)
//
// Requests pass through panic recovery, a CORS policy, W3C access
// logging, Prometheus instrumentation and gzip compression.
//
// # Environment Variables
//
//   - PORT: Main HTTP server port (default: 8080)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable metrics server (default: true)
//   - LOG_LEVEL: Logging level (debug/info/warn/error)
//   - LOG_FORMAT: "json" for structured production logs
//   - LOG_HEALTH_CHECKS: Log probe requests (default: true)
//   - COMPRESSION_ENABLED: gzip JSON responses (default: true)
//   - QUOTE_API_URL: Upstream random quote service
//   - QUOTE_TIMEOUT: Upstream request timeout (default: 10s)
//   - MAX_UPLOAD_BYTES: Request body limit (default: 10 MiB)
//   - LANGDETECT_RELIABLE_ONLY: Reject low-confidence detections (default: false)
//   - CORS_ALLOWED_ORIGINS: Comma-separated allowed origins (default: *)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown limit (default: 30s)
//   - ENV_FILE: Optional env file to load (default: .env)
//
// # Related Packages
//
//   - [text-toolkit/internal/handlers]: HTTP request handlers
//   - [text-toolkit/internal/textutil]: HTML and text operations
//   - [text-toolkit/internal/password]: Password generation
//   - [text-toolkit/internal/langdetect]: Language detection
//   - [text-toolkit/internal/quote]: Random quote client
//   - [text-toolkit/internal/middleware]: HTTP middleware
//   - [text-toolkit/internal/startup]: Configuration and initialization
package main
