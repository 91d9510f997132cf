// Package startup handles application initialization, configuration loading,
// and startup/shutdown logging.
//
// # Configuration
//
// All configuration is loaded via [LoadConfig] using viper. Environment
// variables take precedence over an optional env file (ENV_FILE, default
// .env). The following keys are supported:
//
//   - PORT: HTTP server port (default: 8080)
//   - METRICS_PORT: Prometheus metrics server port (default: 9090)
//   - METRICS_ENABLED: Enable or disable metrics server (default: true)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: info)
//   - LOG_FORMAT: console or json (default: console)
//   - LOG_HEALTH_CHECKS: Log health check requests (default: true)
//   - COMPRESSION_ENABLED: gzip JSON responses (default: true)
//   - QUOTE_API_URL: Random quote upstream (default: https://api.quotable.io/random)
//   - QUOTE_TIMEOUT: Upstream timeout as Go duration (default: 10s)
//   - MAX_UPLOAD_BYTES: Upload size limit for the file endpoint (default: 10 MiB)
//   - LANGDETECT_RELIABLE_ONLY: Reject low-confidence detections (default: false)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 30s)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//
//	go build -ldflags "-X text-toolkit/internal/startup.Version=1.2.0 \
//	    -X text-toolkit/internal/startup.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/text-toolkit
package startup
