package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"text-toolkit/internal/handlers"
	"text-toolkit/internal/langdetect"
	"text-toolkit/internal/logging"
	"text-toolkit/internal/metrics"
	"text-toolkit/internal/middleware"
	"text-toolkit/internal/password"
	"text-toolkit/internal/quote"
	"text-toolkit/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()
	defer func() { _ = logging.Sync() }()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	metrics.InitializeMetrics()
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)

	startup.LogLanguageDetectorInit(config.LangDetectReliableOnly)
	detector := langdetect.New(config.LangDetectReliableOnly)

	startup.LogQuoteClientInit(config.QuoteAPIURL, config.QuoteTimeout)
	quotes := quote.NewClient(config.QuoteAPIURL, config.QuoteTimeout)

	// Initialize handlers
	h := handlers.New(detector, quotes, password.New(), config)

	// Setup router
	router := setupRouter(h)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           buildHandler(router, config),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      config.QuoteTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = newMetricsServer(config.MetricsPort, h)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	// Start graceful shutdown handler
	go handleShutdown(srv, metricsSrv, h, config.ShutdownTimeout)

	h.SetReady(true)
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics)
	// Router middleware does not run for unmatched requests.
	r.NotFoundHandler = middleware.Metrics(http.HandlerFunc(handlers.NotFound))
	r.MethodNotAllowedHandler = middleware.Metrics(http.HandlerFunc(handlers.MethodNotAllowed))
	h.RegisterRoutes(r)
	return r
}

// buildHandler wraps the router with recovery, CORS, logging and compression.
// Metrics are attached on the router itself so route templates are known.
func buildHandler(router http.Handler, config *startup.Config) http.Handler {
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks

	corsConfig := middleware.DefaultCORSConfig()
	if len(config.CORSAllowedOrigins) > 0 {
		corsConfig.AllowedOrigins = config.CORSAllowedOrigins
	}

	chain := []func(http.Handler) http.Handler{
		middleware.Recovery,
		middleware.CORS(corsConfig),
		middleware.Logger(loggingConfig),
	}
	if config.CompressionEnabled {
		chain = append(chain, middleware.Compression(middleware.DefaultCompressionConfig()))
	}

	return middleware.Chain(router, chain...)
}

func newMetricsServer(port string, h *handlers.Handlers) *http.Server {
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", h.MetricsHandler())
	metricsMux.HandleFunc("/health", h.LivenessCheck)

	return &http.Server{
		Addr:              ":" + port,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func handleShutdown(srv, metricsSrv *http.Server, h *handlers.Handlers, timeout time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())
	h.SetReady(false)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
