package startup

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"text-toolkit/internal/logging"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "1.0.1"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// API metadata reported by /version and the startup banner
const (
	APITitle       = "Text toolkit API"
	APIDescription = "An API for various text manipulation tasks including language detection, password generation, and more."
)

// Defaults for every configuration key
const (
	DefaultPort           = "8080"
	DefaultMetricsPort    = "9090"
	DefaultQuoteAPIURL    = "https://api.quotable.io/random"
	DefaultQuoteTimeout   = 10 * time.Second
	DefaultMaxUploadBytes = int64(10 << 20)
	DefaultShutdownGrace  = 30 * time.Second
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildTime   string `json:"buildTime"`
	GoVersion   string `json:"goVersion"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Name:        APITitle,
		Description: APIDescription,
		Version:     Version,
		Commit:      Commit,
		BuildTime:   BuildTime,
		GoVersion:   GoVersion,
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
	}
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
	Name   string
}

// Config holds all application configuration
type Config struct {
	Port               string
	MetricsPort        string
	MetricsEnabled     bool
	LogHealthChecks    bool
	CompressionEnabled bool

	QuoteAPIURL  string
	QuoteTimeout time.Duration

	MaxUploadBytes int64

	// CORSAllowedOrigins lists permitted origins; "*" reflects any origin
	CORSAllowedOrigins []string

	// LangDetectReliableOnly turns low-confidence detections into failures
	LangDetectReliableOnly bool

	ShutdownTimeout time.Duration
}

// LoadConfig loads and validates configuration from environment variables
// and, when present, an env file named by ENV_FILE (default .env).
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	v := newViper()

	envFile := v.GetString("ENV_FILE")
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		logging.Info("  Loaded env file: %s", envFile)
	} else {
		logging.Debug("  No env file at %s", envFile)
	}

	// Env file values reach logging only through viper.
	logging.Configure(v.GetString("DEBUG"), v.GetString("LOG_LEVEL"), v.GetString("LOG_FORMAT"))

	return configFromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV_FILE", ".env")
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("METRICS_PORT", DefaultMetricsPort)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("LOG_HEALTH_CHECKS", true)
	v.SetDefault("COMPRESSION_ENABLED", true)
	v.SetDefault("QUOTE_API_URL", DefaultQuoteAPIURL)
	v.SetDefault("QUOTE_TIMEOUT", DefaultQuoteTimeout.String())
	v.SetDefault("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	v.SetDefault("LANGDETECT_RELIABLE_ONLY", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", DefaultShutdownGrace.String())
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	return v
}

func configFromViper(v *viper.Viper) (*Config, error) {
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	config := &Config{
		Port:                   v.GetString("PORT"),
		MetricsPort:            v.GetString("METRICS_PORT"),
		MetricsEnabled:         v.GetBool("METRICS_ENABLED"),
		LogHealthChecks:        v.GetBool("LOG_HEALTH_CHECKS"),
		CompressionEnabled:     v.GetBool("COMPRESSION_ENABLED"),
		QuoteAPIURL:            v.GetString("QUOTE_API_URL"),
		QuoteTimeout:           v.GetDuration("QUOTE_TIMEOUT"),
		MaxUploadBytes:         v.GetInt64("MAX_UPLOAD_BYTES"),
		LangDetectReliableOnly: v.GetBool("LANGDETECT_RELIABLE_ONLY"),
		ShutdownTimeout:        v.GetDuration("SHUTDOWN_TIMEOUT"),
		CORSAllowedOrigins:     parseOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if config.QuoteTimeout <= 0 {
		logging.Warn("  Invalid QUOTE_TIMEOUT %q, using default: %v", v.GetString("QUOTE_TIMEOUT"), DefaultQuoteTimeout)
		config.QuoteTimeout = DefaultQuoteTimeout
	}
	if config.ShutdownTimeout <= 0 {
		logging.Warn("  Invalid SHUTDOWN_TIMEOUT %q, using default: %v", v.GetString("SHUTDOWN_TIMEOUT"), DefaultShutdownGrace)
		config.ShutdownTimeout = DefaultShutdownGrace
	}
	if config.MaxUploadBytes <= 0 {
		logging.Warn("  Invalid MAX_UPLOAD_BYTES %q, using default: %d", v.GetString("MAX_UPLOAD_BYTES"), DefaultMaxUploadBytes)
		config.MaxUploadBytes = DefaultMaxUploadBytes
	}

	logging.Info("  PORT:                      %s", config.Port)
	logging.Info("  METRICS_PORT:              %s", config.MetricsPort)
	logging.Info("  METRICS_ENABLED:           %v", config.MetricsEnabled)
	logging.Info("  LOG_HEALTH_CHECKS:         %v", config.LogHealthChecks)
	logging.Info("  COMPRESSION_ENABLED:       %v", config.CompressionEnabled)
	logging.Info("  QUOTE_API_URL:             %s", config.QuoteAPIURL)
	logging.Info("  QUOTE_TIMEOUT:             %v", config.QuoteTimeout)
	logging.Info("  MAX_UPLOAD_BYTES:          %d", config.MaxUploadBytes)
	logging.Info("  LANGDETECT_RELIABLE_ONLY:  %v", config.LangDetectReliableOnly)
	logging.Info("  SHUTDOWN_TIMEOUT:          %v", config.ShutdownTimeout)
	logging.Info("  CORS_ALLOWED_ORIGINS:      %s", strings.Join(config.CORSAllowedOrigins, ","))
	logging.Info("  LOG_LEVEL:                 %s", logging.GetLevel())

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// parseOrigins splits a comma-separated origin list. An empty list means "*".
func parseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Validate checks the values that cannot be defaulted
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.MetricsEnabled && c.MetricsPort == c.Port {
		return fmt.Errorf("METRICS_PORT must differ from PORT (both %s)", c.Port)
	}
	u, err := url.Parse(c.QuoteAPIURL)
	if err != nil {
		return fmt.Errorf("invalid QUOTE_API_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid QUOTE_API_URL %q: must be an absolute http(s) URL", c.QuoteAPIURL)
	}
	return nil
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogQuoteClientInit logs the quote proxy configuration
func LogQuoteClientInit(upstream string, timeout time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("QUOTE PROXY INITIALIZATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Upstream: %s", upstream)
	logging.Info("  Timeout:  %v", timeout)
}

// LogLanguageDetectorInit logs the language detector configuration
func LogLanguageDetectorInit(reliableOnly bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("LANGUAGE DETECTOR INITIALIZATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Reliable-only mode: %s", enabledString(reliableOnly))
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}

		name := route.GetName()

		for _, method := range methods {
			routes = append(routes, RouteInfo{
				Method: method,
				Path:   pathTemplate,
				Name:   name,
			})
		}

		return nil
	})

	return routes, err
}

// LogHTTPRoutes logs all registered HTTP routes dynamically
func LogHTTPRoutes(router *mux.Router, logHealthChecks bool) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("HTTP SERVER SETUP")
	logging.Info("------------------------------------------------------------")

	routes, err := GetRoutes(router)
	if err != nil {
		logging.Warn("error walking routes: %v", err)
	}
	logging.Info("  Registered routes: %d", len(routes))

	if logging.IsDebugEnabled() {
		groups := make(map[string][]RouteInfo)
		for _, route := range routes {
			prefix := getRouteGroup(route.Path)
			groups[prefix] = append(groups[prefix], route)
		}

		groupKeys := make([]string, 0, len(groups))
		for k := range groups {
			groupKeys = append(groupKeys, k)
		}
		sort.Strings(groupKeys)

		for _, group := range groupKeys {
			if group != "" {
				logging.Debug("  [%s]", group)
			} else {
				logging.Debug("  [root]")
			}

			for _, route := range groups[group] {
				logging.Debug("    %-6s %s", route.Method, route.Path)
			}
		}
	}

	if logHealthChecks {
		logging.Info("  Health check logging: ON")
	} else {
		logging.Info("  Health check logging: OFF (set LOG_HEALTH_CHECKS=true to enable)")
	}
}

// getRouteGroup returns the first path segment of a route
func getRouteGroup(path string) string {
	path = strings.TrimPrefix(path, "/")
	first, _, _ := strings.Cut(path, "/")
	return first
}

// ServerConfig holds configuration for the server startup log
type ServerConfig struct {
	Port            string
	MetricsPort     string
	MetricsEnabled  bool
	StartupDuration time.Duration
}

// LogServerStarted logs successful server start with all endpoint information
func LogServerStarted(config ServerConfig) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:    %v", config.StartupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Application:   http://0.0.0.0:%s", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:       http://0.0.0.0:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("    Metrics:       DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownStep logs a shutdown step
func LogShutdownStep(step string) {
	logging.Debug("  %s...", step)
}

// LogShutdownStepComplete logs a completed shutdown step
func LogShutdownStepComplete(step string) {
	logging.Info("  [OK] %s", step)
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func printBanner() {
	banner := `
------------------------------------------------------------
  _____         _     _____           _ _    _ _
 |_   _|____  _| |_  |_   _|__   ___ | | | _(_) |_
   | |/ _ \ \/ / __|   | |/ _ \ / _ \| | |/ / | __|
   | |  __/>  <| |_    | | (_) | (_) | |   <| | |_
   |_|\___/_/\_\\__|   |_|\___/ \___/|_|_|\_\_|\__|

------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  %s", APITitle)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if logging.IsDebugEnabled() {
		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}
