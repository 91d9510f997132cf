package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for OperationsTotal
const (
	OutcomeSuccess    = "success"
	OutcomeInvalid    = "invalid"
	OutcomeUndetected = "undetected"
	OutcomeUpstream   = "upstream_error"
	OutcomeError      = "error"
)

// Operation labels, one per text utility endpoint
const (
	OpRemoveTags        = "remove_tags"
	OpRemoveTagsFile    = "remove_tags_file"
	OpExtractEmailsURLs = "extract_emails_urls"
	OpWordCount         = "word_count"
	OpRemoveLineBreaks  = "remove_line_breaks"
	OpCharacterCounter  = "character_counter"
	OpHTMLLinkExtractor = "html_link_extractor"
	OpPasswordGenerator = "password_generator"
	OpRandomQuote       = "random_quote"
	OpDetectLanguage    = "detect_language"
	OpAcronymGenerator  = "acronym_generator"
)

// Operations lists every operation label
var Operations = []string{
	OpRemoveTags,
	OpRemoveTagsFile,
	OpExtractEmailsURLs,
	OpWordCount,
	OpRemoveLineBreaks,
	OpCharacterCounter,
	OpHTMLLinkExtractor,
	OpPasswordGenerator,
	OpRandomQuote,
	OpDetectLanguage,
	OpAcronymGenerator,
}

// Outcomes lists every outcome label
var Outcomes = []string{OutcomeSuccess, OutcomeInvalid, OutcomeUndetected, OutcomeUpstream, OutcomeError}

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_toolkit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text_toolkit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "text_toolkit_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	HTTPPanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "text_toolkit_http_panics_recovered_total",
			Help: "Total number of handler panics converted to 500 responses",
		},
	)
)

// Text operation metrics
var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_toolkit_operations_total",
			Help: "Total number of text operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text_toolkit_operation_duration_seconds",
			Help:    "Time spent inside a text operation, excluding request decoding",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"operation"},
	)

	OperationInputBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "text_toolkit_operation_input_bytes",
			Help:    "Size of the text or HTML payload handed to an operation",
			Buckets: prometheus.ExponentialBuckets(64, 4, 10),
		},
		[]string{"operation"},
	)
)

// Language detection metrics
var (
	LanguageDetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_toolkit_language_detections_total",
			Help: "Total number of successful language detections by detected language",
		},
		[]string{"language"},
	)
)

// Quote upstream metrics
var (
	QuoteUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_toolkit_quote_upstream_requests_total",
			Help: "Total number of requests to the quote upstream by response status (\"error\" for transport failures)",
		},
		[]string{"status"},
	)

	QuoteUpstreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_toolkit_quote_upstream_duration_seconds",
			Help:    "Quote upstream round-trip duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "text_toolkit_app_info",
			Help: "Application information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// ObserveOperation records one finished operation
func ObserveOperation(operation, outcome string, durationSeconds float64) {
	OperationsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome == OutcomeSuccess {
		OperationDuration.WithLabelValues(operation).Observe(durationSeconds)
	}
}

// ObserveInputSize records the payload size handed to an operation
func ObserveInputSize(operation string, size int) {
	OperationInputBytes.WithLabelValues(operation).Observe(float64(size))
}
