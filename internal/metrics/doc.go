// Package metrics provides Prometheus instrumentation for the text toolkit
// service.
//
// All metrics are prefixed with "text_toolkit_" and registered on the
// default registry through promauto.
//
// # Metric Categories
//
// ## HTTP Metrics
//
//   - HTTPRequestsTotal: Counter of total requests by method, path, and status
//   - HTTPRequestDuration: Histogram of request duration by method and path
//   - HTTPRequestsInFlight: Gauge of currently processing requests
//   - HTTPPanicsRecovered: Counter of handler panics turned into 500s
//
// ## Operation Metrics
//
//   - OperationsTotal: Counter by operation and outcome
//     (success, invalid, undetected, upstream_error, error)
//   - OperationDuration: Histogram of successful operation time
//   - OperationInputBytes: Histogram of payload sizes
//   - LanguageDetectionsTotal: Counter by detected language code
//
// ## Quote Upstream Metrics
//
//   - QuoteUpstreamRequestsTotal: Counter by upstream status code
//   - QuoteUpstreamDuration: Histogram of upstream round-trip time
//
// Call [InitializeMetrics] once at startup so every label combination is
// exported from the first scrape.
package metrics
