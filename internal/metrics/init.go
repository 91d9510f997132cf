package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, op := range Operations {
		for _, outcome := range Outcomes {
			OperationsTotal.WithLabelValues(op, outcome)
		}
		OperationDuration.WithLabelValues(op)
		OperationInputBytes.WithLabelValues(op)
	}

	for _, status := range []string{"200", "error"} {
		QuoteUpstreamRequestsTotal.WithLabelValues(status)
	}
}
