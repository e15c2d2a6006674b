// Package metrics holds the Prometheus instrumentation for upstream calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UpstreamRequests counts upstream API calls by endpoint and classified
// outcome ("ok", "not_found", "ratelimited", "unknown_status", ...). The
// classifier is the single place that observes every upstream response, so it
// owns the increment.
var UpstreamRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "youtube_upstream_requests_total",
		Help: "Upstream YouTube API requests by endpoint and classified outcome.",
	},
	[]string{"endpoint", "outcome"},
)
