package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "addrindex_http",
		Name:      "requests_total",
		Help:      "Count of REST API requests.",
	}, []string{"route", "method", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "addrindex_http",
		Name:      "request_duration_seconds",
		Help:      "Duration of REST API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
)

// HTTPAPI tracks REST API request metrics.
type HTTPAPI struct{}

// NewHTTPAPI creates an HTTPAPI metrics collector.
func NewHTTPAPI() *HTTPAPI {
	return &HTTPAPI{}
}

// Observe records a served request. Unmatched routes are reported as "unmatched".
func (m HTTPAPI) Observe(route, method string, code int, started time.Time) {
	if route == "" {
		route = "unmatched"
	}
	codeLabel := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(route, method, codeLabel).Inc()
	httpRequestDuration.WithLabelValues(route, method, codeLabel).Observe(time.Since(started).Seconds())
}
