package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Decode outcomes reported by RecordDecode.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeBadBody = "bad_body"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "callsdk",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "callsdk",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	modelDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "callsdk",
			Subsystem: "model",
			Name:      "decode_total",
			Help:      "Record decodes by record name and outcome.",
		},
		[]string{"record", "outcome"},
	)
	modelFieldErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "callsdk",
			Subsystem: "model",
			Name:      "field_errors_total",
			Help:      "Field violations reported by decode, by record and error kind.",
		},
		[]string{"record", "kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, modelDecodes, modelFieldErrors)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordDecode(record, outcome string) {
	RegisterMetrics()
	modelDecodes.WithLabelValues(record, outcome).Inc()
}

func RecordFieldError(record, kind string) {
	RegisterMetrics()
	modelFieldErrors.WithLabelValues(record, kind).Inc()
}
