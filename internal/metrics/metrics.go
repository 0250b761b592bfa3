package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Intake results.
const (
	ResultSaved     = "saved"
	ResultDuplicate = "duplicate"
	ResultInvalid   = "invalid"
	ResultError     = "error"
)

// Metrics holds the Prometheus collectors of the agent.
type Metrics struct {
	IntakeTotal         *prometheus.CounterVec
	ParserFallbackTotal prometheus.Counter
	CalendarExportTotal *prometheus.CounterVec

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New returns the process-wide collectors, registering them on first use.
//
// Metrics:
//   - taskagent_intake_total{result} - intake outcomes (saved, duplicate, invalid, error)
//   - taskagent_parser_fallback_total - LLM parses replaced by the heuristic
//   - taskagent_calendar_export_total{result} - calendar events created or failed
//   - taskagent_http_requests_total{method,route,status}
//   - taskagent_http_request_duration_seconds{method,route}
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			IntakeTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskagent_intake_total",
					Help: "Total number of intake requests by result",
				},
				[]string{"result"},
			),
			ParserFallbackTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "taskagent_parser_fallback_total",
					Help: "Total number of parses served by the fallback parser",
				},
			),
			CalendarExportTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskagent_calendar_export_total",
					Help: "Total number of schedule slots exported to the calendar",
				},
				[]string{"result"}, // "created" or "failed"
			),
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "taskagent_http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "taskagent_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
		}
	})
	return globalMetrics
}

// RecordIntake counts one intake outcome.
func (m *Metrics) RecordIntake(result string) {
	if m == nil {
		return
	}
	m.IntakeTotal.WithLabelValues(result).Inc()
}

// RecordParserFallback counts one fallback parse.
func (m *Metrics) RecordParserFallback() {
	if m == nil {
		return
	}
	m.ParserFallbackTotal.Inc()
}

// RecordCalendarExport counts one exported or failed slot.
func (m *Metrics) RecordCalendarExport(ok bool) {
	if m == nil {
		return
	}
	result := "created"
	if !ok {
		result = "failed"
	}
	m.CalendarExportTotal.WithLabelValues(result).Inc()
}
