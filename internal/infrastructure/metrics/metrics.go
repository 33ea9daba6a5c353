package metrics

import (
	"net/http"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "buildbid"

type Metrics struct {
	gatherer prometheus.Gatherer

	quoteSubmissions  *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
	comparisons       *prometheus.CounterVec
	comparedQuotes    prometheus.Histogram
	apiRequests       *prometheus.CounterVec
	apiLatency        *prometheus.HistogramVec
	apiInflight       prometheus.Gauge
}

var _ interfaces.IMetricsRecorder = (*Metrics)(nil)

// New registers the service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		quoteSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_submissions_total",
			Help:      "Quote submissions by outcome.",
		}, []string{"outcome"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_status_transitions_total",
			Help:      "Applied quote status transitions.",
		}, []string{"from", "to"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_comparisons_total",
			Help:      "Quote comparisons by outcome.",
		}, []string{"outcome"}),
		comparedQuotes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_comparison_size",
			Help:      "Number of quotes taking part in a comparison.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13},
		}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		apiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		apiInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "HTTP requests being served.",
		}),
	}
	reg.MustRegister(
		m.quoteSubmissions,
		m.statusTransitions,
		m.comparisons,
		m.comparedQuotes,
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
	)
	return m
}

func (m *Metrics) QuoteSubmitted(outcome string) {
	m.quoteSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) QuoteStatusChanged(from, to entities.QuoteStatus) {
	m.statusTransitions.WithLabelValues(string(from), string(to)).Inc()
}

func (m *Metrics) QuotesCompared(outcome string, quotes int) {
	m.comparisons.WithLabelValues(outcome).Inc()
	if quotes > 0 {
		m.comparedQuotes.Observe(float64(quotes))
	}
}

func (m *Metrics) APIInflightInc() { m.apiInflight.Inc() }
func (m *Metrics) APIInflightDec() { m.apiInflight.Dec() }

func (m *Metrics) ObserveAPI(method, route, status string, d time.Duration) {
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
