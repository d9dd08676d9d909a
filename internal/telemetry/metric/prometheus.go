package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "prospyr"

// Registry error kinds, used as the "kind" label of RegistryErrors.
const (
	ErrorKindDuplicate  = "duplicate"
	ErrorKindInvalidURL = "invalid_url"
	ErrorKindNotFound   = "not_found"
)

// Registry holds all prospyr metrics.
type Registry struct {
	registry *prometheus.Registry

	// RegistryErrors counts failed Connect/Get calls by kind.
	RegistryErrors *prometheus.CounterVec

	// RequestsTotal counts API requests by status code and method.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes API request latency by method.
	RequestDuration *prometheus.HistogramVec
}

// NewRegistry creates a metrics registry with all prospyr metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		RegistryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_errors_total",
			Help:      "Failed connection registry operations by kind.",
		}, []string{"kind"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests issued through connections.",
		}, []string{"code", "method"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	r.registry.MustRegister(r.RegistryErrors, r.RequestsTotal, r.RequestDuration)
	return r
}

// TrackConnections registers a collector reporting count() as the number
// of registered connections.
func (r *Registry) TrackConnections(count func() int) error {
	return r.registry.Register(NewConnectionsCollector(count))
}

// InstrumentRoundTripper wraps next so every request updates RequestsTotal
// and RequestDuration.
func (r *Registry) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(r.RequestsTotal,
		promhttp.InstrumentRoundTripperDuration(r.RequestDuration, next))
}

// Gatherer exposes the underlying registry for scraping or testing.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler returns an HTTP handler serving the metrics in Prometheus format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
