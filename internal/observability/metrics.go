package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/metocean-kit/bgs"
)

// Metrics holds the Prometheus counters and histograms for the
// metocean service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: route, code

	// BGS geomagnetism client metrics.
	DeclinationRequests *prometheus.CounterVec // labels: outcome={success,error}
	DeclinationDuration prometheus.Histogram
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metocean",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		DeclinationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metocean",
			Name:      "declination_requests_total",
			Help:      "BGS geomagnetism API requests by outcome.",
		}, []string{"outcome"}),
		DeclinationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metocean",
			Name:      "declination_api_duration_seconds",
			Help:      "BGS geomagnetism API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.DeclinationRequests,
		m.DeclinationDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "metocean", Name: "http_requests_total"}, []string{"route", "code"}),
		DeclinationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "metocean", Name: "declination_requests_total"}, []string{"outcome"}),
		DeclinationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "metocean", Name: "declination_api_duration_seconds"}),
	}
}

// instrumentedProvider decorates a bgs.Provider with request counters
// and a duration histogram.
type instrumentedProvider struct {
	inner   bgs.Provider
	metrics *Metrics
}

// InstrumentProvider wraps a declination provider so every upstream
// call is counted and timed. Wrap the raw client, then cache, so cache
// hits do not inflate the API metrics.
func InstrumentProvider(inner bgs.Provider, m *Metrics) bgs.Provider {
	return &instrumentedProvider{inner: inner, metrics: m}
}

func (p *instrumentedProvider) Declination(ctx context.Context, req bgs.Request) (float64, error) {
	start := time.Now()
	v, err := p.inner.Declination(ctx, req)
	p.metrics.DeclinationDuration.Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	p.metrics.DeclinationRequests.WithLabelValues(outcome).Inc()
	return v, err
}
