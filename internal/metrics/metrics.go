package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SearchesTotal   *prometheus.CounterVec
	UpstreamSeconds *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec
	UpstreamRetries prometheus.Counter
	PlacesInResults prometheus.Gauge
	ViewRequests    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "wander_searches_total",
			Help: "Total number of place searches, labeled by outcome.",
		}, []string{"status"}),
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wander_upstream_request_duration_seconds",
			Help:    "Duration of requests to the upstream geodata and geocoding APIs.",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "wander_upstream_errors_total",
			Help: "Total number of errors received from the upstream APIs.",
		}, []string{"source"}),
		UpstreamRetries: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "wander_upstream_retries_total",
			Help: "Total number of retried upstream requests.",
		}),
		PlacesInResults: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "wander_places_in_results",
			Help: "Number of places ingested by the most recent search.",
		}),
		ViewRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "wander_view_requests_total",
			Help: "Total number of list and marker view builds, labeled by tab.",
		}, []string{"tab"}),
	}
}
