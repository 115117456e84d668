package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	ProductMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "product_mutations_total",
			Help: "Total product create/update/delete operations",
		},
		[]string{"action"},
	)

	AuditQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "audit_queue_depth",
			Help: "Pending async audit writes",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestLatency)
	prometheus.MustRegister(ProductMutations)
	prometheus.MustRegister(AuditQueueDepth)
}
