package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "viador", Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"route", "method", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "viador", Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
		[]string{"route", "method"},
	)
	SeedDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "viador", Name: "seed_documents_total", Help: "Canonical documents handled at startup by collection and result (inserted|skipped)."},
		[]string{"collection", "result"},
	)
	ContactMessages = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "viador", Name: "contact_messages_total", Help: "Contact messages stored."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPDuration)
	reg.MustRegister(SeedDocuments)
	reg.MustRegister(ContactMessages)
}
