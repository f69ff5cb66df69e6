package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts all HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gke_kubeconfig_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gke_kubeconfig_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// KubeconfigsGeneratedTotal counts successfully rendered kubeconfigs.
	KubeconfigsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gke_kubeconfig_kubeconfigs_generated_total",
		Help: "Total number of kubeconfigs generated",
	})

	// ValidationErrorsTotal counts requests rejected for missing arguments.
	ValidationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gke_kubeconfig_validation_errors_total",
		Help: "Total number of requests rejected by argument validation",
	})
)
