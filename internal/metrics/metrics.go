// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics defines the Prometheus collectors exported by mailwright.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks handler latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"handler", "method", "status"},
	)

	// GatewayCallLatency tracks model API latency in milliseconds.
	GatewayCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_gateway_call_latency_ms",
			Help:    "Model API call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10), // 100ms to ~100s
		},
		[]string{"operation", "status"},
	)

	// EmailRequests counts handled requests by outcome.
	EmailRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_requests_total",
			Help: "Total number of email requests handled",
		},
		[]string{"handler", "outcome"}, // outcome: ok, invalid, upstream, format, internal
	)
)

// RecordHTTPRequestDuration records one served HTTP request.
func RecordHTTPRequestDuration(handler, method, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(handler, method, status).Observe(d.Seconds())
}

// RecordGatewayCall records one call to the model API.
func RecordGatewayCall(operation, status string, d time.Duration) {
	GatewayCallLatency.WithLabelValues(operation, status).Observe(float64(d.Milliseconds()))
}

// IncrementEmailRequest counts one handled request.
func IncrementEmailRequest(handler, outcome string) {
	EmailRequests.WithLabelValues(handler, outcome).Inc()
}
