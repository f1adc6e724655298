// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schoolpulse_http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "schoolpulse_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SubmissionsTotal counts stored survey responses by survey title.
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schoolpulse_submissions_total",
		Help: "Survey responses stored, by survey title.",
	}, []string{"survey"})
)

// MetricsHandler serves the Prometheus exposition format
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder remembers the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap exposes the wrapped writer to http.ResponseController
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func observe(r *http.Request, status int, seconds float64) {
	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(r.Method, route).Observe(seconds)
}
