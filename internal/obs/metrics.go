// Package obs holds the prometheus collectors.
package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	WorkflowTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_workflow_transitions_total",
			Help: "Invitation and request state changes.",
		},
		[]string{"kind", "state"},
	)

	QuizSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_submissions_total",
			Help: "Scored quiz submissions.",
		},
		[]string{"outcome"},
	)

	RemindersSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quiz_reminders_sent_total",
		Help: "Reminder notifications written by the sweep.",
	})

	SweepDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quiz_reminder_sweep_duration_seconds",
		Help:    "Duration of a full reminder sweep.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	})
)

// Init registers every collector in the default registry.
func Init() {
	prometheus.MustRegister(
		httpInFlight, httpRequestsTotal, httpRequestDuration,
		WorkflowTransitions, QuizSubmissions, RemindersSent, SweepDuration,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument records request count and latency labelled by the chi route pattern.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := strconv.Itoa(sw.code)

		httpRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
	})
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
