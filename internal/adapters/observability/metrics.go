package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stays", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stays", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	FilterQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stays", Name: "filter_queries_total", Help: "Property filter queries."},
		[]string{"filtered"}, // filtered: yes|no (any predicate set)
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stays", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	PaymentOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "stays", Name: "payment_outcomes_total", Help: "Simulated payment outcomes."},
		[]string{"outcome"}, // outcome: approved|declined|error
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, FilterQueries, CacheEvents, PaymentOutcomes)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveFilterQuery(filtered bool) {
	label := "no"
	if filtered {
		label = "yes"
	}
	FilterQueries.WithLabelValues(label).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObservePayment(outcome string) {
	PaymentOutcomes.WithLabelValues(outcome).Inc()
}
