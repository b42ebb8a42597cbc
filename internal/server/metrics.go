package server

import "github.com/prometheus/client_golang/prometheus"

var (
	qaRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qa_requests_total",
			Help: "Total number of QA requests",
		},
		[]string{"status"},
	)
	qaRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "qa_request_duration_seconds",
			Help: "Duration of QA requests",
		},
	)
	qaDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qa_degraded_answers_total",
			Help: "Answers produced without retrieved context",
		},
	)
	cacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qa_cache_hits_total",
			Help: "Total number of answer cache hits",
		},
	)
	cacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "qa_cache_misses_total",
			Help: "Total number of answer cache misses",
		},
	)
)

func init() {
	prometheus.MustRegister(qaRequestsTotal)
	prometheus.MustRegister(qaRequestDuration)
	prometheus.MustRegister(qaDegradedTotal)
	prometheus.MustRegister(cacheHitsTotal)
	prometheus.MustRegister(cacheMissesTotal)
}
