package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	negotiationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "negotiations_total",
		Help:      "Completed negotiation requests by outcome.",
	}, []string{"outcome"})

	negotiationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketplace",
		Name:      "negotiation_duration_seconds",
		Help:      "Wall time of one full negotiation run.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	})

	exchangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace",
		Name:      "exchanges_total",
		Help:      "Per-seller exchanges by terminal status.",
	}, []string{"status"})
)

func RecordNegotiation(outcome string, elapsed time.Duration) {
	negotiationsTotal.WithLabelValues(outcome).Inc()
	negotiationDuration.Observe(elapsed.Seconds())
}

func RecordExchange(status string) {
	exchangesTotal.WithLabelValues(status).Inc()
}
