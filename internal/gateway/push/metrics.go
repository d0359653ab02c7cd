package push

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PushRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "push_gateway_retries_total",
			Help: "Total number of realtime push retry attempts",
		},
		[]string{"method", "result"},
	)

	PushRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "push_gateway_request_duration_seconds",
			Help:    "Duration of realtime push deliveries including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"method", "result"},
	)
)
