package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	pedidosAccepted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos",
			Subsystem: "intake",
			Name:      "accepted_total",
			Help:      "Total number of orders accepted and persisted",
		},
	)

	pedidosRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos",
			Subsystem: "intake",
			Name:      "rejected_total",
			Help:      "Total number of submissions rejected by validation",
		},
	)

	pedidosFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pedidos",
			Subsystem: "intake",
			Name:      "failed_total",
			Help:      "Total number of orders lost to persistence failures",
		},
	)

	orderIntakeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pedidos",
			Subsystem: "intake",
			Name:      "duration_seconds",
			Help:      "Histogram of accepted-order intake durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		pedidosAccepted,
		pedidosRejected,
		pedidosFailed,
		orderIntakeDuration,
	)
}
