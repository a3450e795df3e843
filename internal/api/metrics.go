package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	estimateRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "treecarbon_estimate_requests_total",
		Help: "Total estimate requests by outcome.",
	}, []string{"outcome"})

	estimateDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "treecarbon_estimate_duration_seconds",
		Help:    "Estimate request handling duration.",
		Buckets: prometheus.DefBuckets,
	})
)

// Outcome labels for estimateRequestsTotal.
const (
	outcomeOK             = "ok"
	outcomeInvalidRequest = "invalid_request"
	outcomeBadMethod      = "bad_method"
)
