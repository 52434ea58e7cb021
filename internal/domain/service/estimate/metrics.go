package estimate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeScored   = "scored"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

//nolint:gochecknoglobals
var (
	estimatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "housing_price",
		Name:      "estimates_total",
		Help:      "Estimate requests by outcome.",
	}, []string{"outcome"})

	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "housing_price",
		Name:      "score_cache_hits_total",
		Help:      "Estimates answered from the score memo.",
	})

	modelDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "housing_price",
		Name:      "model_predict_duration_seconds",
		Help:      "Time spent in the model predict call.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), //nolint:mnd
	}, []string{"kind"})
)
