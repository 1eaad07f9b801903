package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inmatch_predictions_total",
		Help: "Total predictions served, by model.",
	}, []string{"model"})

	predictionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inmatch_prediction_errors_total",
		Help: "Total failed predictions, by model.",
	}, []string{"model"})

	predictionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inmatch_prediction_duration_seconds",
		Help:    "Prediction latency, by model.",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})
)
