package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	classificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finance_assistant",
		Subsystem: "category",
		Name:      "classifications_total",
		Help:      "Classifications by resulting category and source",
	}, []string{"category", "source"})

	classifierErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "finance_assistant",
		Subsystem: "category",
		Name:      "classifier_errors_total",
		Help:      "Failed calls to the zero-shot classifier",
	})
)
