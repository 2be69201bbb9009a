package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	answersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "finance_assistant",
		Subsystem: "chatbot",
		Name:      "answers_total",
		Help:      "Answers produced by intent and outcome",
	}, []string{"intent", "outcome"})

	aggregateLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "finance_assistant",
		Subsystem: "chatbot",
		Name:      "aggregate_latency_seconds",
		Help:      "Data store aggregate latency by ledger",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ledger"})

	fallbackLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "finance_assistant",
		Subsystem: "chatbot",
		Name:      "fallback_latency_seconds",
		Help:      "Generative fallback latency",
		Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
	})
)
