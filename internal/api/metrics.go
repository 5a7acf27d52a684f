package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "peminatan",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "peminatan",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	recommendationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "peminatan",
		Name:      "recommendations_total",
		Help:      "Subject recommendations computed.",
	})

	assessmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "peminatan",
		Name:      "riasec_assessments_total",
		Help:      "RIASEC questionnaires scored.",
	})

	topScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "peminatan",
		Name:      "recommendation_top_score",
		Help:      "SAW score of the first-ranked subject.",
		Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
	})

	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "peminatan",
		Name:      "events_published_total",
		Help:      "Events sent to hermes by outcome.",
	}, []string{"result"})
)
