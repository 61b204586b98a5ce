package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wit_client",
			Name:      "requests_total",
			Help:      "Requests sent to the service, by operation.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wit_client",
			Name:      "request_failures_total",
			Help:      "Requests that ended in a transport, HTTP or decode error.",
		},
		[]string{"operation"},
	)
)
