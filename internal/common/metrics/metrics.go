// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ValuationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_requests_total",
			Help: "Total number of valuation requests by HTTP status",
		},
		[]string{"status"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_model_calls_total",
			Help: "Total number of language model calls by outcome",
		},
		[]string{"outcome"},
	)

	EmailSends = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_email_sends_total",
			Help: "Total number of email send attempts by outcome",
		},
		[]string{"outcome"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "valuation_request_duration_seconds",
			Help: "Duration of valuation request processing in seconds",
		},
		[]string{"status"},
	)
)
