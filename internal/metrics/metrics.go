// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ats_evaluations_total",
		Help: "Evaluations served, by outcome (ok or fallback).",
	}, []string{"outcome"})

	llmCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ats_llm_calls_total",
		Help: "Calls to the text-generation service, by status.",
	}, []string{"status"})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ats_rate_limited_requests_total",
		Help: "Requests rejected by the rate limiter.",
	})

	dayPassesIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ats_day_passes_issued_total",
		Help: "Day-pass tokens issued after payment confirmation.",
	})
)

func RecordEvaluation(outcome string) { evaluationsTotal.WithLabelValues(outcome).Inc() }
func RecordLLMCall(status string)     { llmCallsTotal.WithLabelValues(status).Inc() }
func RecordRateLimited()              { rateLimitedTotal.Inc() }
func RecordDayPassIssued()            { dayPassesIssuedTotal.Inc() }
