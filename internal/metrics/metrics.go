package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Enhancement outcomes recorded in EnhancementsTotal.
const (
	OutcomeOK            = "ok"
	OutcomeClientError   = "client_error"
	OutcomeUpstreamError = "upstream_error"
	OutcomeInternalError = "internal_error"
)

var (
	EnhancementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptarch_enhancements_total",
		Help: "Enhancement requests by variant and outcome.",
	}, []string{"variant", "outcome"})

	EnhancementDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "promptarch_enhancement_duration_seconds",
		Help:    "Time spent producing an enhanced prompt.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.25, 1, 2.5, 5, 10, 30},
	}, []string{"variant"})

	LLMRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptarch_llm_retries_total",
		Help: "Retried completion calls after a transient failure.",
	}, []string{"provider"})

	SubjectCategoryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "promptarch_subject_category_total",
		Help: "Seeds classified per subject category by the template enhancer.",
	}, []string{"category"})
)
