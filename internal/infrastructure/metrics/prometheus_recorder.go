package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/meghana-anupoju/trustguard-securities-fraudguard/internal/domain/model"
)

const namespace = "fraudguard"

// PrometheusRecorder implements port.MetricsRecorder with Prometheus collectors.
type PrometheusRecorder struct {
	evaluations *prometheus.CounterVec
	critical    *prometheus.CounterVec
	errors      *prometheus.CounterVec
	scores      *prometheus.HistogramVec
}

// NewPrometheusRecorder creates the evaluation collectors and registers them.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Completed risk evaluations by category and tier.",
		}, []string{"category", "tier"}),
		critical: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "critical_triggers_total",
			Help:      "Evaluations forced to high by a critical indicator.",
		}, []string{"category"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluation_errors_total",
			Help:      "Rejected or failed evaluations by category and reason.",
		}, []string{"category", "reason"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "normalized_score",
			Help:      "Distribution of normalized risk scores.",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
		}, []string{"category"}),
	}

	for _, c := range []prometheus.Collector{r.evaluations, r.critical, r.errors, r.scores} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register evaluation metrics: %w", err)
		}
	}
	return r, nil
}

// RecordEvaluation counts a completed evaluation.
func (r *PrometheusRecorder) RecordEvaluation(category string, result model.ScoreResult) {
	r.evaluations.WithLabelValues(category, result.Tier.String()).Inc()
	r.scores.WithLabelValues(category).Observe(result.NormalizedScore)
	if result.TriggeredCritical {
		r.critical.WithLabelValues(category).Inc()
	}
}

// RecordError counts a failed evaluation.
func (r *PrometheusRecorder) RecordError(category, reason string) {
	r.errors.WithLabelValues(category, reason).Inc()
}
