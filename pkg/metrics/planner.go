package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PlannerMetrics records plan generation outcomes per plan type.
type PlannerMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewPlannerMetrics registers the planner metrics on the provided registerer.
func NewPlannerMetrics(reg prometheus.Registerer) *PlannerMetrics {
	if reg == nil {
		return &PlannerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "plan_generation_duration_seconds",
		Help:    "Duration of shopping plan generation in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"plan_type"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_generation_success",
		Help: "Successful plan generations.",
	}, []string{"plan_type"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_generation_failure",
		Help: "Failed plan generations.",
	}, []string{"plan_type"})
	reg.MustRegister(duration, success, failure)
	return &PlannerMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the given plan type.
func (p *PlannerMetrics) ObserveDuration(planType string, duration time.Duration) {
	if p == nil || p.duration == nil {
		return
	}
	p.duration.WithLabelValues(normalizeLabel(planType)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the given plan type.
func (p *PlannerMetrics) IncSuccess(planType string) {
	if p == nil || p.success == nil {
		return
	}
	p.success.WithLabelValues(normalizeLabel(planType)).Inc()
}

// IncFailure increments the failure counter for the given plan type.
func (p *PlannerMetrics) IncFailure(planType string) {
	if p == nil || p.failure == nil {
		return
	}
	p.failure.WithLabelValues(normalizeLabel(planType)).Inc()
}

func normalizeLabel(planType string) string {
	if planType == "" {
		return "unknown"
	}
	return planType
}
