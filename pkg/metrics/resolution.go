package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ResolutionMetrics records per-product layout resolution outcomes.
type ResolutionMetrics struct {
	duration *prometheus.HistogramVec
	resolved *prometheus.CounterVec
	dropped  *prometheus.CounterVec
}

// NewResolutionMetrics registers the resolution metrics on the provided registerer.
func NewResolutionMetrics(reg prometheus.Registerer) *ResolutionMetrics {
	if reg == nil {
		return &ResolutionMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "layout_resolution_duration_seconds",
		Help:    "Duration of product layout resolution calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	resolved := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "layout_resolution_resolved_total",
		Help: "Layouts resolved into purchasable output.",
	}, []string{"source"})
	dropped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "layout_resolution_dropped_total",
		Help: "Layouts dropped for lacking a purchasable variant.",
	}, []string{"source"})
	reg.MustRegister(duration, resolved, dropped)
	return &ResolutionMetrics{
		duration: duration,
		resolved: resolved,
		dropped:  dropped,
	}
}

// ObserveDuration records the duration of one resolution call.
func (m *ResolutionMetrics) ObserveDuration(source string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(source)).Observe(duration.Seconds())
}

// AddResolved increments the resolved-layout counter.
func (m *ResolutionMetrics) AddResolved(source string, count int) {
	if m == nil || m.resolved == nil || count <= 0 {
		return
	}
	m.resolved.WithLabelValues(normalizeLabel(source)).Add(float64(count))
}

// AddDropped increments the dropped-layout counter.
func (m *ResolutionMetrics) AddDropped(source string, count int) {
	if m == nil || m.dropped == nil || count <= 0 {
		return
	}
	m.dropped.WithLabelValues(normalizeLabel(source)).Add(float64(count))
}

func normalizeLabel(source string) string {
	if source == "" {
		return "unknown"
	}
	return source
}
