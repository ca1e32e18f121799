package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestResolutionMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewResolutionMetrics(reg)

	m.ObserveDuration("catalog", 250*time.Millisecond)
	m.AddResolved("catalog", 3)
	m.AddDropped("catalog", 1)
	m.AddResolved("", 2)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	resolved, ok := byName["layout_resolution_resolved_total"]
	if !ok {
		t.Fatal("resolved counter not registered")
	}
	got := map[string]float64{}
	for _, metric := range resolved.GetMetric() {
		var source string
		for _, label := range metric.GetLabel() {
			if label.GetName() == "source" {
				source = label.GetValue()
			}
		}
		got[source] = metric.GetCounter().GetValue()
	}
	if got["catalog"] != 3 {
		t.Fatalf("resolved[catalog] = %v, want 3", got["catalog"])
	}
	if got["unknown"] != 2 {
		t.Fatalf("resolved[unknown] = %v, want 2", got["unknown"])
	}

	hist, ok := byName["layout_resolution_duration_seconds"]
	if !ok {
		t.Fatal("duration histogram not registered")
	}
	if count := hist.GetMetric()[0].GetHistogram().GetSampleCount(); count != 1 {
		t.Fatalf("histogram sample count = %d, want 1", count)
	}
}

func TestResolutionMetricsNilSafe(t *testing.T) {
	var m *ResolutionMetrics
	m.ObserveDuration("catalog", time.Second)
	m.AddResolved("catalog", 1)
	m.AddDropped("catalog", 1)

	empty := NewResolutionMetrics(nil)
	empty.ObserveDuration("catalog", time.Second)
	empty.AddResolved("catalog", 1)
	empty.AddDropped("catalog", 1)
}
