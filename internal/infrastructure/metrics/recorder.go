// Package metrics provides Prometheus instrumentation for trace generation.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

// Recorder counts cache outcomes on its own registry.
// It implements port.TraceRecorder and is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	Operations *prometheus.CounterVec
	Hits       prometheus.Counter
	Misses     prometheus.Counter
	Evictions  prometheus.Counter
	Updates    prometheus.Counter
	CacheSize  prometheus.Gauge
}

// NewRecorder creates a recorder whose metric names start with namespace.
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of cache operations replayed",
		}, []string{"op"}),
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hits_total",
			Help:      "Get operations that found their key",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "misses_total",
			Help:      "Get operations whose key was absent",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evictions_total",
			Help:      "Entries evicted to make room for new keys",
		}),
		Updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Put operations that replaced an existing value",
		}),
		CacheSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_size",
			Help:      "Entries held after the most recent operation",
		}),
	}

	r.registry.MustRegister(r.Operations, r.Hits, r.Misses, r.Evictions, r.Updates, r.CacheSize)
	return r
}

// RecordTransition implements port.TraceRecorder.
func (r *Recorder) RecordTransition(op entity.OpKind, hit, update, evicted bool, size int) {
	r.Operations.WithLabelValues(string(op)).Inc()

	if op == entity.OpGet {
		if hit {
			r.Hits.Inc()
		} else {
			r.Misses.Inc()
		}
	}
	if update {
		r.Updates.Inc()
	}
	if evicted {
		r.Evictions.Inc()
	}
	r.CacheSize.Set(float64(size))
}

// Registry returns the registry the metrics live on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Sample is one flattened metric value.
type Sample struct {
	Name  string
	Value float64
}

// Snapshot gathers the registry into name-sorted samples. Labelled series
// are rendered as name{label="value"}.
func (r *Recorder) Snapshot() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				name += "{" + lp.GetName() + `="` + lp.GetValue() + `"}`
			}

			if value, ok := sampleValue(m); ok {
				samples = append(samples, Sample{Name: name, Value: value})
			}
		}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}

// sampleValue reads counters and gauges; other metric types are skipped.
func sampleValue(m *dto.Metric) (float64, bool) {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue(), true
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue(), true
	default:
		return 0, false
	}
}
