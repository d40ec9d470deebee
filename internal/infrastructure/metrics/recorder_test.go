package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

func TestRecorder_RecordTransition(t *testing.T) {
	r := NewRecorder("lrutrace")

	r.RecordTransition(entity.OpPut, false, false, false, 1)
	r.RecordTransition(entity.OpPut, true, true, false, 1)
	r.RecordTransition(entity.OpGet, true, false, false, 1)
	r.RecordTransition(entity.OpGet, false, false, false, 1)
	r.RecordTransition(entity.OpPut, false, false, true, 1)

	assert.InDelta(t, 3, testutil.ToFloat64(r.Operations.WithLabelValues("put")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.Operations.WithLabelValues("get")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Hits), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Misses), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Updates), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.Evictions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.CacheSize), 0)
}

func TestRecorder_Snapshot(t *testing.T) {
	r := NewRecorder("lrutrace")
	r.RecordTransition(entity.OpPut, false, false, false, 1)
	r.RecordTransition(entity.OpGet, true, false, false, 1)

	samples, err := r.Snapshot()
	require.NoError(t, err)

	values := make(map[string]float64, len(samples))
	for _, s := range samples {
		values[s.Name] = s.Value
	}

	assert.InDelta(t, 1, values[`lrutrace_operations_total{op="put"}`], 0)
	assert.InDelta(t, 1, values[`lrutrace_operations_total{op="get"}`], 0)
	assert.InDelta(t, 1, values["lrutrace_hits_total"], 0)
	assert.InDelta(t, 0, values["lrutrace_misses_total"], 0)
	assert.InDelta(t, 1, values["lrutrace_cache_size"], 0)

	for i := 1; i < len(samples); i++ {
		assert.LessOrEqual(t, samples[i-1].Name, samples[i].Name)
	}
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a := NewRecorder("lrutrace")
	b := NewRecorder("lrutrace")

	a.RecordTransition(entity.OpGet, false, false, false, 0)
	assert.InDelta(t, 1, testutil.ToFloat64(a.Misses), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.Misses), 0)
}
