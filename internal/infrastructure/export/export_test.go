package export_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/application/usecase"
	"github.com/bnema/lrutrace/internal/cli/styles"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/infrastructure/cache"
	"github.com/bnema/lrutrace/internal/infrastructure/config"
	"github.com/bnema/lrutrace/internal/infrastructure/export"
)

func simulate(t *testing.T, scenarios ...entity.Scenario) []port.ScenarioResult {
	t.Helper()
	runner := usecase.NewRunScenarioUseCase(nil, cache.NewEngine[string, string], nil, cache.PolicyLRU)
	results, err := runner.RunAll(context.Background(), scenarios)
	require.NoError(t, err)
	return results
}

func recencyScenario() entity.Scenario {
	return entity.Scenario{
		Name:     "recency",
		Capacity: 2,
		Operations: []entity.Operation[string, string]{
			entity.PutOp("A", "0"),
			entity.PutOp("B", "1"),
			entity.GetOp[string, string]("A"),
			entity.PutOp("C", "2"),
			entity.GetOp[string, string]("Z"),
		},
	}
}

func textRenderer() export.StepRenderer {
	return styles.NewCacheRenderer(styles.NewThemeFromPalette(config.DefaultDarkPalette()))
}

func TestNewExporter(t *testing.T) {
	for _, format := range export.Formats() {
		exp, err := export.NewExporter(format, export.Options{Renderer: textRenderer()})
		require.NoError(t, err, format)
		assert.NotNil(t, exp)
	}

	_, err := export.NewExporter("csv", export.Options{})
	assert.ErrorContains(t, err, "unknown output format")

	_, err = export.NewExporter(export.FormatText, export.Options{})
	assert.Error(t, err)
}

func TestTextExporter(t *testing.T) {
	results := simulate(t, entity.DemoScenario())

	var buf bytes.Buffer
	require.NoError(t, export.NewTextExporter(textRenderer(), true).Export(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "Step 5")
	assert.Contains(t, out, "put E 4")
	assert.Contains(t, out, "Cache full: E(4) replaces oldest entry A(0)")
	assert.Contains(t, out, "New Entry")
	assert.Contains(t, out, "Evicted")
	assert.Contains(t, out, "evictions 1")
}

func TestTextExporter_WithoutSummary(t *testing.T) {
	results := simulate(t, recencyScenario())

	var buf bytes.Buffer
	require.NoError(t, export.NewTextExporter(textRenderer(), false).Export(&buf, results))

	assert.Contains(t, buf.String(), "Miss: Z is not cached, nothing changed")
	assert.NotContains(t, buf.String(), "hit ratio")
}

func TestJSONExporter(t *testing.T) {
	results := simulate(t, recencyScenario())

	var buf bytes.Buffer
	require.NoError(t, export.NewJSONExporter().Export(&buf, results))

	var decoded []struct {
		Name        string `json:"name"`
		Capacity    int    `json:"capacity"`
		Policy      string `json:"policy"`
		Transitions []struct {
			Step    int      `json:"step"`
			Op      string   `json:"op"`
			Key     string   `json:"key"`
			Value   *string  `json:"value"`
			Hit     bool     `json:"hit"`
			Added   []string `json:"added"`
			Evicted []string `json:"evicted"`
			State   []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"state"`
		} `json:"transitions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	sc := decoded[0]
	assert.Equal(t, "recency", sc.Name)
	assert.Equal(t, "lru", sc.Policy)
	require.Len(t, sc.Transitions, 5)

	hit := sc.Transitions[2]
	assert.Equal(t, "get", hit.Op)
	assert.True(t, hit.Hit)
	require.NotNil(t, hit.Value)
	assert.Equal(t, "0", *hit.Value)

	evict := sc.Transitions[3]
	assert.Equal(t, []string{"C"}, evict.Added)
	assert.Equal(t, []string{"B"}, evict.Evicted)
	require.Len(t, evict.State, 2)
	assert.Equal(t, "C", evict.State[0].Key)
	assert.Equal(t, "A", evict.State[1].Key)

	miss := sc.Transitions[4]
	assert.False(t, miss.Hit)
	assert.Empty(t, miss.Added)
	assert.NotNil(t, miss.Added, "empty diffs encode as [] not null")
	assert.Nil(t, miss.Value, "get miss has no value")
}

func TestJSONExporter_EmptyPutValue(t *testing.T) {
	results := simulate(t, entity.Scenario{
		Name:     "empty",
		Capacity: 1,
		Operations: []entity.Operation[string, string]{
			entity.PutOp("A", ""),
			entity.GetOp[string, string]("B"),
		},
	})

	var buf bytes.Buffer
	require.NoError(t, export.NewJSONExporter().Export(&buf, results))

	var decoded []struct {
		Transitions []map[string]any `json:"transitions"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Len(t, decoded[0].Transitions, 2)

	put := decoded[0].Transitions[0]
	require.Contains(t, put, "value")
	assert.Equal(t, "", put["value"])

	miss := decoded[0].Transitions[1]
	require.Contains(t, miss, "value")
	assert.Nil(t, miss["value"])
}

func TestArrowExporter_RoundTrip(t *testing.T) {
	results := simulate(t, entity.DemoScenario(), recencyScenario())

	var buf bytes.Buffer
	require.NoError(t, export.NewArrowExporter().Export(&buf, results))

	reader, err := ipc.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer reader.Release()

	assert.True(t, reader.Schema().Equal(export.TraceSchema()))

	var batches int
	var rows int64
	for reader.Next() {
		rec := reader.Record()
		batches++
		rows += rec.NumRows()

		if batches == 1 {
			require.EqualValues(t, 5, rec.NumRows())
			scenario := rec.Column(0).(*array.String)
			step := rec.Column(1).(*array.Int64)
			key := rec.Column(3).(*array.String)
			assert.Equal(t, "demo", scenario.Value(0))
			assert.EqualValues(t, 5, step.Value(4))
			assert.Equal(t, "E", key.Value(4))

			evicted := rec.Column(9).(*array.List)
			start, end := evicted.ValueOffsets(4)
			values := evicted.ListValues().(*array.String)
			require.EqualValues(t, 1, end-start)
			assert.Equal(t, "A", values.Value(int(start)))

			state := rec.Column(7).(*array.List)
			start, end = state.ValueOffsets(4)
			stateValues := state.ListValues().(*array.String)
			var keys []string
			for i := start; i < end; i++ {
				keys = append(keys, stateValues.Value(int(i)))
			}
			assert.Equal(t, []string{"E", "D", "C", "B"}, keys)
		}

		if batches == 2 {
			value := rec.Column(4).(*array.String)
			assert.True(t, value.IsNull(4), "get miss has no value")
			assert.Equal(t, "0", value.Value(2), "get hit carries the read value")
		}
	}
	require.NoError(t, reader.Err())
	assert.Equal(t, 2, batches)
	assert.EqualValues(t, 10, rows)
}
