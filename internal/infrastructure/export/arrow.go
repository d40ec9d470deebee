package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
)

// TraceSchema returns the Arrow schema of an exported trace.
//
// Fields:
//   - scenario: string - scenario name
//   - step: int64 - 1-based step number
//   - op: string - "get" or "put"
//   - key: string - touched key
//   - value: string (nullable) - value written by put, or read by a get hit
//   - hit: bool - key was resident before the operation
//   - update: bool - put replaced an existing value
//   - state: list<string> - keys after the operation, MRU first
//   - added: list<string> - keys that entered the cache
//   - evicted: list<string> - keys that left the cache
func TraceSchema() *arrow.Schema {
	return arrow.NewSchema(
		[]arrow.Field{
			{Name: "scenario", Type: arrow.BinaryTypes.String},
			{Name: "step", Type: arrow.PrimitiveTypes.Int64},
			{Name: "op", Type: arrow.BinaryTypes.String},
			{Name: "key", Type: arrow.BinaryTypes.String},
			{Name: "value", Type: arrow.BinaryTypes.String, Nullable: true},
			{Name: "hit", Type: arrow.FixedWidthTypes.Boolean},
			{Name: "update", Type: arrow.FixedWidthTypes.Boolean},
			{Name: "state", Type: arrow.ListOf(arrow.BinaryTypes.String)},
			{Name: "added", Type: arrow.ListOf(arrow.BinaryTypes.String)},
			{Name: "evicted", Type: arrow.ListOf(arrow.BinaryTypes.String)},
		},
		nil,
	)
}

// ArrowExporter writes an Arrow IPC stream with one record batch per scenario.
type ArrowExporter struct {
	allocator memory.Allocator
	schema    *arrow.Schema
}

var _ port.TraceExporter = (*ArrowExporter)(nil)

// NewArrowExporter creates an Arrow IPC exporter.
func NewArrowExporter() *ArrowExporter {
	return &ArrowExporter{
		allocator: memory.DefaultAllocator,
		schema:    TraceSchema(),
	}
}

// Export implements port.TraceExporter.
func (e *ArrowExporter) Export(w io.Writer, results []port.ScenarioResult) error {
	writer := ipc.NewWriter(w, ipc.WithSchema(e.schema), ipc.WithAllocator(e.allocator))
	defer writer.Close()

	for _, res := range results {
		record := e.buildRecord(res)
		err := writer.Write(record)
		record.Release()
		if err != nil {
			return fmt.Errorf("failed to write record for %s: %w", res.Scenario.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}
	return nil
}

func (e *ArrowExporter) buildRecord(res port.ScenarioResult) arrow.Record {
	builder := array.NewRecordBuilder(e.allocator, e.schema)
	defer builder.Release()

	scenarioBuilder := builder.Field(0).(*array.StringBuilder)
	stepBuilder := builder.Field(1).(*array.Int64Builder)
	opBuilder := builder.Field(2).(*array.StringBuilder)
	keyBuilder := builder.Field(3).(*array.StringBuilder)
	valueBuilder := builder.Field(4).(*array.StringBuilder)
	hitBuilder := builder.Field(5).(*array.BooleanBuilder)
	updateBuilder := builder.Field(6).(*array.BooleanBuilder)
	stateBuilder := builder.Field(7).(*array.ListBuilder)
	addedBuilder := builder.Field(8).(*array.ListBuilder)
	evictedBuilder := builder.Field(9).(*array.ListBuilder)

	for _, tr := range res.Trace {
		scenarioBuilder.Append(res.Scenario.Name)
		stepBuilder.Append(int64(tr.Step))
		opBuilder.Append(string(tr.Operation.Kind))
		keyBuilder.Append(tr.Operation.Key)

		switch {
		case tr.Operation.Kind == entity.OpPut:
			valueBuilder.Append(tr.Operation.Value)
		case tr.Outcome.Hit:
			valueBuilder.Append(tr.Outcome.Value)
		default:
			valueBuilder.AppendNull()
		}

		hitBuilder.Append(tr.Outcome.Hit)
		updateBuilder.Append(tr.Outcome.WasUpdate)
		appendStrings(stateBuilder, tr.State.Keys())
		appendStrings(addedBuilder, tr.Added)
		appendStrings(evictedBuilder, tr.Evicted)
	}

	return builder.NewRecord()
}

func appendStrings(lb *array.ListBuilder, values []string) {
	lb.Append(true)
	vb := lb.ValueBuilder().(*array.StringBuilder)
	for _, v := range values {
		vb.Append(v)
	}
}
