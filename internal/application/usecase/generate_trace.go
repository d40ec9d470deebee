package usecase

import (
	"context"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/logging"
)

// GenerateTraceUseCase replays operations against one cache engine and
// records a transition for every step.
type GenerateTraceUseCase[K comparable, V any] struct {
	engine   port.CacheEngine[K, V]
	recorder port.TraceRecorder
	step     int
}

// NewGenerateTraceUseCase creates a trace generator bound to engine.
// recorder may be nil.
func NewGenerateTraceUseCase[K comparable, V any](
	engine port.CacheEngine[K, V],
	recorder port.TraceRecorder,
) *GenerateTraceUseCase[K, V] {
	return &GenerateTraceUseCase[K, V]{
		engine:   engine,
		recorder: recorder,
	}
}

// Run applies ops in order and returns the full trace.
// A second Run continues from the engine's current state; call Reset for a fresh run.
func (uc *GenerateTraceUseCase[K, V]) Run(ctx context.Context, ops []entity.Operation[K, V]) entity.Trace[K, V] {
	log := logging.FromContext(ctx)

	trace := make(entity.Trace[K, V], 0, len(ops))
	for _, op := range ops {
		t := uc.apply(op)
		trace = append(trace, t)

		if uc.recorder != nil {
			uc.recorder.RecordTransition(op.Kind, t.Outcome.Hit, t.Outcome.WasUpdate, t.IsEviction(), t.State.Len())
		}

		log.Debug().
			Int("step", t.Step).
			Str("op", op.String()).
			Bool("hit", t.Outcome.Hit).
			Interface("added", t.Added).
			Interface("evicted", t.Evicted).
			Str("state", t.State.String()).
			Msg("transition")
	}

	log.Debug().
		Int("operations", len(ops)).
		Int("size", uc.engine.Size()).
		Int("capacity", uc.engine.Capacity()).
		Msg("trace generated")

	return trace
}

func (uc *GenerateTraceUseCase[K, V]) apply(op entity.Operation[K, V]) entity.Transition[K, V] {
	before := uc.engine.PeekState()

	// Unknown kinds leave the engine untouched and record a no-op step.
	var out entity.Outcome[K, V]
	switch op.Kind {
	case entity.OpPut:
		out = entity.PutResult[K, V](uc.engine.Put(op.Key, op.Value))
	case entity.OpGet:
		out = entity.GetResult[K, V](uc.engine.Get(op.Key))
	}

	after := uc.engine.PeekState()
	added, evicted := entity.DiffKeys(before, after)
	uc.step++

	return entity.Transition[K, V]{
		Step:        uc.step,
		Operation:   op,
		Outcome:     out,
		State:       after,
		Added:       added,
		Evicted:     evicted,
		TouchedKey:  op.Key,
		Description: entity.Describe(op, out, before, after, uc.engine.Capacity()),
	}
}

// Reset empties the engine and restarts step numbering.
func (uc *GenerateTraceUseCase[K, V]) Reset(ctx context.Context) {
	uc.engine.Reset()
	uc.step = 0
	logging.FromContext(ctx).Debug().Msg("trace generator reset")
}

// Engine exposes the engine being driven, for read-only inspection.
func (uc *GenerateTraceUseCase[K, V]) Engine() port.CacheEngine[K, V] {
	return uc.engine
}
