package entity

import "fmt"

// Outcome records what the engine reported for one operation.
// Hit is true when the touched key was resident before the operation,
// so a Put that updates counts as a hit and a Get miss does not.
type Outcome[K comparable, V any] struct {
	Hit         bool
	WasUpdate   bool
	Value       V // value returned by a Get hit
	Evicted     K
	HasEviction bool
}

// GetResult converts an engine Get outcome.
func GetResult[K comparable, V any](out GetOutcome[V]) Outcome[K, V] {
	return Outcome[K, V]{Hit: out.Hit, Value: out.Value}
}

// PutResult converts an engine Put outcome.
func PutResult[K comparable, V any](out PutOutcome[K]) Outcome[K, V] {
	return Outcome[K, V]{
		Hit:         out.WasUpdate,
		WasUpdate:   out.WasUpdate,
		Evicted:     out.Evicted,
		HasEviction: out.HasEviction,
	}
}

// Transition is the immutable record of one operation's effect on the cache.
type Transition[K comparable, V any] struct {
	Step        int
	Operation   Operation[K, V]
	Outcome     Outcome[K, V]
	State       CacheState[K, V] // snapshot after the operation, MRU first
	Added       KeySet[K]
	Evicted     KeySet[K]
	TouchedKey  K
	Description string
}

// IsNoOp reports a Get miss or an unknown operation: state untouched and
// nothing to animate.
func (t Transition[K, V]) IsNoOp() bool {
	switch t.Operation.Kind {
	case OpGet:
		return !t.Outcome.Hit
	case OpPut:
		return false
	default:
		return true
	}
}

// IsEviction reports whether the operation pushed an entry out.
func (t Transition[K, V]) IsEviction() bool {
	return !t.Evicted.Empty()
}

// IsNew reports whether key entered the cache on this step.
func (t Transition[K, V]) IsNew(key K) bool {
	return t.Added.Contains(key)
}

// Trace is the ordered sequence of transitions for one run.
type Trace[K comparable, V any] []Transition[K, V]

// TraceSummary aggregates outcome counts over a trace.
type TraceSummary struct {
	Operations int `json:"operations"`
	Hits       int `json:"hits"`
	Misses     int `json:"misses"`
	Inserts    int `json:"inserts"`
	Updates    int `json:"updates"`
	Evictions  int `json:"evictions"`
}

// HitRatio is hits over gets, zero when the trace has no gets.
func (s TraceSummary) HitRatio() float64 {
	gets := s.Hits + s.Misses
	if gets == 0 {
		return 0
	}
	return float64(s.Hits) / float64(gets)
}

// Summarize counts outcomes across the trace.
func (tr Trace[K, V]) Summarize() TraceSummary {
	s := TraceSummary{Operations: len(tr)}
	for _, t := range tr {
		switch t.Operation.Kind {
		case OpGet:
			if t.Outcome.Hit {
				s.Hits++
			} else {
				s.Misses++
			}
		case OpPut:
			if t.Outcome.WasUpdate {
				s.Updates++
			} else {
				s.Inserts++
			}
		}
		s.Evictions += t.Evicted.Len()
	}
	return s
}

// Final returns the state after the last transition, empty for an empty trace.
func (tr Trace[K, V]) Final() CacheState[K, V] {
	if len(tr) == 0 {
		return CacheState[K, V]{}
	}
	return tr[len(tr)-1].State
}

// Describe renders a one-line caption for a step. before is the snapshot
// taken right before the operation ran.
func Describe[K comparable, V any](
	op Operation[K, V],
	out Outcome[K, V],
	before, after CacheState[K, V],
	capacity int,
) string {
	entry := Entry[K, V]{Key: op.Key, Value: op.Value}

	switch op.Kind {
	case OpGet:
		if !out.Hit {
			return fmt.Sprintf("Miss: %v is not cached, nothing changed", op.Key)
		}
		return fmt.Sprintf("Hit: %v moved to most recent", Entry[K, V]{Key: op.Key, Value: out.Value})
	case OpPut:
		switch {
		case out.WasUpdate:
			return fmt.Sprintf("Updated %v and moved it to most recent", entry)
		case out.HasEviction:
			if victim, ok := before.Lookup(out.Evicted); ok {
				return fmt.Sprintf("Cache full: %v replaces oldest entry %v", entry, victim)
			}
			return fmt.Sprintf("Cache full: %v replaces oldest entry %v", entry, out.Evicted)
		case before.Len() == 0:
			return fmt.Sprintf("Added %v to empty cache", entry)
		case after.Len() == capacity:
			return fmt.Sprintf("Added %v to last available slot", entry)
		default:
			return fmt.Sprintf("Added %v to available slot", entry)
		}
	}
	return op.String()
}
