package entity

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// OpKind identifies the cache call an operation performs.
type OpKind string

const (
	OpGet OpKind = "get"
	OpPut OpKind = "put"
)

// Operation is one step of a simulation input.
type Operation[K comparable, V any] struct {
	Kind  OpKind
	Key   K
	Value V // only meaningful for OpPut
}

// GetOp builds a Get(key) operation.
func GetOp[K comparable, V any](key K) Operation[K, V] {
	return Operation[K, V]{Kind: OpGet, Key: key}
}

// PutOp builds a Put(key, value) operation.
func PutOp[K comparable, V any](key K, value V) Operation[K, V] {
	return Operation[K, V]{Kind: OpPut, Key: key, Value: value}
}

// String renders the operation in a form ParseOperation reads back.
// Empty values and values holding whitespace are quoted.
func (o Operation[K, V]) String() string {
	switch o.Kind {
	case OpPut:
		return fmt.Sprintf("put %v %s", o.Key, quoteValue(fmt.Sprint(o.Value)))
	case OpGet:
		return fmt.Sprintf("get %v", o.Key)
	default:
		return fmt.Sprintf("%s %v", o.Kind, o.Key)
	}
}

func quoteValue(v string) string {
	if v == "" || strings.HasPrefix(v, `"`) || strings.IndexFunc(v, unicode.IsSpace) >= 0 {
		return strconv.Quote(v)
	}
	return v
}

// PutOutcome is what the engine reports for a Put.
type PutOutcome[K comparable] struct {
	WasUpdate   bool
	Evicted     K
	HasEviction bool
}

// GetOutcome is what the engine reports for a Get. Value is the zero value on a miss.
type GetOutcome[V any] struct {
	Hit   bool
	Value V
}

// ParseOperation parses a single textual operation. Accepted forms:
//
//	get A
//	put A 0
//	put A=0
//	put A "quoted value"
//	A(0)      shorthand for put, as the demo labels its blocks
func ParseOperation(s string) (Operation[string, string], error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Operation[string, string]{}, fmt.Errorf("%w: empty operation", ErrInvalidOperation)
	}

	if op, ok := parseShorthand(raw); ok {
		return op, nil
	}

	fields := strings.Fields(raw)
	verb := OpKind(strings.ToLower(fields[0]))
	args := fields[1:]

	switch verb {
	case OpGet:
		if len(args) != 1 {
			return Operation[string, string]{}, fmt.Errorf("%w: %q: get takes exactly one key", ErrInvalidOperation, raw)
		}
		return GetOp[string, string](args[0]), nil
	case OpPut:
		if len(args) >= 2 && strings.HasPrefix(args[1], `"`) {
			rest := strings.TrimSpace(raw[len(fields[0]):])
			value, err := strconv.Unquote(strings.TrimSpace(rest[len(args[0]):]))
			if err != nil {
				return Operation[string, string]{}, fmt.Errorf("%w: %q: put value is not a valid quoted string", ErrInvalidOperation, raw)
			}
			return PutOp(args[0], value), nil
		}
		if len(args) == 1 {
			if key, value, found := strings.Cut(args[0], "="); found && key != "" {
				return PutOp(key, value), nil
			}
		}
		if len(args) != 2 {
			return Operation[string, string]{}, fmt.Errorf("%w: %q: put takes a key and a value", ErrInvalidOperation, raw)
		}
		return PutOp(args[0], args[1]), nil
	default:
		return Operation[string, string]{}, fmt.Errorf("%w: %q: unknown verb %q", ErrInvalidOperation, raw, fields[0])
	}
}

func parseShorthand(raw string) (Operation[string, string], bool) {
	open := strings.IndexByte(raw, '(')
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return Operation[string, string]{}, false
	}
	key := strings.TrimSpace(raw[:open])
	value := strings.TrimSpace(raw[open+1 : len(raw)-1])
	if key == "" || strings.ContainsAny(key, " \t") {
		return Operation[string, string]{}, false
	}
	return PutOp(key, value), true
}

// ParseOperations parses a list separated by commas or semicolons.
// Blank items are skipped so trailing separators are harmless.
func ParseOperations(s string) ([]Operation[string, string], error) {
	items := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	ops := make([]Operation[string, string], 0, len(items))
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		op, err := ParseOperation(item)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
