package step

import (
	"reflect"
	"slices"
)

// Override replaces one field of a step copy. See With.
type Override func(*Step)

// WithAdapter replaces the adapter.
func WithAdapter(a Adapter) Override {
	return func(s *Step) { s.adapter = a }
}

// WithName replaces the step name.
func WithName(name string) Override {
	return func(s *Step) { s.name = name }
}

// WithOperationName replaces the operation name.
func WithOperationName(name string) Override {
	return func(s *Step) { s.operationName = name }
}

// WithOperation replaces the operation.
func WithOperation(op any) Override {
	return func(s *Step) { s.operation = op }
}

// WithCallArgs replaces the stored call arguments with a copy of args.
func WithCallArgs(args ...any) Override {
	return func(s *Step) { s.callArgs = slices.Clone(args) }
}

// With returns a copy of s with the overrides applied. The copy shares the
// subscribers of s. Without overrides s itself is returned.
func (s *Step) With(overrides ...Override) *Step {
	if len(overrides) == 0 {
		return s
	}

	next := *s
	for _, o := range overrides {
		o(&next)
	}
	return &next
}

// Equal reports whether both steps hold the same adapter, names, operation and
// call arguments. Funcs are the same when they share their code pointer, so two
// closures created by one literal compare equal.
func (s *Step) Equal(other *Step) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	return s.name == other.name &&
		s.operationName == other.operationName &&
		sameValue(s.adapter, other.adapter) &&
		sameValue(s.operation, other.operation) &&
		slices.EqualFunc(s.callArgs, other.callArgs, sameValue)
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return reflect.DeepEqual(a, b)
}
