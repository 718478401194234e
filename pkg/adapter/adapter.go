// Package adapter provides step.Adapter implementations for plain Go operations.
package adapter

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/systemstart/railway/pkg/result"
	"github.com/systemstart/railway/pkg/step"
)

// ErrBadSignature is the failure payload reported by Raw when the operation
// cannot be called with the given arguments.
var ErrBadSignature = errors.New("operation signature does not match arguments")

// Operation is the shape Invoke calls directly.
type Operation func(input any, args ...any) result.Result[any, any]

// Caller is the call-style object shape Invoke calls directly.
type Caller interface {
	Call(input any, args ...any) result.Result[any, any]
}

var (
	errorType  = reflect.TypeFor[error]()
	resultType = reflect.TypeFor[result.Result[any, any]]()
)

// Invoke calls an operation that already reports a result.Result: an
// Operation, a func with the same signature, or a Caller. Any other operation
// panics.
func Invoke(s *step.Step, input any, args ...any) result.Result[any, any] {
	switch op := s.Operation().(type) {
	case Operation:
		return op(input, args...)
	case func(any, ...any) result.Result[any, any]:
		return op(input, args...)
	case Caller:
		return op.Call(input, args...)
	default:
		panic(fmt.Sprintf("step %q: operation %T cannot be invoked directly", s.Name(), op))
	}
}

// Raw calls any func or Call-method operation through reflection and maps its
// return values onto a result:
//
//   - no return values: success with nil
//   - a trailing error: failure with that error when it is non-nil
//   - a single result.Result[any, any]: returned as is
//   - otherwise: success with the first return value
//
// Arguments are converted to the parameter types when no information is lost:
// numbers only when the value fits the target exactly, no string conversions
// between kinds and no slice to array conversions. A mismatch in count or type
// is reported as a failure wrapping ErrBadSignature. Panics inside the
// operation propagate.
func Raw(s *step.Step, input any, args ...any) result.Result[any, any] {
	fn, err := step.Callable(s.Operation())
	if err != nil {
		return result.Failure[any, any](fmt.Errorf("step %q: %w", s.Name(), err))
	}

	in, err := buildArgs(fn.Type(), append([]any{input}, args...))
	if err != nil {
		return result.Failure[any, any](fmt.Errorf("step %q: %w", s.Name(), err))
	}

	return fromReturn(fn.Call(in))
}

func buildArgs(t reflect.Type, values []any) ([]reflect.Value, error) {
	n := t.NumIn()
	if t.IsVariadic() {
		if len(values) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrBadSignature, n-1, len(values))
		}
	} else if len(values) != n {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrBadSignature, n, len(values))
	}

	in := make([]reflect.Value, len(values))
	for i, v := range values {
		pt := paramType(t, i)
		rv, err := convert(v, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = rv
	}
	return in, nil
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func fromReturn(out []reflect.Value) result.Result[any, any] {
	if len(out) == 0 {
		return result.Success[any, any](nil)
	}

	last := out[len(out)-1]
	if last.Type() == errorType {
		if !last.IsNil() {
			return result.Failure[any, any](last.Interface())
		}
		out = out[:len(out)-1]
		if len(out) == 0 {
			return result.Success[any, any](nil)
		}
	}

	first := out[0]
	if first.Type() == resultType {
		return first.Interface().(result.Result[any, any])
	}
	return result.Success[any, any](first.Interface())
}
