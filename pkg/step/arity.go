package step

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotCallable is returned by Arity when the operation is neither a func nor
// a value with a Call method.
var ErrNotCallable = errors.New("operation is not callable")

// CallMethod is the method name looked up on operations that are not funcs.
const CallMethod = "Call"

// Arity returns the number of parameters the operation declares. For variadic
// operations it returns -(n+1), n being the number of required parameters.
// Stored call arguments do not count.
func (s *Step) Arity() (int, error) {
	fn, err := Callable(s.operation)
	if err != nil {
		return 0, fmt.Errorf("step %q: %w", s.name, err)
	}
	return arity(fn.Type()), nil
}

// Callable resolves op to a func value: op itself when it is a func, otherwise
// its Call method.
func Callable(op any) (reflect.Value, error) {
	if op == nil {
		return reflect.Value{}, ErrNotCallable
	}

	v := reflect.ValueOf(op)
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return reflect.Value{}, ErrNotCallable
		}
		return v, nil
	}

	m := v.MethodByName(CallMethod)
	if !m.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %T has no %s method", ErrNotCallable, op, CallMethod)
	}
	return m, nil
}

func arity(t reflect.Type) int {
	if t.IsVariadic() {
		return -t.NumIn()
	}
	return t.NumIn()
}
