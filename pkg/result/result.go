// Package result holds the two-branch value exchanged between steps and the
// code that runs them.
package result

import "fmt"

// Result is either a success holding a T or a failure holding an E.
// The zero value is a success holding the zero T.
type Result[T, E any] struct {
	value  T
	err    E
	failed bool
}

// Success wraps v in the success branch.
func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Failure wraps e in the failure branch.
func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, failed: true}
}

func (r Result[T, E]) IsSuccess() bool { return !r.failed }

func (r Result[T, E]) IsFailure() bool { return r.failed }

// Value returns the success value, or the zero T for a failure.
func (r Result[T, E]) Value() T { return r.value }

// Failure returns the failure value, or the zero E for a success.
func (r Result[T, E]) Failure() E { return r.err }

// Unwrap returns whichever branch value is held.
func (r Result[T, E]) Unwrap() any {
	if r.failed {
		return r.err
	}
	return r.value
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}
