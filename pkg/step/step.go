// Package step provides the execution unit of a railway-oriented pipeline.
//
// A Step pairs a name, an operation, stored call arguments and an Adapter. Calling
// it runs the operation through the adapter and turns the outcome into a
// result.Result: the success value on the success branch, or a *Failure tagged
// with the step name on the failure branch. Observers registered with Subscribe
// are notified around every call.
//
// Panics raised by an adapter or operation are not recovered. Business failures
// must be reported through the adapter's failure branch.
package step

import (
	"slices"

	"github.com/systemstart/railway/pkg/result"
)

// Adapter invokes the operation of s with input and args and reports the raw
// outcome. It must return a success or a failure; a zero Result reads as a
// success holding nil.
type Adapter func(s *Step, input any, args ...any) result.Result[any, any]

// Step is immutable apart from its subscriber list.
type Step struct {
	adapter       Adapter
	name          string
	operationName string
	operation     any
	callArgs      []any
	subscribers   *subscribers
}

// New creates a step. The operation is not inspected until Call or Arity.
func New(adapter Adapter, name, operationName string, operation any, callArgs ...any) *Step {
	return &Step{
		adapter:       adapter,
		name:          name,
		operationName: operationName,
		operation:     operation,
		callArgs:      slices.Clone(callArgs),
		subscribers:   &subscribers{},
	}
}

// Name returns the name used in notifications and failures.
func (s *Step) Name() string { return s.name }

// OperationName returns the name of the wrapped operation.
func (s *Step) OperationName() string { return s.operationName }

// Operation returns the wrapped operation.
func (s *Step) Operation() any { return s.operation }

// Adapter returns the adapter that invokes the operation.
func (s *Step) Adapter() Adapter { return s.adapter }

// CallArgs returns a copy of the arguments appended to every call.
func (s *Step) CallArgs() []any { return slices.Clone(s.callArgs) }

// Call runs the operation with input followed by the stored call arguments and
// then extra. StepCalled is published before the adapter runs, and exactly one
// of StepSucceeded or StepFailed after it returns.
func (s *Step) Call(input any, extra ...any) result.Result[any, *Failure] {
	args := make([]any, 0, len(s.callArgs)+len(extra))
	args = append(args, s.callArgs...)
	args = append(args, extra...)

	observers := s.subscribers.snapshot()
	for _, o := range observers {
		o.StepCalled(s.name, input, slices.Clone(args)...)
	}

	outcome := s.adapter(s, input, args...)

	if outcome.IsFailure() {
		value := outcome.Failure()
		for _, o := range observers {
			o.StepFailed(s.name, input, value)
		}
		return result.Failure[any](&Failure{Value: value, StepName: s.name})
	}

	value := outcome.Value()
	for _, o := range observers {
		o.StepSucceeded(s.name, value)
	}
	return result.Success[any, *Failure](value)
}
