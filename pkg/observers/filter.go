package observers

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/systemstart/railway/pkg/step"
)

type filter struct {
	pattern string
	next    step.Observer
}

// Filter forwards to next only the events of steps whose name matches the
// doublestar pattern. Step names are matched like slash-separated paths, so
// "users/**" matches "users/create" and "users/roles/assign".
func Filter(pattern string, next step.Observer) (step.Observer, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid step name pattern %q", pattern)
	}
	return &filter{pattern: pattern, next: next}, nil
}

func (f *filter) match(name string) bool {
	// The pattern was validated, so Match cannot fail.
	ok, _ := doublestar.Match(f.pattern, name)
	return ok
}

func (f *filter) StepCalled(name string, input any, args ...any) {
	if f.match(name) {
		f.next.StepCalled(name, input, args...)
	}
}

func (f *filter) StepSucceeded(name string, value any) {
	if f.match(name) {
		f.next.StepSucceeded(name, value)
	}
}

func (f *filter) StepFailed(name string, input, value any) {
	if f.match(name) {
		f.next.StepFailed(name, input, value)
	}
}
