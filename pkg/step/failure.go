package step

import "fmt"

// Failure is the failure payload of a step, tagged with the step that produced it.
type Failure struct {
	Value    any
	StepName string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("step %q failed: %v", f.StepName, f.Value)
}

// Unwrap exposes the payload when it is an error itself.
func (f *Failure) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}
