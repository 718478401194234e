package api

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var validOperations = map[string]bool{
	OperationRender:  true,
	OperationRequire: true,
	OperationMatch:   true,
}

// Validate checks the run file for errors. Operation arity is checked when
// steps are built.
func (rf *RunFile) Validate() error {
	if len(rf.Steps) == 0 {
		return fmt.Errorf("run file has no steps")
	}

	names := make(map[string]int)

	for i, step := range rf.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i)
		}
		if prev, exists := names[step.Name]; exists {
			return fmt.Errorf("step %d: duplicate step name %q (first defined at step %d)", i, step.Name, prev)
		}
		names[step.Name] = i

		if !validOperations[step.Operation] {
			return fmt.Errorf("step %q: unknown operation %q (valid: %s)", step.Name, step.Operation, strings.Join(OperationNames(), ", "))
		}
	}

	if rf.Only != "" && !doublestar.ValidatePattern(rf.Only) {
		return fmt.Errorf("only: invalid pattern %q", rf.Only)
	}

	return nil
}

// OperationNames returns the known operation names, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(validOperations))
	for k := range validOperations {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
