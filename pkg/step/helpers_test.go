package step

import (
	"fmt"
	"strings"

	"github.com/systemstart/railway/pkg/result"
)

type operation func(input any, args ...any) result.Result[any, any]

// callOperation invokes the step's operation directly with input and args.
func callOperation(s *Step, input any, args ...any) result.Result[any, any] {
	return s.Operation().(operation)(input, args...)
}

// listener records notifications as formatted strings in arrival order.
type listener struct {
	events []string
}

func (l *listener) StepCalled(name string, input any, args ...any) {
	l.events = append(l.events, fmt.Sprintf("called %s %v %v", name, input, args))
}

func (l *listener) StepSucceeded(name string, value any) {
	l.events = append(l.events, fmt.Sprintf("succeeded %s %v", name, value))
}

func (l *listener) StepFailed(name string, input, value any) {
	l.events = append(l.events, fmt.Sprintf("failed %s %v %v", name, input, value))
}

func (l *listener) count(prefix string) int {
	n := 0
	for _, e := range l.events {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}
