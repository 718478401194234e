package step

import (
	"slices"
	"sync"
)

// Observer receives the lifecycle events of a step.
type Observer interface {
	// StepCalled is published before the adapter runs. args holds the stored
	// call arguments followed by the extra arguments of the call; each
	// observer receives its own copy.
	StepCalled(name string, input any, args ...any)
	StepSucceeded(name string, value any)
	StepFailed(name string, input, value any)
}

// subscribers is shared between a step and every step derived from it with With.
type subscribers struct {
	mu        sync.RWMutex
	observers []Observer
}

func (s *subscribers) add(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *subscribers) snapshot() []Observer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.observers)
}

// Subscribe registers o. Observers are notified in registration order and
// stay attached for the lifetime of the step and of steps derived from it.
func (s *Step) Subscribe(o Observer) {
	s.subscribers.add(o)
}
