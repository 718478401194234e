package observers

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	EventCalled    = "called"
	EventSucceeded = "succeeded"
	EventFailed    = "failed"
)

// Event is one recorded step notification.
type Event struct {
	Kind  string `yaml:"kind"`
	Step  string `yaml:"step"`
	Input any    `yaml:"input,omitempty"`
	Args  []any  `yaml:"args,omitempty"`
	Value any    `yaml:"value,omitempty"`
}

// Recorder keeps every notification it receives, in arrival order.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) StepCalled(name string, input any, args ...any) {
	r.record(Event{Kind: EventCalled, Step: name, Input: input, Args: slices.Clone(args)})
}

func (r *Recorder) StepSucceeded(name string, value any) {
	r.record(Event{Kind: EventSucceeded, Step: name, Value: value})
}

func (r *Recorder) StepFailed(name string, input, value any) {
	r.record(Event{Kind: EventFailed, Step: name, Input: input, Value: value})
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

// WriteYAML writes the recorded events to w as a YAML sequence. Error values
// are written as their message.
func (r *Recorder) WriteYAML(w io.Writer) error {
	events := r.Events()
	for i := range events {
		if err, ok := events[i].Value.(error); ok {
			events[i].Value = err.Error()
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(events); err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}
	return nil
}
