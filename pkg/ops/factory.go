package ops

import (
	"fmt"

	"github.com/systemstart/railway/pkg/adapter"
	"github.com/systemstart/railway/pkg/api"
	"github.com/systemstart/railway/pkg/step"
)

// NewStep creates a step from a StepConfig. The configured args become the
// step's call arguments and must fill the operation's remaining parameters.
func NewStep(cfg api.StepConfig) (*step.Step, error) {
	var op any
	switch cfg.Operation {
	case api.OperationRender:
		op = Render
	case api.OperationRequire:
		op = Require
	case api.OperationMatch:
		op = Match
	default:
		return nil, fmt.Errorf("unknown operation: %s", cfg.Operation)
	}

	s := step.New(adapter.Raw, cfg.Name, cfg.Operation, op, cfg.Args...)

	arity, err := s.Arity()
	if err != nil {
		return nil, err
	}
	if want := 1 + len(cfg.Args); arity != want {
		return nil, fmt.Errorf("step %q: operation %s takes %d arguments, configured with input and %d args", cfg.Name, cfg.Operation, arity, len(cfg.Args))
	}

	return s, nil
}
