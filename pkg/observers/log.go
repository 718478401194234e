// Package observers provides step.Observer implementations.
package observers

import (
	"log/slog"

	"github.com/systemstart/railway/pkg/step"
)

type logObserver struct {
	logger *slog.Logger
}

// Log returns an observer writing step events to logger, or to the default
// logger when logger is nil. Calls are logged at debug level, successes at
// info and failures at warn.
func Log(logger *slog.Logger) step.Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) StepCalled(name string, input any, args ...any) {
	o.logger.Debug("step called", "step", name, "input", input, "args", args)
}

func (o *logObserver) StepSucceeded(name string, value any) {
	o.logger.Info("step succeeded", "step", name, "value", value)
}

func (o *logObserver) StepFailed(name string, input, value any) {
	o.logger.Warn("step failed", "step", name, "input", input, "error", value)
}
