package processing

import (
	"fmt"
	"log/slog"

	"github.com/systemstart/railway/pkg/step"
)

// Report counts the outcomes of one step over a set of inputs.
type Report struct {
	Step      string
	Succeeded int
	Failed    int
}

// RunStep calls s once per input. Inputs are independent: a failure does not
// stop the remaining calls.
func RunStep(s *step.Step, inputs []any) Report {
	report := Report{Step: s.Name()}
	for _, in := range inputs {
		if r := s.Call(in); r.IsFailure() {
			report.Failed++
		} else {
			report.Succeeded++
		}
	}
	return report
}

// RunAll runs every step over all inputs and returns the reports in step
// order. The error lists the steps that failed for at least one input.
func RunAll(steps []*step.Step, inputs []any) ([]Report, error) {
	reports := make([]Report, 0, len(steps))

	var failed []string
	for _, s := range steps {
		slog.Info("running step", "step", s.Name(), "operation", s.OperationName(), "inputs", len(inputs))
		report := RunStep(s, inputs)
		reports = append(reports, report)

		if report.Failed > 0 {
			slog.Error("step failed", "step", s.Name(), "failed", report.Failed, "succeeded", report.Succeeded)
			failed = append(failed, s.Name())
		} else {
			slog.Info("step succeeded", "step", s.Name(), "succeeded", report.Succeeded)
		}
	}

	if len(failed) > 0 {
		return reports, fmt.Errorf("%d step(s) failed: %v", len(failed), failed)
	}

	return reports, nil
}
