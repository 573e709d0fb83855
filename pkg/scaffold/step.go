package scaffold

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mkadlec/spinup/pkg/exec"
)

// Step is one named, independently invocable unit of the build sequence.
// The pipeline is an explicit ordered list of these descriptors so the
// sequence is inspectable and testable without invoking real external tools.
type Step struct {
	// Name identifies the step in errors and logs.
	Name string

	// Description is the human-facing progress line.
	Description string

	// Run performs the step. External commands go through rc.Executor.
	Run func(ctx context.Context, rc *RunContext) error
}

// RunContext carries everything a step needs: the immutable build
// parameters, the resolved config, the injected command executor, and the
// output sinks.
type RunContext struct {
	Params   BuildParams
	Config   *Config
	Executor exec.CommandExecutor

	// Dir is the generated project root, the working directory for every
	// step except skeleton generation (which runs in the invocation root).
	Dir string

	// Out receives progress lines and streamed child output.
	Out io.Writer

	Log logrus.FieldLogger
}

// StepError reports which named step failed. The wrapped error carries the
// failing command's output when the failure came from an external tool.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner executes an ordered list of steps, stopping on the first failure.
// Completed steps are not rolled back; partial results are left in place.
type Runner struct {
	Steps []Step
}

// NewRunner returns a runner over the given step sequence.
func NewRunner(steps []Step) *Runner {
	return &Runner{Steps: steps}
}

// Run executes the steps in order. Every external command is attempted
// exactly once; the first failure halts the run and no later step executes.
func (r *Runner) Run(ctx context.Context, rc *RunContext) error {
	runID := uuid.New().String()[:8]
	log := rc.Log.WithField("run_id", runID)

	for i, step := range r.Steps {
		start := time.Now()
		fmt.Fprintf(rc.Out, "%s [%d/%d] %s\n",
			color.GreenString("▶"), i+1, len(r.Steps), step.Description)
		log.WithField("step", step.Name).Debug("starting step")

		if err := step.Run(ctx, rc); err != nil {
			log.WithFields(logrus.Fields{
				"step":        step.Name,
				"duration_ms": time.Since(start).Milliseconds(),
			}).WithError(err).Error("step failed")
			fmt.Fprintf(rc.Out, "%s step %s failed\n", color.RedString("✗"), step.Name)
			return &StepError{Step: step.Name, Err: err}
		}

		log.WithFields(logrus.Fields{
			"step":        step.Name,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("step completed")
		fmt.Fprintf(rc.Out, "  %s %s in %.2f s\n",
			color.GreenString("OK"), step.Name, time.Since(start).Seconds())
	}
	return nil
}
