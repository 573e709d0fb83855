package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkadlec/spinup/pkg/exec"
)

func recordingStep(name string, order *[]string, err error) Step {
	return Step{
		Name:        name,
		Description: "step " + name,
		Run: func(ctx context.Context, rc *RunContext) error {
			*order = append(*order, name)
			return err
		},
	}
}

func TestRunner_ExecutesStepsInOrder(t *testing.T) {
	var order []string
	runner := NewRunner([]Step{
		recordingStep("first", &order, nil),
		recordingStep("second", &order, nil),
		recordingStep("third", &order, nil),
	})

	rc := testRunContext(&exec.MockCommandExecutor{}, testParams("demo"), "demo")
	err := runner.Run(context.Background(), rc)

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestRunner_StopsOnFirstFailure(t *testing.T) {
	var order []string
	bootErr := fmt.Errorf("command exited 1")
	runner := NewRunner([]Step{
		recordingStep("first", &order, nil),
		recordingStep("second", &order, bootErr),
		recordingStep("third", &order, nil),
	})

	rc := testRunContext(&exec.MockCommandExecutor{}, testParams("demo"), "demo")
	err := runner.Run(context.Background(), rc)

	require.Error(t, err)
	assert.Equal(t, []string{"first", "second"}, order, "no step after the failing one may run")

	var stepErr *StepError
	require.True(t, errors.As(err, &stepErr), "runner must report a StepError")
	assert.Equal(t, "second", stepErr.Step)
	assert.ErrorIs(t, err, bootErr, "the underlying command failure must stay reachable")
}

func TestRunner_ProgressOutput(t *testing.T) {
	var order []string
	runner := NewRunner([]Step{recordingStep("only", &order, nil)})

	out := &bytes.Buffer{}
	rc := testRunContext(&exec.MockCommandExecutor{}, testParams("demo"), "demo")
	rc.Out = out

	require.NoError(t, runner.Run(context.Background(), rc))
	assert.Contains(t, out.String(), "[1/1] step only")
	assert.Contains(t, out.String(), "only in ")
}

func TestStepError_Message(t *testing.T) {
	err := &StepError{
		Step: "install-state",
		Err:  &exec.ExecError{Err: fmt.Errorf("exit status 1"), Output: "registry unreachable"},
	}
	assert.Contains(t, err.Error(), "install-state")
	assert.Contains(t, err.Error(), "registry unreachable")
}
