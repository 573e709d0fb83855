package exec

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
)

// ExecError wraps an execution error with the command's combined output.
type ExecError struct {
	Err    error
	Output string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Output)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// RealCommandExecutor implements CommandExecutor using the actual os/exec
// package. This is the production implementation that executes real system
// commands. Child output is streamed to Out as it is produced.
type RealCommandExecutor struct {
	// Out receives the child process's stdout and stderr. If nil, output
	// is only captured for error reporting.
	Out io.Writer
}

// NewRealExecutor returns an executor that streams child output to out.
func NewRealExecutor(out io.Writer) *RealCommandExecutor {
	return &RealCommandExecutor{Out: out}
}

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable.
func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Execute runs the command with the given name and arguments in dir.
// It waits for the command to complete and returns any error.
func (e *RealCommandExecutor) Execute(dir string, name string, arg ...string) error {
	cmd := exec.Command(name, arg...)
	cmd.Dir = dir

	// Capture output for error messages while streaming it to Out.
	var captured bytes.Buffer
	sink := io.Writer(&captured)
	if e.Out != nil {
		sink = io.MultiWriter(e.Out, &captured)
	}
	cmd.Stdout = sink
	cmd.Stderr = sink

	if err := cmd.Run(); err != nil {
		return &ExecError{
			Err:    err,
			Output: captured.String(),
		}
	}
	return nil
}
