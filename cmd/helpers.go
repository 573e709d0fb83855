package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/exec"
	"github.com/mkadlec/spinup/pkg/scaffold"
)

// resolveParams merges flag values over config values over built-in
// defaults. Empty flag values mean "not set".
func resolveParams(cfg *scaffold.Config, name, parentDir, packageManager, template string, skipFormat bool) scaffold.BuildParams {
	p := scaffold.BuildParams{
		Name:           name,
		ParentDir:      cfg.ParentDir,
		PackageManager: cfg.PackageManager,
		Template:       cfg.Template,
		SkipFormat:     cfg.SkipFormat,
	}
	if parentDir != "" {
		p.ParentDir = parentDir
	}
	if packageManager != "" {
		p.PackageManager = packageManager
	}
	if template != "" {
		p.Template = template
	}
	if skipFormat {
		p.SkipFormat = true
	}
	return p
}

// newRunContext wires the production executor and output sinks for a run.
func newRunContext(cfg *scaffold.Config, p scaffold.BuildParams, dir string) *scaffold.RunContext {
	return &scaffold.RunContext{
		Params:   p,
		Config:   cfg,
		Executor: exec.NewRealExecutor(os.Stdout),
		Dir:      dir,
		Out:      os.Stdout,
		Log:      logger,
	}
}

// runSteps executes steps against rc through a fresh runner.
func runSteps(cmd *cobra.Command, rc *scaffold.RunContext, steps ...scaffold.Step) error {
	return scaffold.NewRunner(steps).Run(cmd.Context(), rc)
}

// projectNameFromDir derives the project name for standalone step commands
// that operate on an existing project directory.
func projectNameFromDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	return filepath.Base(abs), nil
}
