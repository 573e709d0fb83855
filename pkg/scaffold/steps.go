package scaffold

import (
	"context"
	"fmt"

	"github.com/mkadlec/spinup/pkg/templates"
)

// BuildSteps returns the fixed pipeline for the given parameters, in
// dependency order. The formatting step is dropped when SkipFormat is set.
func BuildSteps(p BuildParams) []Step {
	steps := []Step{
		CreateAppStep(),
		InstallStateStep(),
		InstallRoutingStep(),
		InstallStylingStep(),
	}
	if !p.SkipFormat {
		steps = append(steps, ConfigureFormattingStep())
	}
	return append(steps, CopyTemplatesStep(), FinalizeStep())
}

// CreateAppStep generates the base project skeleton via the external
// generator. It runs in the invocation root, not the project directory, and
// it is the generator that fails on a name collision with an existing
// directory.
func CreateAppStep() Step {
	return Step{
		Name:        "create-app",
		Description: "Generating project skeleton",
		Run: func(ctx context.Context, rc *RunContext) error {
			args := []string{"create-react-app", rc.Params.Name}
			if rc.Params.Template == TemplateRedux {
				args = append(args, "--template", "redux")
			}
			return rc.Executor.Execute(".", "npx", args...)
		},
	}
}

// InstallStateStep installs the state-management package group.
func InstallStateStep() Step {
	return installStep("install-state", "Installing state management packages",
		func(rc *RunContext) [][]string {
			return [][]string{rc.Config.Packages.State}
		})
}

// InstallRoutingStep installs the routing package group.
func InstallRoutingStep() Step {
	return installStep("install-routing", "Installing routing package",
		func(rc *RunContext) [][]string {
			return [][]string{rc.Config.Packages.Routing}
		})
}

// InstallStylingStep installs the UI-styling package groups, one installer
// invocation per group.
func InstallStylingStep() Step {
	return installStep("install-styling", "Installing UI styling packages",
		func(rc *RunContext) [][]string {
			return rc.Config.Packages.Styling
		})
}

func installStep(name, description string, groups func(rc *RunContext) [][]string) Step {
	return Step{
		Name:        name,
		Description: description,
		Run: func(ctx context.Context, rc *RunContext) error {
			for _, group := range groups(rc) {
				if len(group) == 0 {
					continue
				}
				bin, args := installCommand(rc.Params.PackageManager, group)
				if err := rc.Executor.Execute(rc.Dir, bin, args...); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// installCommand renders one installer invocation for a package group.
func installCommand(packageManager string, packages []string) (string, []string) {
	if packageManager == PackageManagerNpm {
		return "npm", append([]string{"install"}, packages...)
	}
	return "yarn", append([]string{"add"}, packages...)
}

// ConfigureFormattingStep merges the formatting fragment into the package
// manifest and registers the pre-commit hook.
func ConfigureFormattingStep() Step {
	return Step{
		Name:        "configure-formatting",
		Description: "Configuring formatting and pre-commit hook",
		Run: func(ctx context.Context, rc *RunContext) error {
			return ConfigureFormatting(rc.Dir)
		},
	}
}

// CopyTemplatesStep stamps the boilerplate files over the generator's
// defaults. Running it twice is idempotent.
func CopyTemplatesStep() Step {
	return Step{
		Name:        "copy-templates",
		Description: "Copying boilerplate files",
		Run: func(ctx context.Context, rc *RunContext) error {
			return StampTemplates(rc.Dir, rc.Params.Template)
		},
	}
}

// StampTemplates writes the variant's boilerplate files into the project
// tree, creating missing destination directories and overwriting
// unconditionally.
func StampTemplates(dir, template string) error {
	for _, f := range templates.Files(template == TemplateRedux) {
		if err := OverwriteFile(projectPath(dir, f.Dest), f.Content(), 0644); err != nil {
			return fmt.Errorf("stamping %s: %w", f.Dest, err)
		}
	}
	return nil
}

// FinalizeStep moves the project under the parent directory and creates the
// initial commit.
func FinalizeStep() Step {
	return Step{
		Name:        "finalize",
		Description: "Moving project and creating initial commit",
		Run: func(ctx context.Context, rc *RunContext) error {
			return Finalize(rc)
		},
	}
}
