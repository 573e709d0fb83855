package scaffold

import (
	"fmt"
	"regexp"
)

// Skeleton variants. The redux variant stamps the store setup and hooks
// modules in addition to the entry point and root component.
const (
	TemplateRedux = "redux"
	TemplatePlain = "plain"
)

// Supported package managers.
const (
	PackageManagerYarn = "yarn"
	PackageManagerNpm  = "npm"
)

// projectNameRegex accepts names that are safe as a directory name and as a
// package name for the skeleton generator.
var projectNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// BuildParams are the per-invocation inputs of a scaffold run. They are
// resolved once from flags and config and stay immutable for the run.
type BuildParams struct {
	// Name is the project and directory name. Required.
	Name string

	// ParentDir is the directory the finished project is moved under.
	ParentDir string

	// PackageManager is "yarn" or "npm".
	PackageManager string

	// Template selects the skeleton variant, "redux" or "plain".
	Template string

	// SkipFormat disables the formatting configuration step.
	SkipFormat bool
}

// Validate checks the parameters before any step runs. Collisions with
// existing directories are left to the skeleton generator, which fails
// rather than overwrite.
func (p BuildParams) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if !projectNameRegex.MatchString(p.Name) {
		return fmt.Errorf("invalid project name %q: must start with a lowercase letter or digit and contain only lowercase letters, digits, '.', '_' and '-'", p.Name)
	}
	if err := ValidatePackageManager(p.PackageManager); err != nil {
		return err
	}
	return ValidateTemplate(p.Template)
}

// ValidatePackageManager checks the package manager choice alone, for
// commands that operate on an existing project directory.
func ValidatePackageManager(packageManager string) error {
	switch packageManager {
	case PackageManagerYarn, PackageManagerNpm:
		return nil
	default:
		return fmt.Errorf("unsupported package manager %q (use %s or %s)", packageManager, PackageManagerYarn, PackageManagerNpm)
	}
}

// ValidateTemplate checks the skeleton variant choice.
func ValidateTemplate(template string) error {
	switch template {
	case TemplateRedux, TemplatePlain:
		return nil
	default:
		return fmt.Errorf("unknown template %q (use %s or %s)", template, TemplateRedux, TemplatePlain)
	}
}
