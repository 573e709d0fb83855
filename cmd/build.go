package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var (
	buildParentDir      string
	buildPackageManager string
	buildTemplate       string
	buildSkipFormat     bool
)

// NewBuildCmd returns the composite command running the full step sequence.
func NewBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build NAME",
		Short: "Run the full scaffold pipeline",
		Long: `Run the full scaffold pipeline: generate the skeleton, install the
dependency groups, configure formatting, copy the boilerplate files, then
move the project under the parent directory and create the initial commit.

The run halts on the first failing step. Completed steps are not rolled
back; partial results are left in place.

Examples:
  # Scaffold ./demo and move it under /tmp
  spinup build demo --parent-dir /tmp

  # npm instead of yarn, no formatting setup
  spinup build demo --package-manager npm --skip-format`,
		Args: cobra.ExactArgs(1),
		RunE: runBuild,
	}
	buildCmd.Flags().StringVarP(&buildParentDir, "parent-dir", "p", "", "Directory the finished project is moved under (default \".\")")
	buildCmd.Flags().StringVar(&buildPackageManager, "package-manager", "", "Package manager to install with: yarn or npm (default yarn)")
	buildCmd.Flags().StringVarP(&buildTemplate, "template", "t", "", "Skeleton variant: redux or plain (default redux)")
	buildCmd.Flags().BoolVar(&buildSkipFormat, "skip-format", false, "Skip the formatting configuration step")
	return buildCmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	params := resolveParams(cfg, args[0], buildParentDir, buildPackageManager, buildTemplate, buildSkipFormat)
	if err := params.Validate(); err != nil {
		return err
	}

	rc := newRunContext(cfg, params, params.Name)
	if err := scaffold.NewRunner(scaffold.BuildSteps(params)).Run(cmd.Context(), rc); err != nil {
		return err
	}

	fmt.Printf("%s Project %s is ready at %s\n",
		color.GreenString("✓"), params.Name, filepath.Join(params.ParentDir, params.Name))
	return nil
}
