package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var (
	installDir            string
	installPackageManager string
)

// NewInstallCmd returns the package-installation steps as standalone
// commands, one subcommand per dependency group.
func NewInstallCmd() *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install",
		Short: "Install a dependency group into an existing project",
	}
	installCmd.PersistentFlags().StringVarP(&installDir, "dir", "d", ".", "Project directory")
	installCmd.PersistentFlags().StringVar(&installPackageManager, "package-manager", "", "Package manager to install with: yarn or npm (default yarn)")

	installCmd.AddCommand(
		&cobra.Command{
			Use:   "state",
			Short: "Install the state-management packages",
			RunE:  runInstallStep(scaffold.InstallStateStep),
		},
		&cobra.Command{
			Use:   "routing",
			Short: "Install the routing package",
			RunE:  runInstallStep(scaffold.InstallRoutingStep),
		},
		&cobra.Command{
			Use:   "styling",
			Short: "Install the UI-styling package groups",
			RunE:  runInstallStep(scaffold.InstallStylingStep),
		},
	)
	return installCmd
}

func runInstallStep(step func() scaffold.Step) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := scaffold.LoadConfig()
		if err != nil {
			return err
		}
		name, err := projectNameFromDir(installDir)
		if err != nil {
			return err
		}

		params := resolveParams(cfg, name, "", installPackageManager, "", false)
		if err := scaffold.ValidatePackageManager(params.PackageManager); err != nil {
			return err
		}

		rc := newRunContext(cfg, params, installDir)
		return runSteps(cmd, rc, step())
	}
}
