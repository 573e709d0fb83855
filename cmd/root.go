package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	logger = logrus.New()
)

// NewRootCmd builds the spinup command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spinup",
		Short: "Generate a React+Redux application skeleton",
		Long: `spinup sequences the tools that turn a project name into a ready-to-commit
React application: create-react-app, the package installer, and git. It
installs the state-management, routing and UI-styling dependency groups,
stamps a fixed set of boilerplate files over the generator's defaults, and
finishes with a repository containing the initial commit.

Each step of the pipeline is also independently invocable; see 'spinup steps'
for the full sequence.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetOutput(os.Stderr)
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			} else {
				logger.SetLevel(logrus.WarnLevel)
			}
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		NewBuildCmd(),
		NewCreateCmd(),
		NewInstallCmd(),
		NewFormatCmd(),
		NewCopyCmd(),
		NewFinalizeCmd(),
		NewStepsCmd(),
		NewDoctorCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}
