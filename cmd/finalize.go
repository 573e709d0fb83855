package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var finalizeParentDir string

// NewFinalizeCmd returns the finalize-repository step as a standalone
// command.
func NewFinalizeCmd() *cobra.Command {
	finalizeCmd := &cobra.Command{
		Use:   "finalize NAME",
		Short: "Move the project and create the initial commit",
		Long: `Move the project directory NAME under the parent directory, initialize a
repository there, stage all files and create the first commit. Fails if the
parent directory already contains a directory named NAME.`,
		Args: cobra.ExactArgs(1),
		RunE: runFinalize,
	}
	finalizeCmd.Flags().StringVarP(&finalizeParentDir, "parent-dir", "p", "", "Directory the finished project is moved under (default \".\")")
	return finalizeCmd
}

func runFinalize(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	params := resolveParams(cfg, args[0], finalizeParentDir, "", "", false)
	if err := params.Validate(); err != nil {
		return err
	}

	rc := newRunContext(cfg, params, params.Name)
	return runSteps(cmd, rc, scaffold.FinalizeStep())
}
