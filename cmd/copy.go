package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var (
	copyDir      string
	copyTemplate string
)

// NewCopyCmd returns the copy-templates step as a standalone command.
func NewCopyCmd() *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the boilerplate files into an existing project",
		Long: `Copy the boilerplate files into the project's source tree, creating
missing destination directories and overwriting existing files
unconditionally. Running it twice is idempotent.`,
		RunE: runCopy,
	}
	copyCmd.Flags().StringVarP(&copyDir, "dir", "d", ".", "Project directory")
	copyCmd.Flags().StringVarP(&copyTemplate, "template", "t", "", "Skeleton variant: redux or plain (default redux)")
	return copyCmd
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}
	name, err := projectNameFromDir(copyDir)
	if err != nil {
		return err
	}

	params := resolveParams(cfg, name, "", "", copyTemplate, false)
	if err := scaffold.ValidateTemplate(params.Template); err != nil {
		return err
	}

	rc := newRunContext(cfg, params, copyDir)
	return runSteps(cmd, rc, scaffold.CopyTemplatesStep())
}
