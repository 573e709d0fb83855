package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var formatDir string

// NewFormatCmd returns the configure-formatting step as a standalone command.
func NewFormatCmd() *cobra.Command {
	formatCmd := &cobra.Command{
		Use:   "format",
		Short: "Merge the formatting config into the package manifest",
		Long: `Merge the prettier/lint-staged fragment into the project's package.json
(fragment values win on key conflict) and register the pre-commit hook.`,
		RunE: runFormat,
	}
	formatCmd.Flags().StringVarP(&formatDir, "dir", "d", ".", "Project directory")
	return formatCmd
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}
	name, err := projectNameFromDir(formatDir)
	if err != nil {
		return err
	}

	params := resolveParams(cfg, name, "", "", "", false)
	rc := newRunContext(cfg, params, formatDir)
	return runSteps(cmd, rc, scaffold.ConfigureFormattingStep())
}
