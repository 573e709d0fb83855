package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var createTemplate string

// NewCreateCmd returns the generate-skeleton step as a standalone command.
func NewCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Generate the base project skeleton",
		Long: `Generate the base project skeleton via create-react-app, without running
any later pipeline step. Fails if a directory named NAME already exists.`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Skeleton variant: redux or plain (default redux)")
	return createCmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	params := resolveParams(cfg, args[0], "", "", createTemplate, false)
	if err := params.Validate(); err != nil {
		return err
	}

	rc := newRunContext(cfg, params, params.Name)
	return runSteps(cmd, rc, scaffold.CreateAppStep())
}
