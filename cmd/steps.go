package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

var (
	stepNumberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stepNameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	stepDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// NewStepsCmd returns a command printing the fixed pipeline, in order.
func NewStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps",
		Short: "List the pipeline steps in execution order",
		RunE:  runStepsList,
	}
}

func runStepsList(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	// Listing reflects the effective config: skip_format drops a step.
	params := resolveParams(cfg, "example", "", "", "", false)
	for i, step := range scaffold.BuildSteps(params) {
		fmt.Printf("%s %s  %s\n",
			stepNumberStyle.Render(fmt.Sprintf("%d.", i+1)),
			stepNameStyle.Render(fmt.Sprintf("%-20s", step.Name)),
			stepDescStyle.Render(step.Description))
	}
	return nil
}
