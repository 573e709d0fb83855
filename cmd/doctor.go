package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkadlec/spinup/pkg/exec"
	"github.com/mkadlec/spinup/pkg/scaffold"
)

// NewDoctorCmd returns a preflight command checking that the external tools
// the pipeline shells out to are installed.
func NewDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the required external tools are installed",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	executor := exec.NewRealExecutor(nil)
	tools := []string{"npx", cfg.PackageManager, "git"}

	missing := 0
	for _, tool := range tools {
		path, err := executor.LookPath(tool)
		if err != nil {
			fmt.Printf("%s %-6s not found in PATH\n", color.RedString("✗"), tool)
			missing++
			continue
		}
		fmt.Printf("%s %-6s %s\n", color.GreenString("✓"), tool, path)
	}

	if missing > 0 {
		return fmt.Errorf("%d required tool(s) missing", missing)
	}
	return nil
}
