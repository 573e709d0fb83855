package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mkadlec/spinup/pkg/scaffold"
)

// NewConfigCmd returns commands for inspecting the effective configuration.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the spinup configuration",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the JSON schema of the config file",
			RunE:  runConfigSchema,
		},
	)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	data, err := scaffold.ConfigSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
