package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way 'play' does, validate it, and
print the result as YAML. Redirect the output to ~/.hopper/configs/hopper.yaml
to start customizing.

Examples:
  hopper config
  hopper config --config ./my-hopper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
