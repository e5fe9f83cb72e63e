package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in breakout config as YAML.

Save it to ~/.arcade/configs/breakout.yaml (picked up automatically) or
pass any copy with --config. Missing keys keep their default values.

Examples:
  arcade config > ~/.arcade/configs/breakout.yaml
  arcade play --config ./breakout.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.GetDefaultYAML("breakout")) //nolint:errcheck
	},
}
