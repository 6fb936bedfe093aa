package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/config"
)

var flagRawConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config Starfall would run with, as YAML.

The config is looked up in this order: --config, ~/.starfall/configs/starfall.yaml,
./configs/starfall.yaml, then the built-in defaults. The difficulty preset is
applied on top. Save the output and pass it back with --config to tweak it.

Examples:
  starfall config
  starfall config --difficulty hard
  starfall config --defaults > my-starfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagRawConfig, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagRawConfig {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	config.ApplyStarfallPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
