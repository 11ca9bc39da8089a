package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thornfall/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The output reflects --config and --difficulty, so it can be saved to
~/.thornfall/configs/thornfall.yaml and edited.

Examples:
  thornfall config
  thornfall config --difficulty hard > ~/.thornfall/configs/thornfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addGameFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
