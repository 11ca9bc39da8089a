package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/thornfall/internal/config"
	"github.com/vovakirdan/thornfall/internal/core"
	"github.com/vovakirdan/thornfall/internal/games/thornfall"
	"github.com/vovakirdan/thornfall/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Thornfall in the current terminal.

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Up/W            - Fire a thorn
  Enter/Space or click  - Start
  P/Esc                 - Pause
  R/Space               - Restart (after game over)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower bugs, longer gaps between spawns
  normal - The default tuning
  hard   - Faster bugs, shorter gaps, more on screen
  fixed  - No progression, level 1 tuning throughout

Examples:
  thornfall play
  thornfall play --difficulty easy
  thornfall play --config ./my-thornfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the config file and applies the --difficulty preset.
func loadGameConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("difficulty %q: %w", preset, err)
	}
	return cfg, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt-screen owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := thornfall.New(cfg, logger)
	runErr := tui.Run(game, rc, width, height)

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
