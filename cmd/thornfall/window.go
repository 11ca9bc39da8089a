package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thornfall/internal/core"
	"github.com/vovakirdan/thornfall/internal/games/thornfall"
	"github.com/vovakirdan/thornfall/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Thornfall in a resizable desktop window.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Fire a thorn
  Enter/Space      - Start (or click the START button)
  P/Esc            - Pause
  R/Space          - Restart (after game over)
  Q                - Quit

On touch screens, hold the left or right third of the window to move
and tap the middle to fire.

Examples:
  thornfall window
  thornfall window --difficulty hard --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := thornfall.New(cfg, logger)
	runErr := gui.Run(game, rc)

	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
