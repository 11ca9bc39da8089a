// thornfall is a small arcade shooter: a cactus dodges and shoots descending
// beetles and wasps.
//
// Usage:
//
//	thornfall play           - Play in the terminal
//	thornfall window         - Play in a desktop window
//	thornfall serve          - Start SSH server for remote play
//	thornfall config         - Print the effective configuration
//	thornfall curve          - Show the difficulty table per level
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "thornfall",
	Short: "Thornfall - dodge and shoot falling bugs",
	Long: `Thornfall is a small arcade game. Steer the cactus at the bottom of
the field, dodge the beetles and wasps coming down, and shoot them with
thorns for bonus points. The longer you survive with bugs on screen,
the faster your score grows and the harder the game gets.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  curve    - Show the difficulty table

Examples:
  thornfall play
  thornfall play --difficulty hard
  thornfall window --seed 42
  thornfall serve --ssh :2222
  thornfall curve --levels 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(curveCmd)
}

// newLogger builds the process logger from the global flags.
// Without --log-file, output goes to fallback. The returned close function
// is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "thornfall",
		Level:           level,
	})
	return logger, closeFn, nil
}
