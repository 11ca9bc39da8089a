package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/thornfall/internal/config"
	"github.com/vovakirdan/thornfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Thornfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, sized to the client's terminal.
The listen address defaults to :$PORT, or :3000 when PORT is unset.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.thornfall/host_key

Examples:
  thornfall serve                           # Listen on :$PORT or :3000
  thornfall serve --ssh :2222               # Listen on port 2222
  thornfall serve --host-key ./my_host_key  # Use specific host key
  thornfall serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 3000`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", config.ServeAddress(), "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Game = gameCfg

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("thornfall-ssh"))
	if err != nil {
		logger.Error("cannot create server", "err", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Printf("Starting Thornfall SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "err", err)
		closeLog()
		os.Exit(1)
	}
}
