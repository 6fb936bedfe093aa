package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Starfall SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the menu, and picks its own
difficulty. Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.starfall/host_key

Examples:
  starfall serve                           # Listen on :23235 with auto-generated key
  starfall serve --ssh :2222               # Listen on port 2222
  starfall serve --host-key ./my_host_key  # Use specific host key
  starfall serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	base, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The server owns its terminal, so it logs to stderr unless told otherwise
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, "starfall-ssh", level)
	if flagLogFile != "" {
		fileLogger, closer, openErr := logging.OpenFile(flagLogFile, "starfall-ssh", level)
		if openErr != nil {
			return openErr
		}
		defer closer.Close()
		logger = fileLogger
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Game:        base,
		Difficulty:  preset,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Starfall SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
