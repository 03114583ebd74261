package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trails/internal/games/trails"
	"github.com/vovakirdan/trails/internal/logging"
	"github.com/vovakirdan/trails/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host mazes over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each connection gets its own session with the variant menu. Runs are
recorded under the SSH user name on a shared leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.trails/host_key

Logs go to stderr, and also to --log-file when it is set explicitly.

Examples:
  trails serve                           # Listen on :23234
  trails serve --ssh :2222               # Listen on port 2222
  trails serve --host-key ./my_host_key  # Use specific host key
  trails serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom trails config YAML")
}

func runServe(cmd *cobra.Command, _ []string) error {
	opts := logging.Options{
		Level:   flagLogLevel,
		Prefix:  "trails-ssh",
		Console: os.Stderr,
	}
	if cmd.Flags().Changed("log-file") {
		opts.FilePath = flagLogFile
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		return err
	}
	defer closer.Close()

	trails.SetLogger(logger.WithPrefix("trails"))
	trails.SetConfigPath(flagServeConfig)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting trails SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
