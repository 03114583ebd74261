// trails is a procedural maze game for the terminal.
//
// Usage:
//
//	trails list                - List maze variants
//	trails play [variant]      - Play a maze (default: trails)
//	trails menu                - Pick a variant interactively
//	trails serve               - Host mazes over SSH
//	trails scores [variant]    - Show the leaderboard
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible mazes
//	--db <path>         - Set database path (default: ~/.trails/scores.db)
//	--log-file <path>   - Log file (default: ~/.trails/trails.log, empty disables)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trails/internal/logging"
)

const defaultVariant = "trails"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trails",
	Short: "Trails - collect the gems, find the exit",
	Long: `Trails is a maze game for the terminal. Every level is a freshly carved
maze: collect all the gems, then reach the exit to go one level deeper.

Available commands:
  list     - Show the maze variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Host mazes over SSH
  scores   - View the leaderboard

Examples:
  trails play
  trails play trails_fit --sound
  trails menu
  trails serve --ssh :2222
  trails scores trails`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trails/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFilePath(), "Path to log file (empty disables file logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
