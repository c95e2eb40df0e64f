// starraid is a side-scrolling space shooter for the terminal or a desktop
// window, built around a deterministic fixed-step simulation.
//
// Usage:
//
//	starraid play                - Play in the terminal
//	starraid play -f window      - Play in a desktop window
//	starraid list                - List available frontends
//	starraid simulate --record   - Run a headless game and record its trace
//	starraid runs                - Browse recorded runs
//	starraid verify <id>         - Replay a recorded run and check its hashes
//	starraid config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--config <path> - Use a custom configuration file
//	--db <path>     - Set database path (default: ~/.starraid/runs.db)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/star-raid/internal/platform/tui"
	_ "github.com/vovakirdan/star-raid/internal/platform/window"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagDBPath string
	flagLog    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starraid",
	Short: "Star Raid - a side-scrolling space shooter",
	Long: `Star Raid is a side-scrolling space shooter. Dodge and destroy the
ships streaming in from the right; when you are shot down the sector
resets after a short pause.

Available commands:
  play      - Play the game
  list      - Show available frontends
  simulate  - Run a headless game with a scripted pilot
  runs      - Browse recorded runs
  verify    - Check that a recorded run still replays identically
  config    - Print the effective configuration

Examples:
  starraid play
  starraid play --frontend window --seed 42
  starraid simulate --ticks 10000 --record
  starraid verify 3`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default: ~/.starraid/runs.db)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file (default: stderr, or ~/.starraid/starraid.log while playing)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(configCmd)
}
