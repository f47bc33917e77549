// hopper is a terminal side-scroller: keep a falling block alive by
// landing on platforms that stream in ahead of it.
//
// Usage:
//
//	hopper play              - Play in this terminal
//	hopper serve             - Start SSH server for remote play
//	hopper scores            - Show high scores
//	hopper simulate          - Run the world headless and report each run
//	hopper config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible platform layouts
//	--db <path>      - Set database path (default: ~/.hopper/scores.db)
//	--config <path>  - Use a custom hopper.yaml
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Hopper - a side-scrolling platform game for your terminal",
	Long: `Hopper launches a block to the right under gravity. Land on platforms
to score, press jump while standing on one to boost upwards, and don't
fall off the bottom of the world.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run the world without a terminal
  config    - Print the effective configuration

Examples:
  hopper play
  hopper play --seed 42
  hopper serve --ssh :2222
  hopper simulate --ticks 3600 --jump-every 30
  hopper config --config ./my-hopper.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom hopper.yaml")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the validated game configuration named by --config.
func loadConfig() (config.HopperConfig, error) {
	return config.LoadHopper(flagConfigPath)
}

// seed returns the --seed value, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds a timestamped logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
