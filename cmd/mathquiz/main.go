// mathquiz is a timed arithmetic quiz for the terminal.
//
// Usage:
//
//	mathquiz                 - Play locally (same as "mathquiz play")
//	mathquiz play            - Play locally
//	mathquiz serve           - Start SSH server for remote play
//	mathquiz config          - Print the effective quiz configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible question sequences
//	--config <path>    - Load quiz rules from a YAML file
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathquiz",
	Short: "Math Adventure - a timed arithmetic quiz in your terminal",
	Long: `Math Adventure asks addition questions until your score reaches the
promotion threshold, then switches to multiplication. Each question has a
time limit; a wrong answer, an unparsable answer or a timeout costs a life.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  mathquiz
  mathquiz play --seed 42
  mathquiz play --config ./quiz.yaml --log-file quiz.log
  mathquiz serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to quiz config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
