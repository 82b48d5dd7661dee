// spider is a terminal Spider Solitaire: deterministic seeded deals,
// three suit variants, undo/redo, hints, and a results database.
//
// Usage:
//
//	spider play              - Play in the terminal
//	spider deal              - Print a deterministic deal without playing
//	spider stats             - Show win/score statistics
//	spider serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--db <path>      - Results database path (default from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-spider/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spider",
	Short: "Spider Solitaire in your terminal",
	Long: `Spider is a terminal Spider Solitaire with seeded deterministic
deals, so any game can be replayed or shared by seed.

Available commands:
  play     - Play interactively
  deal     - Print a deal for a seed without playing
  stats    - View win/score statistics
  serve    - Start SSH server for remote play

Examples:
  spider play
  spider play --suits 4 --seed peacock123
  spider deal --seed peacock123 --json
  spider stats
  spider serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration, applying the --db
// override on top of the loaded file.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			fmt.Fprintf(os.Stderr, "Error loading config %q: %v\n", flagConfig, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.Default()
	}
	if flagDBPath != "" {
		cfg.Paths.Database = flagDBPath
	}
	return cfg
}
