// collide runs collision queries against scene files from the terminal.
//
// Usage:
//
//	collide raycast --scene s.yaml --origin 0,5,0 --dir 0,-1,0   - Cast one ray
//	collide overlaps --scene s.yaml                             - List overlapping collider pairs
//	collide shapes --scene s.yaml                               - Print world-space shapes and bounds
//	collide batch --scene s.yaml --queries q.yaml [--record]    - Cast a file of rays
//	collide history [--limit n]                                 - Show recorded batch runs
//	collide bench [--counts 100,1000]                           - Time queries on random scenes
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.collide3d, ./configs, embedded)
//	--log-level <lvl>   - debug, info, warn, error (overrides config)
//	--db <path>         - Hit log database (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"collide3d/internal/config"
	"collide3d/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagDBPath   string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "collide",
	Short: "Collision queries over 3D scene files",
	Long: `collide loads a scene of sphere, box and capsule colliders and answers
raycast and overlap queries against it.

Available commands:
  raycast   - Cast a single ray
  overlaps  - List colliding pairs
  shapes    - Print world-space shapes
  batch     - Cast every ray in a queries file
  history   - Show recorded batch runs
  bench     - Time queries on random scenes

Examples:
  collide raycast --scene scenes/demo.yaml --origin 0,5,0 --dir 0,-1,0
  collide overlaps --scene scenes/demo.yaml
  collide batch --scene scenes/demo.yaml --queries scenes/queries.yaml --record
  collide history --limit 5`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to hit log database")

	// Add subcommands
	rootCmd.AddCommand(raycastCmd)
	rootCmd.AddCommand(overlapsCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(benchCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, "collide")
	logger.Debug("config loaded", "max_distance", cfg.MaxDistance, "db", cfg.DBPath)
	return nil
}
