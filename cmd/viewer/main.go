// viewer opens a scene file in a raylib window and draws its colliders.
//
// Usage:
//
//	viewer --scene scenes/demo.yaml [--config path] [--log-level debug]
//
// Right drag orbits, middle drag pans, the wheel zooms. Left click casts a
// ray from the mouse and shows the hit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"collide3d/internal/config"
	"collide3d/internal/logging"
	"collide3d/internal/world"
)

var (
	flagScene    string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "viewer",
	Short:        "Draw a scene's colliders and pick them with the mouse",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagScene, "scene", "scenes/demo.yaml", "Scene file (.json, .yaml)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	logger := logging.New(cfg.LogLevel, "viewer")

	scene, err := world.LoadScene(flagScene)
	if err != nil {
		return err
	}
	w := world.New(scene, logger)
	for _, problem := range w.Problems() {
		logger.Warn("invalid collider", "error", problem)
	}
	logger.Info("scene loaded", "scene", scene.Name, "colliders", w.Colliders())

	v := newViewer(w, cfg, logger)
	v.Run()
	return nil
}
