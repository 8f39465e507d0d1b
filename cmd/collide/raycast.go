package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"collide3d/internal/physics"
	"collide3d/internal/world"
)

var (
	flagScene  string
	flagOrigin string
	flagDir    string
	flagMax    float32
	flagAll    bool
	flagTag    string
)

var raycastCmd = &cobra.Command{
	Use:   "raycast",
	Short: "Cast a ray into a scene",
	Long: `Cast a single ray and print the nearest hit, or every hit with --all.
The direction does not need to be unit length.

Examples:
  collide raycast --scene scenes/demo.yaml --origin 0,5,0 --dir 0,-1,0
  collide raycast --scene scenes/demo.yaml --origin -10,0,0 --dir 1,0,0 --all --max 50`,
	Args: cobra.NoArgs,
	RunE: runRaycast,
}

func init() {
	raycastCmd.Flags().StringVar(&flagScene, "scene", "", "Scene file (.json, .yaml)")
	raycastCmd.Flags().StringVar(&flagOrigin, "origin", "", "Ray origin x,y,z")
	raycastCmd.Flags().StringVar(&flagDir, "dir", "", "Ray direction x,y,z")
	raycastCmd.Flags().Float32Var(&flagMax, "max", 0, "Max distance (default from config)")
	raycastCmd.Flags().BoolVar(&flagAll, "all", false, "Print every hit, nearest first")
	raycastCmd.Flags().StringVar(&flagTag, "tag", "", "Only test objects with this tag")
	_ = raycastCmd.MarkFlagRequired("origin")
	_ = raycastCmd.MarkFlagRequired("dir")
}

func runRaycast(cmd *cobra.Command, args []string) error {
	origin, err := parseVec3("origin", flagOrigin)
	if err != nil {
		return err
	}
	dir, err := parseVec3("dir", flagDir)
	if err != nil {
		return err
	}
	ray, err := physics.NewRay(origin, dir)
	if err != nil {
		return err
	}

	w, err := openWorld(flagScene)
	if err != nil {
		return err
	}

	maxDistance := cfg.MaxDistance
	if flagMax > 0 {
		maxDistance = flagMax
	}
	var filters []world.Filter
	if flagTag != "" {
		filters = append(filters, world.WithTag(flagTag))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ray %s\n\n", ray)

	var hits []world.Hit
	if flagAll {
		hits = w.RaycastAll(ray, maxDistance, filters...)
	} else if h, ok := w.Raycast(ray, maxDistance, filters...); ok {
		hits = []world.Hit{h}
	}

	if len(hits) == 0 {
		fmt.Fprintf(out, "No hit within %.3f.\n", maxDistance)
		return nil
	}
	printHitHeader(out)
	for _, h := range hits {
		printHit(out, h)
	}
	return nil
}
