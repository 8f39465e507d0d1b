package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print world-space collider shapes",
	Long: `Print the world-space shape and axis-aligned bounds of every active
collider, after parent transforms and scale are applied. Colliders that
cannot produce a shape are reported on stderr.`,
	Args: cobra.NoArgs,
	RunE: runShapes,
}

func init() {
	shapesCmd.Flags().StringVar(&flagScene, "scene", "", "Scene file (.json, .yaml)")
}

func runShapes(cmd *cobra.Command, args []string) error {
	w, err := openWorld(flagScene)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	shapes := w.Shapes()
	if len(shapes) == 0 {
		fmt.Fprintln(out, "No colliders.")
		return nil
	}
	for _, s := range shapes {
		b := s.Shape.Bounds()
		fmt.Fprintf(out, "%s [%s] %s\n", s.Object.Name, s.Shape.Kind(), colliderName(s.Collider))
		fmt.Fprintf(out, "  %s\n", describeShape(s.Shape))
		fmt.Fprintf(out, "  bounds %s .. %s\n", fmtVec(b.Min), fmtVec(b.Max))
	}
	return nil
}
