package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var overlapsCmd = &cobra.Command{
	Use:   "overlaps",
	Short: "List colliding pairs in a scene",
	Long: `Test every pair of active colliders on different objects and print the
pairs whose world shapes overlap. Touching shapes count as overlapping.`,
	Args: cobra.NoArgs,
	RunE: runOverlaps,
}

func init() {
	overlapsCmd.Flags().StringVar(&flagScene, "scene", "", "Scene file (.json, .yaml)")
}

func runOverlaps(cmd *cobra.Command, args []string) error {
	w, err := openWorld(flagScene)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pairs := w.CollidingPairs()
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No overlapping colliders.")
		return nil
	}

	fmt.Fprintf(out, "  %-16s %-16s %-16s %s\n", "A", "Collider", "B", "Collider")
	fmt.Fprintf(out, "  %-16s %-16s %-16s %s\n", "-", "--------", "-", "--------")
	for _, p := range pairs {
		a, b := p.A.Get(w.Scene), p.B.Get(w.Scene)
		if a == nil || b == nil {
			continue
		}
		fmt.Fprintf(out, "  %-16s %-16s %-16s %s\n", a.Name, colliderName(p.ColliderA), b.Name, colliderName(p.ColliderB))
	}
	fmt.Fprintf(out, "\n%d pair(s)\n", len(pairs))
	return nil
}
