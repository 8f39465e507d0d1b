package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"collide3d/internal/components"
	"collide3d/internal/engine"
	"collide3d/internal/physics"
	"collide3d/internal/world"
)

var (
	flagCounts []int
	flagSeed   int64
	flagRays   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time pair tests and raycasts on random scenes",
	Long: `Generate scenes of random spheres, boxes and capsules and time
CollidingPairs and a fixed number of raycasts at each size. Pair testing is
all-pairs, so expect quadratic growth.

Examples:
  collide bench
  collide bench --counts 100,1000 --rays 5000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntSliceVar(&flagCounts, "counts", []int{100, 250, 500, 1000, 2000}, "Object counts to test")
	benchCmd.Flags().Int64Var(&flagSeed, "seed", 42, "RNG seed")
	benchCmd.Flags().IntVar(&flagRays, "rays", 1000, "Raycasts per scene")
}

func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %6s  %8s  %10s  %10s  %10s\n", "Objects", "Pairs", "Pairs ms", "Rays ms", "Hits")
	fmt.Fprintf(out, "  %6s  %8s  %10s  %10s  %10s\n", "-------", "-----", "--------", "-------", "----")
	for _, count := range flagCounts {
		if count <= 0 {
			return fmt.Errorf("--counts: %d is not positive", count)
		}
		r := benchScene(count, flagRays, rand.New(rand.NewSource(flagSeed)))
		fmt.Fprintf(out, "  %6d  %8d  %10.2f  %10.2f  %10d\n",
			count, r.pairs, ms(r.pairTime), ms(r.rayTime), r.hits)
	}
	return nil
}

type benchResult struct {
	pairs, hits       int
	pairTime, rayTime time.Duration
}

func benchScene(count, rays int, rng *rand.Rand) benchResult {
	w := world.New(randomScene(count, rng), logger)

	var res benchResult
	start := time.Now()
	res.pairs = len(w.CollidingPairs())
	res.pairTime = time.Since(start)

	// Spawn in a cube, size scales with count to keep density reasonable
	spawn := float32(50.0) + float32(count)/100.0
	queries := make([]physics.Ray, 0, rays)
	for range rays {
		origin := randomPoint(rng, spawn)
		dir := rl.Vector3{X: rng.Float32() - 0.5, Y: rng.Float32() - 0.5, Z: rng.Float32() - 0.5}
		if ray, err := physics.NewRay(origin, dir); err == nil {
			queries = append(queries, ray)
		}
	}

	start = time.Now()
	for _, ray := range queries {
		if _, ok := w.Raycast(ray, physics.Unbounded); ok {
			res.hits++
		}
	}
	res.rayTime = time.Since(start)
	return res
}

// randomScene fills a cube with a mix of the three collider kinds.
func randomScene(count int, rng *rand.Rand) *engine.Scene {
	scene := engine.NewScene(fmt.Sprintf("bench-%d", count))
	spawn := float32(50.0) + float32(count)/100.0
	for i := range count {
		g := engine.NewGameObject(fmt.Sprintf("obj_%d", i))
		g.Transform.Position = randomPoint(rng, spawn)
		g.Transform.Rotation = rl.Vector3{X: rng.Float32() * 360, Y: rng.Float32() * 360, Z: rng.Float32() * 360}

		size := 0.5 + rng.Float32()*0.5 // 0.5 to 1.0
		switch i % 3 {
		case 0:
			g.AddComponent(components.NewSphereCollider(size))
		case 1:
			g.AddComponent(components.NewBoxCollider(rl.Vector3{X: size * 2, Y: size, Z: size * 1.5}))
		default:
			c := components.NewCapsuleCollider(size/2, size*3)
			c.Direction = components.Axis(rng.Intn(3))
			g.AddComponent(c)
		}
		scene.AddGameObject(g)
	}
	return scene
}

func randomPoint(rng *rand.Rand, spawn float32) rl.Vector3 {
	return rl.Vector3{
		X: rng.Float32()*spawn - spawn/2,
		Y: rng.Float32()*spawn - spawn/2,
		Z: rng.Float32()*spawn - spawn/2,
	}
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
