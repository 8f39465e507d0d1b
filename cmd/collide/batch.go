package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"collide3d/internal/config"
	"collide3d/internal/hitlog"
	"collide3d/internal/world"
)

var (
	flagQueries string
	flagRecord  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Cast every ray in a queries file",
	Long: `Cast the rays listed in a YAML queries file and print the nearest hit of
each. With --record the results are stored in the hit log database and can
be listed later with 'collide history'.

Queries file:
  rays:
    - origin: [0, 5, 0]
      direction: [0, -1, 0]
      max: 20`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&flagScene, "scene", "", "Scene file (.json, .yaml)")
	batchCmd.Flags().StringVar(&flagQueries, "queries", "", "Queries file (.yaml)")
	batchCmd.Flags().BoolVar(&flagRecord, "record", false, "Store results in the hit log")
	_ = batchCmd.MarkFlagRequired("queries")
}

func runBatch(cmd *cobra.Command, args []string) error {
	queries, err := loadQueries(flagQueries)
	if err != nil {
		return err
	}
	w, err := openWorld(flagScene)
	if err != nil {
		return err
	}

	records := castAll(w, queries, cfg.MaxDistance)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-3s %-16s %-16s %8s  %s\n", "#", "Object", "Collider", "Distance", "Point")
	fmt.Fprintf(out, "  %-3s %-16s %-16s %8s  %s\n", "-", "------", "--------", "--------", "-----")
	hits := 0
	for _, r := range records {
		if !r.Hit {
			fmt.Fprintf(out, "  %-3d %-16s\n", r.Query, "(miss)")
			continue
		}
		hits++
		fmt.Fprintf(out, "  %-3d %-16s %-16s %8.3f  (%.3f, %.3f, %.3f)\n",
			r.Query, r.Object, r.Collider, r.Distance, r.Point[0], r.Point[1], r.Point[2])
	}
	fmt.Fprintf(out, "\n%d/%d hit\n", hits, len(records))

	if !flagRecord {
		return nil
	}
	return record(w.Scene.Name, records)
}

// castAll runs each query against w. Queries must already be validated.
func castAll(w *world.World, queries []RayQuery, defaultMax float32) []hitlog.Record {
	records := make([]hitlog.Record, 0, len(queries))
	for i, q := range queries {
		ray, err := q.Ray()
		if err != nil {
			continue
		}
		maxDistance := defaultMax
		if q.Max > 0 {
			maxDistance = q.Max
		}
		r := hitlog.Record{
			Query:     i,
			Origin:    vecArr(ray.Origin()),
			Direction: vecArr(ray.Direction()),
		}
		if h, ok := w.Raycast(ray, maxDistance); ok {
			r.Hit = true
			r.Object = h.Object.Name
			r.Collider = colliderName(h.Collider)
			r.Distance = h.Distance()
			r.Point = vecArr(h.Point())
			r.Normal = vecArr(h.Normal())
		}
		records = append(records, r)
	}
	return records
}

func record(scene string, records []hitlog.Record) error {
	dbPath, err := config.ExpandHome(cfg.DBPath)
	if err != nil {
		return err
	}
	store, err := hitlog.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.StartRun(scene)
	if err != nil {
		return err
	}
	if err := store.Record(run.ID, records...); err != nil {
		return err
	}
	logger.Info("run recorded", "run", run.ID, "queries", len(records), "db", dbPath)
	return nil
}

func vecArr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
