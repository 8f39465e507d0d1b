package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collide3d/internal/hitlog"
	"collide3d/internal/logging"
	"collide3d/internal/world"
)

var demoScene = filepath.Join("..", "..", "scenes", "demo.yaml")

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	// flags persist between Execute calls
	flagConfig, flagLogLevel, flagDBPath = "", "", ""
	flagScene, flagOrigin, flagDir, flagMax, flagAll, flagTag = "", "", "", 0, false, ""
	flagQueries, flagRecord, flagLimit = "", false, 10
	flagCounts, flagSeed, flagRays = nil, 42, 1000

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRaycastCommand(t *testing.T) {
	out, err := execute(t, "raycast", "--scene", demoScene, "--origin", "0,0,-10", "--dir", "0,0,1")
	require.NoError(t, err)
	assert.Contains(t, out, "pillar")
	assert.Contains(t, out, "CapsuleCollider")
}

func TestRaycastCommandMiss(t *testing.T) {
	out, err := execute(t, "raycast", "--scene", demoScene, "--origin", "0,10,0", "--dir", "0,1,0")
	require.NoError(t, err)
	assert.Contains(t, out, "No hit")
}

func TestRaycastCommandErrors(t *testing.T) {
	_, err := execute(t, "raycast", "--scene", demoScene, "--origin", "0,10", "--dir", "0,-1,0")
	assert.ErrorContains(t, err, "--origin needs 3 components")

	_, err = execute(t, "raycast", "--scene", demoScene, "--origin", "0,0,0", "--dir", "0,0,0")
	assert.Error(t, err)

	_, err = execute(t, "raycast", "--scene", demoScene, "--origin", "0,x,0", "--dir", "0,-1,0")
	assert.ErrorContains(t, err, "--origin")

	_, err = execute(t, "raycast", "--origin", "0,0,0", "--dir", "0,1,0")
	assert.ErrorIs(t, err, errNoScene)
}

func TestRaycastCommandAll(t *testing.T) {
	out, err := execute(t, "raycast", "--scene", demoScene, "--origin", "0,10,0", "--dir", "0,-1,0", "--all")
	require.NoError(t, err)
	beam := strings.Index(out, "beam")
	pillar := strings.Index(out, "pillar")
	floor := strings.Index(out, "floor")
	require.True(t, beam > 0 && pillar > 0 && floor > 0, out)
	assert.Less(t, beam, pillar)
	assert.Less(t, pillar, floor)

	out, err = execute(t, "raycast", "--scene", demoScene, "--origin", "0,10,0", "--dir", "0,-1,0", "--tag", "static")
	require.NoError(t, err)
	assert.Contains(t, out, "pillar")
	assert.NotContains(t, out, "beam")
}

func TestShapesCommand(t *testing.T) {
	out, err := execute(t, "shapes", "--scene", demoScene)
	require.NoError(t, err)
	assert.Contains(t, out, "[capsule]")
	assert.Contains(t, out, "[box]")
	assert.Contains(t, out, "bounds")
}

func TestOverlapsCommand(t *testing.T) {
	scene := writeFile(t, "pair.yaml", `
objects:
  - name: left
    components: [{type: SphereCollider, radius: 1}]
  - name: right
    position: [1.4, 0, 0]
    components: [{type: BoxCollider, size: [1, 1, 1]}]
  - name: far
    position: [10, 0, 0]
    components: [{type: SphereCollider, radius: 1}]
`)
	out, err := execute(t, "overlaps", "--scene", scene)
	require.NoError(t, err)
	assert.Contains(t, out, "left")
	assert.Contains(t, out, "right")
	assert.NotContains(t, out, "far")
	assert.Contains(t, out, "1 pair(s)")
}

func TestLoadQueries(t *testing.T) {
	queries, err := loadQueries(filepath.Join("..", "..", "scenes", "queries.yaml"))
	require.NoError(t, err)
	require.Len(t, queries, 4)
	assert.Equal(t, float32(5), queries[2].Max)

	bad := writeFile(t, "bad.yaml", "rays:\n  - origin: [0, 0, 0]\n    direction: [0, 0, 0]\n")
	_, err = loadQueries(bad)
	assert.ErrorContains(t, err, "query 0")
}

func TestCastAll(t *testing.T) {
	scene, err := world.LoadScene(filepath.Join("..", "..", "internal", "world", "testdata", "pillars.yaml"))
	require.NoError(t, err)
	w := world.New(scene, nil)

	records := castAll(w, []RayQuery{
		{Origin: [3]float32{0, 5, 0}, Direction: [3]float32{0, -2, 0}},
		{Origin: [3]float32{0, 5, 0}, Direction: [3]float32{0, -1, 0}, Max: 2},
	}, 100)
	require.Len(t, records, 2)

	assert.True(t, records[0].Hit)
	assert.Equal(t, "pillar", records[0].Object)
	assert.Equal(t, "CapsuleCollider", records[0].Collider)
	assert.InDelta(t, 3, records[0].Distance, 1e-4)
	assert.Equal(t, [3]float32{0, -1, 0}, records[0].Direction)

	assert.False(t, records[1].Hit)
	assert.Equal(t, 1, records[1].Query)
}

func TestBatchRecordAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hits.db")
	queries := filepath.Join("..", "..", "scenes", "queries.yaml")

	out, err := execute(t, "batch", "--scene", demoScene, "--queries", queries, "--record", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "/4 hit")

	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "demo")

	store, err := hitlog.Open(db)
	require.NoError(t, err)
	runs, err := store.Runs(1)
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.Len(t, runs, 1)
	assert.Equal(t, 4, runs[0].Queries)

	out, err = execute(t, "history", runs[0].ID.String(), "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, runs[0].ID.String())
	assert.Equal(t, 1, strings.Count(out, "pillar"), out)
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, "history", "--db", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
}

func TestBenchScene(t *testing.T) {
	logger = logging.Discard()
	scene := randomScene(30, rand.New(rand.NewSource(1)))
	assert.Len(t, scene.GameObjects, 30)

	a := benchScene(30, 50, rand.New(rand.NewSource(3)))
	b := benchScene(30, 50, rand.New(rand.NewSource(3)))
	assert.Equal(t, a.pairs, b.pairs, "same seed, same scene")
	assert.Equal(t, a.hits, b.hits)
	assert.LessOrEqual(t, a.hits, 50)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--counts", "10,20", "--rays", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Objects")

	_, err = execute(t, "bench", "--counts", "0")
	assert.ErrorContains(t, err, "not positive")
}
