package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"collide3d/internal/physics"
	"collide3d/internal/world"
)

var errNoScene = errors.New("--scene is required")

// openWorld loads a scene file and logs any collider that cannot produce a
// world shape.
func openWorld(path string) (*world.World, error) {
	if path == "" {
		return nil, errNoScene
	}
	scene, err := world.LoadScene(path)
	if err != nil {
		return nil, err
	}
	w := world.New(scene, logger)
	for _, problem := range w.Problems() {
		logger.Warn("invalid collider", "error", problem)
	}
	logger.Info("scene loaded", "scene", scene.Name, "objects", len(scene.GameObjects), "colliders", w.Colliders())
	return w, nil
}

// parseVec3 reads an "x,y,z" flag value.
func parseVec3(name, s string) (rl.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rl.Vector3{}, fmt.Errorf("--%s needs 3 components, got %d", name, len(parts))
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("--%s: %w", name, err)
		}
		v[i] = float32(f)
	}
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func fmtVec(v rl.Vector3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func printHit(out io.Writer, h world.Hit) {
	fmt.Fprintf(out, "  %-16s %-16s %8.3f  %s  %s\n",
		h.Object.Name, colliderName(h.Collider), h.Distance(), fmtVec(h.Point()), fmtVec(h.Normal()))
}

func printHitHeader(out io.Writer) {
	fmt.Fprintf(out, "  %-16s %-16s %8s  %s  %s\n", "Object", "Collider", "Distance", "Point", "Normal")
	fmt.Fprintf(out, "  %-16s %-16s %8s  %s  %s\n", "------", "--------", "--------", "-----", "------")
}

// colliderName is the component type without package or pointer prefix.
func colliderName(c any) string {
	name := fmt.Sprintf("%T", c)
	return name[strings.LastIndex(name, ".")+1:]
}

func describeShape(s physics.Shape) string {
	switch v := s.(type) {
	case physics.Sphere:
		return fmt.Sprintf("center %s radius %.3f", fmtVec(v.Center), v.Radius)
	case physics.OBB:
		return fmt.Sprintf("center %s half %s", fmtVec(v.Center), fmtVec(v.HalfSize))
	case physics.Capsule:
		return fmt.Sprintf("p0 %s p1 %s radius %.3f", fmtVec(v.P0), fmtVec(v.P1), v.Radius)
	}
	return s.Kind().String()
}
