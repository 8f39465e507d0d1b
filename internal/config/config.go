package config

import (
	_ "embed"
	"fmt"

	"collide3d/internal/debugdraw"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed defaults/collide.yaml
var defaultYAML []byte

// Config holds settings shared by the collide CLI and the viewer.
type Config struct {
	MaxDistance float32      `yaml:"max_distance"`
	LogLevel    string       `yaml:"log_level"`
	DBPath      string       `yaml:"db_path"`
	Gizmos      GizmoColors  `yaml:"gizmos"`
	Viewer      ViewerConfig `yaml:"viewer"`
}

// GizmoColors are colour names or #rrggbb values per primitive.
type GizmoColors struct {
	Sphere  string `yaml:"sphere"`
	Box     string `yaml:"box"`
	Capsule string `yaml:"capsule"`
	Hit     string `yaml:"hit"`
	Ray     string `yaml:"ray"`
}

type ViewerConfig struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
	FPS    int32 `yaml:"fps"`
}

// Default returns the hardcoded configuration, used when the embedded YAML
// cannot be parsed and to fill fields a user file leaves empty.
func Default() Config {
	return Config{
		MaxDistance: 1000,
		LogLevel:    "info",
		DBPath:      "~/.collide3d/hits.db",
		Gizmos: GizmoColors{
			Sphere:  "Green",
			Box:     "SkyBlue",
			Capsule: "Orange",
			Hit:     "Red",
			Ray:     "Yellow",
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			FPS:    60,
		},
	}
}

// Validate rejects values no tool can run with.
func (c Config) Validate() error {
	if !(c.MaxDistance > 0) {
		return fmt.Errorf("config: max_distance must be positive, got %v", c.MaxDistance)
	}
	for name, value := range map[string]string{
		"sphere":  c.Gizmos.Sphere,
		"box":     c.Gizmos.Box,
		"capsule": c.Gizmos.Capsule,
		"hit":     c.Gizmos.Hit,
		"ray":     c.Gizmos.Ray,
	} {
		if _, err := debugdraw.ParseColor(value); err != nil {
			return fmt.Errorf("config: gizmos.%s: %w", name, err)
		}
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("config: viewer size %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	return nil
}

// Palette resolves the gizmo colour names.
type Palette struct {
	Sphere, Box, Capsule, Hit, Ray rl.Color
}

func (g GizmoColors) Palette() Palette {
	return Palette{
		Sphere:  debugdraw.LookupColor(g.Sphere),
		Box:     debugdraw.LookupColor(g.Box),
		Capsule: debugdraw.LookupColor(g.Capsule),
		Hit:     debugdraw.LookupColor(g.Hit),
		Ray:     debugdraw.LookupColor(g.Ray),
	}
}

// For returns the gizmo colour for a shape kind.
func (p Palette) For(kind physics.Kind) rl.Color {
	switch kind {
	case physics.KindSphere:
		return p.Sphere
	case physics.KindBox:
		return p.Box
	case physics.KindCapsule:
		return p.Capsule
	}
	return rl.White
}
