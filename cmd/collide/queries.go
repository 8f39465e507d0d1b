package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"collide3d/internal/physics"
)

// QueryFile is the YAML layout read by the batch command.
type QueryFile struct {
	Rays []RayQuery `yaml:"rays"`
}

// RayQuery is one ray. Max of zero means the configured max distance.
type RayQuery struct {
	Origin    [3]float32 `yaml:"origin"`
	Direction [3]float32 `yaml:"direction"`
	Max       float32    `yaml:"max,omitempty"`
}

func (q RayQuery) Ray() (physics.Ray, error) {
	return physics.NewRay(
		rl.Vector3{X: q.Origin[0], Y: q.Origin[1], Z: q.Origin[2]},
		rl.Vector3{X: q.Direction[0], Y: q.Direction[1], Z: q.Direction[2]},
	)
}

// loadQueries reads a queries file and checks every ray up front, so a batch
// never records half a run.
func loadQueries(path string) ([]RayQuery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parse queries %s: %w", path, err)
	}
	for i, q := range qf.Rays {
		if _, err := q.Ray(); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		if q.Max < 0 {
			return nil, fmt.Errorf("query %d: negative max %v", i, q.Max)
		}
	}
	return qf.Rays, nil
}
