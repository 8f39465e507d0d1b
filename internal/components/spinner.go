package components

import (
	"collide3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spinner rotates its object by Speed degrees per second on each axis. It
// gives the viewer moving colliders, whose world shapes follow the
// transform on the next query.
type Spinner struct {
	engine.BaseComponent
	Speed rl.Vector3
}

func NewSpinner(speed rl.Vector3) *Spinner {
	return &Spinner{Speed: speed}
}

func (s *Spinner) Update(deltaTime float32) {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	r := &g.Transform.Rotation
	r.X = wrapDegrees(r.X + s.Speed.X*deltaTime)
	r.Y = wrapDegrees(r.Y + s.Speed.Y*deltaTime)
	r.Z = wrapDegrees(r.Z + s.Speed.Z*deltaTime)
}

func wrapDegrees(a float32) float32 {
	for a >= 360 {
		a -= 360
	}
	for a < 0 {
		a += 360
	}
	return a
}
