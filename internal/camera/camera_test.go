package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestPositionKeepsDistance(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2, Z: 3}, 10)
	for _, yaw := range []float32{0, 45, 170, -90} {
		c.Yaw = yaw
		d := rl.Vector3Distance(c.Position(), c.Target)
		assert.InDelta(t, 10, d, 1e-4, "yaw %v", yaw)
	}
}

func TestPositivePitchIsAbove(t *testing.T) {
	c := New(rl.Vector3{}, 10)
	c.Pitch = 30
	assert.InDelta(t, 5, c.Position().Y, 1e-4)
}

func TestPitchClamped(t *testing.T) {
	c := New(rl.Vector3{}, 10)
	c.Apply(Input{Orbit: true, MouseDelta: rl.Vector3{Y: 10000}})
	assert.Equal(t, float32(89), c.Pitch)
	c.Apply(Input{Orbit: true, MouseDelta: rl.Vector3{Y: -10000}})
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestOrbitNeedsButton(t *testing.T) {
	c := New(rl.Vector3{}, 10)
	yaw := c.Yaw
	c.Apply(Input{MouseDelta: rl.Vector3{X: 50}})
	assert.Equal(t, yaw, c.Yaw)
}

func TestZoomClamped(t *testing.T) {
	c := New(rl.Vector3{}, 10)
	c.Apply(Input{Wheel: 1})
	assert.InDelta(t, 9, c.Distance, 1e-4)
	for range 100 {
		c.Apply(Input{Wheel: 5})
	}
	assert.Equal(t, c.MinDistance, c.Distance)
}

func TestPanMovesTarget(t *testing.T) {
	c := New(rl.Vector3{}, 10)
	before := c.Position()
	c.Apply(Input{Pan: true, MouseDelta: rl.Vector3{X: 10}})
	assert.NotEqual(t, rl.Vector3{}, c.Target)
	moved := rl.Vector3Subtract(c.Position(), before)
	assert.InDelta(t, rl.Vector3Length(rl.Vector3Subtract(c.Target, rl.Vector3{})), rl.Vector3Length(moved), 1e-4)
}

func TestRaylibCamera(t *testing.T) {
	c := New(rl.Vector3{Y: 1}, 5)
	cam := c.GetRaylibCamera()
	assert.Equal(t, c.Target, cam.Target)
	assert.Equal(t, float32(45), cam.Fovy)
	assert.InDelta(t, 5, rl.Vector3Distance(cam.Position, cam.Target), 1e-4)
}
