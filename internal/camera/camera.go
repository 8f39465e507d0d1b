package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32
	Pitch     float32
	LookSpeed float32
	ZoomSpeed float32
	PanSpeed  float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    distance,
		Yaw:         -135.0,
		Pitch:       30.0,
		LookSpeed:   0.3,
		ZoomSpeed:   1.0,
		PanSpeed:    0.01,
		MinDistance: 1,
		MaxDistance: 500,
	}
}

// Input is one frame of user input.
type Input struct {
	MouseDelta rl.Vector3 // X, Y in pixels
	Wheel      float32
	Orbit      bool
	Pan        bool
}

// ReadInput samples raylib's mouse state: right drag orbits, middle drag pans.
func ReadInput() Input {
	d := rl.GetMouseDelta()
	return Input{
		MouseDelta: rl.Vector3{X: d.X, Y: d.Y},
		Wheel:      rl.GetMouseWheelMove(),
		Orbit:      rl.IsMouseButtonDown(rl.MouseButtonRight),
		Pan:        rl.IsMouseButtonDown(rl.MouseButtonMiddle),
	}
}

func (c *OrbitCamera) Update() {
	c.Apply(ReadInput())
}

// Apply moves the camera for one frame of input.
func (c *OrbitCamera) Apply(in Input) {
	if in.Orbit {
		c.Yaw += in.MouseDelta.X * c.LookSpeed
		c.Pitch += in.MouseDelta.Y * c.LookSpeed
	}

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	if in.Pan {
		_, right, up := c.basis()
		scale := c.PanSpeed * c.Distance
		c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(right, -in.MouseDelta.X*scale))
		c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(up, in.MouseDelta.Y*scale))
	}

	c.Distance -= in.Wheel * c.ZoomSpeed * c.Distance * 0.1
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position is the eye point on the orbit sphere.
func (c *OrbitCamera) Position() rl.Vector3 {
	forward, _, _ := c.basis()
	return rl.Vector3Subtract(c.Target, rl.Vector3Scale(forward, c.Distance))
}

// basis returns the unit view direction and the camera's right and up axes.
func (c *OrbitCamera) basis() (forward, right, up rl.Vector3) {
	yawRad := c.Yaw * math32.Pi / 180
	pitchRad := c.Pitch * math32.Pi / 180

	// Positive pitch looks down at the target.
	forward = rl.Vector3{
		X: math32.Cos(yawRad) * math32.Cos(pitchRad),
		Y: -math32.Sin(pitchRad),
		Z: math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
