package components

import (
	"errors"
	"fmt"
	"strings"

	"collide3d/internal/engine"
	"collide3d/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Axis selects the local axis a capsule is aligned with.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var ErrUnknownAxis = errors.New("components: unknown capsule axis")

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// ParseAxis accepts "x", "y", "z" in any case, with an optional "_axis" suffix.
func ParseAxis(s string) (Axis, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_axis") {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

func (a Axis) MarshalText() ([]byte, error) {
	if a > AxisZ {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAxis, uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// rotation maps the canonical Y-aligned capsule onto the axis.
func (a Axis) rotation() rl.Matrix {
	switch a {
	case AxisX:
		return engine.RotationMatrix(rl.Vector3{Z: 90})
	case AxisZ:
		return engine.RotationMatrix(rl.Vector3{X: 90})
	}
	return rl.MatrixIdentity()
}

// split returns the long-axis scale and the cross-section scale. The
// cross-section takes the larger of the two orthogonal components so the
// round section stays round.
func (a Axis) split(scale rl.Vector3) (long, cross float32) {
	s := rl.Vector3{X: math32.Abs(scale.X), Y: math32.Abs(scale.Y), Z: math32.Abs(scale.Z)}
	switch a {
	case AxisX:
		return s.X, math32.Max(s.Y, s.Z)
	case AxisZ:
		return s.Z, math32.Max(s.X, s.Y)
	}
	return s.Y, math32.Max(s.X, s.Z)
}

// CapsuleCollider is a segment along Direction with hemispherical caps.
// Height includes both caps.
type CapsuleCollider struct {
	engine.BaseComponent
	Center    rl.Vector3
	Radius    float32
	Height    float32
	Direction Axis
}

func NewCapsuleCollider(radius, height float32) *CapsuleCollider {
	return &CapsuleCollider{
		Radius:    radius,
		Height:    height,
		Direction: AxisY,
	}
}

// GetWorldCapsule returns the rotation and scale that map the canonical
// Y-aligned capsule into world space, plus the cross-section scale used for
// the radius. Detached colliders use the identity transform.
func (c *CapsuleCollider) GetWorldCapsule() (rotation, scale rl.Matrix, crossScale float32) {
	worldRot := rl.MatrixIdentity()
	worldScale := rl.Vector3{X: 1, Y: 1, Z: 1}
	if g := c.GetGameObject(); g != nil {
		worldRot = g.WorldRotationMatrix()
		worldScale = g.WorldScale()
	}
	long, cross := c.Direction.split(worldScale)
	rotation = rl.MatrixMultiply(c.Direction.rotation(), worldRot)
	scale = rl.MatrixScale(cross, long, cross)
	return rotation, scale, cross
}

func (c *CapsuleCollider) validate() error {
	if c.Direction > AxisZ {
		return fmt.Errorf("%w: %d", ErrUnknownAxis, uint8(c.Direction))
	}
	if !(c.Radius > 0) || c.Height < 2*c.Radius {
		return fmt.Errorf("%w: capsule radius %v height %v", physics.ErrInvalidShape, c.Radius, c.Height)
	}
	return nil
}

// GetCapsule returns the world-space segment and radius.
func (c *CapsuleCollider) GetCapsule() (physics.Capsule, error) {
	g, err := owner(c)
	if err != nil {
		return physics.Capsule{}, err
	}
	if err := c.validate(); err != nil {
		return physics.Capsule{}, err
	}

	rotation, scale, cross := c.GetWorldCapsule()
	halfInner := scale.M5 * (c.Height - 2*c.Radius) / 2
	half := rl.Vector3Transform(rl.Vector3{Y: halfInner}, rotation)
	center := g.TransformPoint(c.Center)

	capsule := physics.Capsule{
		P0:     rl.Vector3Subtract(center, half),
		P1:     rl.Vector3Add(center, half),
		Radius: c.Radius * cross,
	}
	if err := capsule.Validate(); err != nil {
		return physics.Capsule{}, err
	}
	return capsule, nil
}

func (c *CapsuleCollider) WorldShape() (physics.Shape, error) {
	capsule, err := c.GetCapsule()
	if err != nil {
		return nil, err
	}
	return capsule, nil
}

func (c *CapsuleCollider) Raycast(ray physics.Ray, hit *physics.RaycastHit, maxDistance float32) bool {
	return raycastCollider(c, ray, hit, maxDistance)
}

func (c *CapsuleCollider) Intersects(other Collider) bool {
	return intersectColliders(c, other)
}

func (c *CapsuleCollider) DrawGizmo(d GizmoDrawer, color rl.Color) {
	capsule, err := c.GetCapsule()
	if err != nil {
		return
	}
	d.WireCapsule(capsule.P0, capsule.P1, capsule.Radius, color)
}
