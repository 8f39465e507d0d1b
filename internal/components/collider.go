package components

import (
	"errors"

	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrDetached is returned when a collider has no live owning object.
var ErrDetached = errors.New("components: collider is not attached to a live object")

// Collider is a component that holds a local-space shape and derives its
// world-space form from the owning object's transform on every call.
type Collider interface {
	engine.Component
	Attached() bool
	// WorldShape applies the owner's current world transform to the local
	// parameters.
	WorldShape() (physics.Shape, error)
	Raycast(ray physics.Ray, hit *physics.RaycastHit, maxDistance float32) bool
	Intersects(other Collider) bool
	DrawGizmo(d GizmoDrawer, color rl.Color)
}

// GizmoDrawer receives world-space wireframe primitives.
type GizmoDrawer interface {
	WireSphere(center rl.Vector3, radius float32, color rl.Color)
	// WireBox draws a box of full extents size, rotated by rotation about center.
	WireBox(center, size rl.Vector3, rotation rl.Matrix, color rl.Color)
	WireCapsule(p0, p1 rl.Vector3, radius float32, color rl.Color)
	Line(a, b rl.Vector3, color rl.Color)
	Point(p rl.Vector3, color rl.Color)
}

// owner returns the live object behind c or ErrDetached.
func owner(c Collider) (*engine.GameObject, error) {
	if !c.Attached() {
		return nil, ErrDetached
	}
	return c.GetGameObject(), nil
}

func raycastCollider(c Collider, ray physics.Ray, hit *physics.RaycastHit, maxDistance float32) bool {
	shape, err := c.WorldShape()
	if err != nil {
		return false
	}
	return shape.Raycast(ray, hit, maxDistance)
}

func intersectColliders(a, b Collider) bool {
	if a == nil || b == nil {
		return false
	}
	sa, err := a.WorldShape()
	if err != nil {
		return false
	}
	sb, err := b.WorldShape()
	if err != nil {
		return false
	}
	return physics.Intersects(sa, sb)
}

func scaleVec(v, s rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X * s.X, Y: v.Y * s.Y, Z: v.Z * s.Z}
}
