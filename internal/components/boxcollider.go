package components

import (
	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is axis-aligned in local space. Size holds full extents.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Center rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Center: rl.Vector3{},
	}
}

// GetOBB returns the world-space oriented box.
func (b *BoxCollider) GetOBB() (physics.OBB, error) {
	g, err := owner(b)
	if err != nil {
		return physics.OBB{}, err
	}
	size := scaleVec(b.Size, g.WorldScale())
	return physics.NewOBB(g.TransformPoint(b.Center), size, g.WorldRotationMatrix()), nil
}

// GetAABB returns the world-space bounds of the oriented box.
func (b *BoxCollider) GetAABB() (physics.AABB, error) {
	o, err := b.GetOBB()
	if err != nil {
		return physics.AABB{}, err
	}
	return o.Bounds(), nil
}

func (b *BoxCollider) WorldShape() (physics.Shape, error) {
	o, err := b.GetOBB()
	if err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (b *BoxCollider) Raycast(ray physics.Ray, hit *physics.RaycastHit, maxDistance float32) bool {
	return raycastCollider(b, ray, hit, maxDistance)
}

func (b *BoxCollider) Intersects(other Collider) bool {
	return intersectColliders(b, other)
}

func (b *BoxCollider) DrawGizmo(d GizmoDrawer, color rl.Color) {
	o, err := b.GetOBB()
	if err != nil {
		return
	}
	d.WireBox(o.Center, o.Size(), o.Rotation(), color)
}
