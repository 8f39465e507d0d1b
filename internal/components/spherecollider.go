package components

import (
	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Center rl.Vector3 // Local offset from the owner's origin
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Center: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Center
	}
	return g.TransformPoint(s.Center)
}

// WorldRadius scales the radius by the largest world scale component so the
// sphere encloses the scaled local sphere.
func (s *SphereCollider) WorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	return s.Radius * physics.MaxComponent(g.WorldScale())
}

func (s *SphereCollider) WorldShape() (physics.Shape, error) {
	if _, err := owner(s); err != nil {
		return nil, err
	}
	sphere := physics.Sphere{Center: s.GetCenter(), Radius: s.WorldRadius()}
	if err := sphere.Validate(); err != nil {
		return nil, err
	}
	return sphere, nil
}

func (s *SphereCollider) Raycast(ray physics.Ray, hit *physics.RaycastHit, maxDistance float32) bool {
	return raycastCollider(s, ray, hit, maxDistance)
}

func (s *SphereCollider) Intersects(other Collider) bool {
	return intersectColliders(s, other)
}

func (s *SphereCollider) DrawGizmo(d GizmoDrawer, color rl.Color) {
	shape, err := s.WorldShape()
	if err != nil {
		return
	}
	sphere := shape.(physics.Sphere)
	d.WireSphere(sphere.Center, sphere.Radius, color)
}
