package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind identifies one of the closed set of primitive shapes.
type Kind uint8

const (
	KindSphere Kind = iota
	KindBox
	KindCapsule

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindCapsule:
		return "capsule"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape is a world-space primitive volume. The set of implementations is
// closed: Sphere, OBB and Capsule.
type Shape interface {
	Kind() Kind
	Bounds() AABB
	Validate() error
	Raycast(ray Ray, hit *RaycastHit, maxDistance float32) bool
	isShape()
}

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func (Sphere) Kind() Kind { return KindSphere }

func (Sphere) isShape() {}

func (s Sphere) Validate() error {
	if !finiteVec(s.Center) || !validRadius(s.Radius) {
		return fmt.Errorf("%w: sphere center %v radius %v", ErrInvalidShape, s.Center, s.Radius)
	}
	return nil
}

func (s Sphere) Bounds() AABB {
	return AABB{Min: s.Center, Max: s.Center}.Expand(s.Radius)
}

func (s Sphere) Raycast(ray Ray, hit *RaycastHit, maxDistance float32) bool {
	return RaycastSphere(s.Center, s.Radius, ray, hit, maxDistance)
}

// Capsule is the set of points within Radius of the segment [P0, P1].
type Capsule struct {
	P0, P1 rl.Vector3
	Radius float32
}

func (Capsule) Kind() Kind { return KindCapsule }

func (Capsule) isShape() {}

func (c Capsule) Validate() error {
	if !finiteVec(c.P0) || !finiteVec(c.P1) || !validRadius(c.Radius) {
		return fmt.Errorf("%w: capsule %v-%v radius %v", ErrInvalidShape, c.P0, c.P1, c.Radius)
	}
	return nil
}

func (c Capsule) Bounds() AABB {
	return AABBFromPoints(c.P0, c.P1).Expand(c.Radius)
}

func (c Capsule) Raycast(ray Ray, hit *RaycastHit, maxDistance float32) bool {
	return RaycastCapsule(c.P0, c.P1, c.Radius, ray, hit, maxDistance)
}

func (c Capsule) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(c.P0, c.P1), 0.5)
}

// canonical turns pointer shapes into their value form so the dispatch
// table only ever sees Sphere, OBB and Capsule values.
func canonical(s Shape) Shape {
	switch v := s.(type) {
	case *Sphere:
		if v == nil {
			return nil
		}
		return *v
	case *OBB:
		if v == nil {
			return nil
		}
		return *v
	case *Capsule:
		if v == nil {
			return nil
		}
		return *v
	}
	return s
}
