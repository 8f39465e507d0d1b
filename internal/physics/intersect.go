package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pairwise overlap tests. Touching counts as overlap.

func SphereSphere(a, b Sphere) bool {
	r := a.Radius + b.Radius
	return rl.Vector3DistanceSqr(a.Center, b.Center) <= r*r
}

func SphereOBB(s Sphere, o OBB) bool {
	return o.IntersectsSphere(s.Center, s.Radius)
}

func SphereCapsule(s Sphere, c Capsule) bool {
	r := s.Radius + c.Radius
	return distSqPointSegment(s.Center, c.P0, c.P1) <= r*r
}

func OBBOBB(a, b OBB) bool {
	return a.IntersectsOBB(b)
}

// OBBCapsule reports whether the capsule's core segment comes within its
// radius of the box.
func OBBCapsule(o OBB, c Capsule) bool {
	return segmentOBBDistanceSq(c.P0, c.P1, o) <= c.Radius*c.Radius
}

func CapsuleCapsule(a, b Capsule) bool {
	c1, c2 := ClosestPointsSegmentSegment(a.P0, a.P1, b.P0, b.P1)
	r := a.Radius + b.Radius
	return rl.Vector3DistanceSqr(c1, c2) <= r*r
}
