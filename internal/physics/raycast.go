package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes where a ray met a shape. Distance is measured along
// the (unit) ray direction; Normal is always unit length or zero.
type RaycastHit struct {
	distance float32
	point    rl.Vector3
	normal   rl.Vector3
}

// NewRaycastHit stores distance and point as given and normalizes normal.
func NewRaycastHit(distance float32, point, normal rl.Vector3) RaycastHit {
	var h RaycastHit
	h.set(distance, point, normal)
	return h
}

func (h *RaycastHit) set(distance float32, point, normal rl.Vector3) {
	if h == nil {
		return
	}
	h.distance = distance
	h.point = point
	if rl.Vector3Length(normal) > epsilon {
		normal = rl.Vector3Normalize(normal)
	} else {
		normal = rl.Vector3{}
	}
	h.normal = normal
}

func (h RaycastHit) Distance() float32 {
	return h.distance
}

func (h RaycastHit) Point() rl.Vector3 {
	return h.point
}

func (h RaycastHit) Normal() rl.Vector3 {
	return h.normal
}

// sphereRoots returns both parametric intersections of ray with the sphere.
// Rays starting outside and pointing away are rejected early.
func sphereRoots(center rl.Vector3, radius float32, ray Ray) (near, far float32, ok bool) {
	to := rl.Vector3Subtract(ray.origin, center)
	b := rl.Vector3DotProduct(to, ray.direction)
	c := rl.Vector3DotProduct(to, to) - radius*radius
	if c > 0 && b > 0 {
		return 0, 0, false
	}
	discrim := b*b - c
	if discrim < 0 {
		return 0, 0, false
	}
	discrim = math32.Sqrt(discrim)
	return -b - discrim, -b + discrim, true
}

// RaycastSphere intersects ray with a sphere. A ray that starts inside the
// sphere reports the exit point. On a miss hit is left untouched; hit may be nil.
func RaycastSphere(center rl.Vector3, radius float32, ray Ray, hit *RaycastHit, maxDistance float32) bool {
	if !ray.valid() || !validRadius(radius) {
		return false
	}
	near, far, ok := sphereRoots(center, radius, ray)
	if !ok {
		return false
	}
	t := near
	if t < 0 {
		t = far
	}
	if t > maxDistance {
		return false
	}
	pt := ray.GetPoint(t)
	hit.set(t, pt, rl.Vector3Subtract(pt, center))
	return true
}

// raycastSphereExit reports only the far root, for rays leaving a capsule
// through one of its caps.
func raycastSphereExit(center rl.Vector3, radius float32, ray Ray, hit *RaycastHit, maxDistance float32) bool {
	_, far, ok := sphereRoots(center, radius, ray)
	if !ok || far < 0 || far > maxDistance {
		return false
	}
	pt := ray.GetPoint(far)
	hit.set(far, pt, rl.Vector3Subtract(pt, center))
	return true
}

// RaycastOBB intersects ray with an oriented box using the slab method in the
// box's local frame. A ray that starts inside reports the exit face.
func RaycastOBB(o OBB, ray Ray, hit *RaycastHit, maxDistance float32) bool {
	if !ray.valid() {
		return false
	}
	tmin, tmax, nMin, nMax, ok := o.slab(ray.origin, ray.direction)
	if !ok || tmax < 0 {
		return false
	}
	t, normal := tmin, nMin
	if t < 0 {
		t, normal = tmax, nMax
	}
	if t > maxDistance {
		return false
	}
	hit.set(t, ray.GetPoint(t), normal)
	return true
}

// RaycastCapsule intersects ray with the capsule swept by a sphere of radius
// along [p0, p1]. The capsule is treated as an infinite cylinder around the
// axis, clipped to the segment, plus two spherical caps.
func RaycastCapsule(p0, p1 rl.Vector3, radius float32, ray Ray, hit *RaycastHit, maxDistance float32) bool {
	if !ray.valid() || !validRadius(radius) {
		return false
	}

	to := rl.Vector3Subtract(p1, p0)
	toDot := rl.Vector3DotProduct(to, to)
	if toDot < epsilon {
		return RaycastSphere(p0, radius, ray, hit, maxDistance)
	}

	o := rl.Vector3Subtract(ray.origin, p0)
	m := rl.Vector3DotProduct(to, ray.direction) / toDot
	n := rl.Vector3DotProduct(to, o) / toDot

	// Components of the direction and origin offset perpendicular to the axis
	q := rl.Vector3Subtract(ray.direction, rl.Vector3Scale(to, m))
	r := rl.Vector3Subtract(o, rl.Vector3Scale(to, n))

	a := rl.Vector3DotProduct(q, q)
	b := 2 * rl.Vector3DotProduct(q, r)
	c := rl.Vector3DotProduct(r, r) - radius*radius

	inside := distSqPointSegment(ray.origin, p0, p1) <= radius*radius

	if a < parallelEpsilon {
		if inside {
			if m > 0 {
				return raycastSphereExit(p1, radius, ray, hit, maxDistance)
			}
			return raycastSphereExit(p0, radius, ray, hit, maxDistance)
		}
		var h0, h1 RaycastHit
		ok0 := RaycastSphere(p0, radius, ray, &h0, maxDistance)
		ok1 := RaycastSphere(p1, radius, ray, &h1, maxDistance)
		switch {
		case ok0 && (!ok1 || h0.distance <= h1.distance):
			*hitOrDiscard(hit) = h0
		case ok1:
			*hitOrDiscard(hit) = h1
		default:
			return false
		}
		return true
	}

	discrim := b*b - 4*a*c
	if discrim < 0 {
		if !inside {
			return false
		}
		discrim = 0
	}
	sqrtDiscrim := math32.Sqrt(discrim)
	denom := 0.5 / a
	tmin := -(b + sqrtDiscrim) * denom
	tmax := (-b + sqrtDiscrim) * denom
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}

	if inside {
		tkMax := tmax*m + n
		switch {
		case tkMax < 0:
			return raycastSphereExit(p0, radius, ray, hit, maxDistance)
		case tkMax > 1:
			return raycastSphereExit(p1, radius, ray, hit, maxDistance)
		}
		return cylinderHit(p0, to, tmax, tkMax, ray, hit, maxDistance)
	}

	tkMin := tmin*m + n
	switch {
	case tkMin < 0:
		return RaycastSphere(p0, radius, ray, hit, maxDistance)
	case tkMin > 1:
		return RaycastSphere(p1, radius, ray, hit, maxDistance)
	}
	// Entered the cylinder behind an origin that is outside the capsule:
	// the ray is moving away through a cap plane.
	if tmin < 0 {
		return false
	}
	return cylinderHit(p0, to, tmin, tkMin, ray, hit, maxDistance)
}

func cylinderHit(p0, to rl.Vector3, t, tk float32, ray Ray, hit *RaycastHit, maxDistance float32) bool {
	if t > maxDistance {
		return false
	}
	pt := ray.GetPoint(t)
	axisPoint := rl.Vector3Add(p0, rl.Vector3Scale(to, tk))
	hit.set(t, pt, rl.Vector3Subtract(pt, axisPoint))
	return true
}

// hitOrDiscard lets callers assign a whole record when hit may be nil.
func hitOrDiscard(hit *RaycastHit) *RaycastHit {
	if hit == nil {
		return new(RaycastHit)
	}
	return hit
}
