package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box. It is the world-space form of a
// BoxCollider.
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated, unit length)
}

// NewOBB creates an OBB from center, full size and a rotation matrix.
// Negative sizes are mirrored to positive extents.
func NewOBB(center, size rl.Vector3, rotation rl.Matrix) OBB {
	size = absVec(size)
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes: [3]rl.Vector3{
			rl.Vector3Normalize(rl.Vector3{X: rotation.M0, Y: rotation.M1, Z: rotation.M2}),
			rl.Vector3Normalize(rl.Vector3{X: rotation.M4, Y: rotation.M5, Z: rotation.M6}),
			rl.Vector3Normalize(rl.Vector3{X: rotation.M8, Y: rotation.M9, Z: rotation.M10}),
		},
	}
}

// NewAxisAlignedOBB creates an OBB with no rotation.
func NewAxisAlignedOBB(center, size rl.Vector3) OBB {
	return NewOBB(center, size, rl.MatrixIdentity())
}

// Size returns the full extents.
func (o OBB) Size() rl.Vector3 {
	return rl.Vector3Scale(o.HalfSize, 2)
}

// Rotation returns the rotation matrix whose rows are Axes, so that
// NewOBB(o.Center, o.Size(), o.Rotation()) rebuilds o.
func (o OBB) Rotation() rl.Matrix {
	m := rl.MatrixIdentity()
	m.M0, m.M1, m.M2 = o.Axes[0].X, o.Axes[0].Y, o.Axes[0].Z
	m.M4, m.M5, m.M6 = o.Axes[1].X, o.Axes[1].Y, o.Axes[1].Z
	m.M8, m.M9, m.M10 = o.Axes[2].X, o.Axes[2].Y, o.Axes[2].Z
	return m
}

func (OBB) Kind() Kind { return KindBox }

func (OBB) isShape() {}

func (o OBB) Validate() error {
	if !finiteVec(o.Center) || !finiteVec(o.HalfSize) {
		return fmt.Errorf("%w: box center %v half-size %v", ErrInvalidShape, o.Center, o.HalfSize)
	}
	if o.HalfSize.X < 0 || o.HalfSize.Y < 0 || o.HalfSize.Z < 0 {
		return fmt.Errorf("%w: negative box half-size %v", ErrInvalidShape, o.HalfSize)
	}
	for i, axis := range o.Axes {
		if !finiteVec(axis) || rl.Vector3Length(axis) < epsilon {
			return fmt.Errorf("%w: box axis %d is %v", ErrInvalidShape, i, axis)
		}
	}
	return nil
}

func (o OBB) Raycast(ray Ray, hit *RaycastHit, maxDistance float32) bool {
	return RaycastOBB(o, ray, hit, maxDistance)
}

// Bounds returns the world-space AABB enclosing the box.
func (o OBB) Bounds() AABB {
	var extent rl.Vector3
	for i, axis := range o.Axes {
		h := component(o.HalfSize, i)
		extent = rl.Vector3Add(extent, rl.Vector3Scale(absVec(axis), h))
	}
	return AABB{
		Min: rl.Vector3Subtract(o.Center, extent),
		Max: rl.Vector3Add(o.Center, extent),
	}
}

// Corners returns the 8 world-space corners, bottom face first.
func (o OBB) Corners() [8]rl.Vector3 {
	hx, hy, hz := o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z
	local := [8]rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}
	var corners [8]rl.Vector3
	for i, c := range local {
		p := o.Center
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[0], c.X))
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[1], c.Y))
		p = rl.Vector3Add(p, rl.Vector3Scale(o.Axes[2], c.Z))
		corners[i] = p
	}
	return corners
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	// Vector from A's center to B's center
	t := rl.Vector3Subtract(b.Center, a.Center)

	// 15 axes: 3 face normals from each box, 9 edge cross products
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := rl.Vector3CrossProduct(a.Axes[i], b.Axes[j])
			// Skip near-zero axes (parallel edges)
			if rl.Vector3Length(axis) > 0.0001 {
				axis = rl.Vector3Normalize(axis)
				if !overlapOnAxis(a, b, axis, t) {
					return false
				}
			}
		}
	}

	return true
}

// projectedRadius is the half-length of o's projection onto axis.
func (o OBB) projectedRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*math32.Abs(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*math32.Abs(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*math32.Abs(rl.Vector3DotProduct(o.Axes[2], axis))
}

// overlapOnAxis checks if two OBBs overlap when projected onto a given axis
func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	distance := math32.Abs(rl.Vector3DotProduct(t, axis))
	return distance <= a.projectedRadius(axis)+b.projectedRadius(axis)
}

// toLocal expresses a world-space point in the box's axis coordinates,
// relative to its center.
func (o OBB) toLocal(point rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(point, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	return o.DistanceSqToPoint(center) <= radius*radius
}

// DistanceSqToPoint is the squared distance from point to the solid box
// (zero inside).
func (o OBB) DistanceSqToPoint(point rl.Vector3) float32 {
	local := o.toLocal(point)
	dx := local.X - clampf(local.X, -o.HalfSize.X, o.HalfSize.X)
	dy := local.Y - clampf(local.Y, -o.HalfSize.Y, o.HalfSize.Y)
	dz := local.Z - clampf(local.Z, -o.HalfSize.Z, o.HalfSize.Z)
	return dx*dx + dy*dy + dz*dz
}

// ClosestPointOnOBB returns the point of the solid box closest to point
// (point itself when inside).
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	local := o.toLocal(point)

	closestX := clampf(local.X, -o.HalfSize.X, o.HalfSize.X)
	closestY := clampf(local.Y, -o.HalfSize.Y, o.HalfSize.Y)
	closestZ := clampf(local.Z, -o.HalfSize.Z, o.HalfSize.Z)

	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], closestX))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], closestY))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], closestZ))
	return result
}

// slab clips the line origin + t*dir against the three slabs of the box.
// dir need not be unit length. nMin/nMax are the outward normals of the
// faces at tmin/tmax.
func (o OBB) slab(origin, dir rl.Vector3) (tmin, tmax float32, nMin, nMax rl.Vector3, ok bool) {
	tmin, tmax = -Unbounded, Unbounded
	p := o.toLocal(origin)
	for i, axis := range o.Axes {
		e := component(o.HalfSize, i)
		pi := component(p, i)
		f := rl.Vector3DotProduct(axis, dir)
		if math32.Abs(f) < epsilon {
			if pi < -e || pi > e {
				return 0, 0, nMin, nMax, false
			}
			continue
		}
		t1 := (-e - pi) / f
		t2 := (e - pi) / f
		n1 := rl.Vector3Negate(axis)
		n2 := axis
		if t1 > t2 {
			t1, t2 = t2, t1
			n1, n2 = n2, n1
		}
		if t1 > tmin {
			tmin, nMin = t1, n1
		}
		if t2 < tmax {
			tmax, nMax = t2, n2
		}
		if tmin > tmax {
			return 0, 0, nMin, nMax, false
		}
	}
	return tmin, tmax, nMin, nMax, true
}

// segmentIntersectsOBB reports whether any point of [p, q] lies in the box.
func segmentIntersectsOBB(p, q rl.Vector3, o OBB) bool {
	d := rl.Vector3Subtract(q, p)
	if rl.Vector3LengthSqr(d) < epsilon*epsilon {
		return o.DistanceSqToPoint(p) == 0
	}
	tmin, tmax, _, _, ok := o.slab(p, d)
	return ok && tmax >= 0 && tmin <= 1
}
