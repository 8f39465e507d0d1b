package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ClosestPointOnSegment returns the point of [a, b] closest to p and its
// parameter t in [0, 1].
func ClosestPointOnSegment(p, a, b rl.Vector3) (rl.Vector3, float32) {
	ab := rl.Vector3Subtract(b, a)
	denom := rl.Vector3DotProduct(ab, ab)
	if denom < epsilon*epsilon {
		return a, 0
	}
	t := clampf(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/denom, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t)), t
}

func distSqPointSegment(p, a, b rl.Vector3) float32 {
	c, _ := ClosestPointOnSegment(p, a, b)
	d := rl.Vector3Subtract(p, c)
	return rl.Vector3DotProduct(d, d)
}

// ClosestPointsSegmentSegment returns the closest pair of points between
// [p1, q1] and [p2, q2] (Ericson, Real-Time Collision Detection 5.1.9).
func ClosestPointsSegmentSegment(p1, q1, p2, q2 rl.Vector3) (c1, c2 rl.Vector3) {
	d1 := rl.Vector3Subtract(q1, p1)
	d2 := rl.Vector3Subtract(q2, p2)
	r := rl.Vector3Subtract(p1, p2)
	a := rl.Vector3DotProduct(d1, d1)
	e := rl.Vector3DotProduct(d2, d2)
	f := rl.Vector3DotProduct(d2, r)

	var s, t float32
	switch {
	case a <= epsilon && e <= epsilon:
		// Both segments are points
	case a <= epsilon:
		t = clampf(f/e, 0, 1)
	default:
		c := rl.Vector3DotProduct(d1, r)
		if e <= epsilon {
			s = clampf(-c/a, 0, 1)
			break
		}
		b := rl.Vector3DotProduct(d1, d2)
		denom := a*e - b*b
		if denom > 0 {
			s = clampf((b*f-c*e)/denom, 0, 1)
		}
		t = (b*s + f) / e
		if t < 0 {
			t = 0
			s = clampf(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = clampf((b-c)/a, 0, 1)
		}
	}

	c1 = rl.Vector3Add(p1, rl.Vector3Scale(d1, s))
	c2 = rl.Vector3Add(p2, rl.Vector3Scale(d2, t))
	return c1, c2
}

const goldenIterations = 40

// segmentOBBDistanceSq minimizes the squared distance from points of [p, q]
// to the box. The distance to a convex set is convex along a segment, so a
// golden-section search converges to the global minimum.
func segmentOBBDistanceSq(p, q rl.Vector3, o OBB) float32 {
	if segmentIntersectsOBB(p, q, o) {
		return 0
	}
	d := rl.Vector3Subtract(q, p)
	f := func(t float32) float32 {
		return o.DistanceSqToPoint(rl.Vector3Add(p, rl.Vector3Scale(d, t)))
	}

	const invPhi = 0.6180339887
	lo, hi := float32(0), float32(1)
	x1 := hi - invPhi*(hi-lo)
	x2 := lo + invPhi*(hi-lo)
	f1, f2 := f(x1), f(x2)
	for i := 0; i < goldenIterations; i++ {
		if f1 < f2 {
			hi, x2, f2 = x2, x1, f1
			x1 = hi - invPhi*(hi-lo)
			f1 = f(x1)
		} else {
			lo, x1, f1 = x1, x2, f2
			x2 = lo + invPhi*(hi-lo)
			f2 = f(x2)
		}
	}
	return min(f1, f2, f(0), f(1))
}
