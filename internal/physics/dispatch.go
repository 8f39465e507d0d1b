package physics

import (
	"fmt"
)

type pairTest func(a, b Shape) bool

// pair adapts a typed test to the dispatch signature.
func pair[A, B Shape](test func(A, B) bool) pairTest {
	return func(a, b Shape) bool {
		return test(a.(A), b.(B))
	}
}

// swapped adapts a typed test for the mirrored cell of the table.
func swapped[A, B Shape](test func(A, B) bool) pairTest {
	return func(b, a Shape) bool {
		return test(a.(A), b.(B))
	}
}

var pairTests = [kindCount][kindCount]pairTest{
	KindSphere: {
		KindSphere:  pair(SphereSphere),
		KindBox:     pair(SphereOBB),
		KindCapsule: pair(SphereCapsule),
	},
	KindBox: {
		KindSphere:  swapped(SphereOBB),
		KindBox:     pair(OBBOBB),
		KindCapsule: pair(OBBCapsule),
	},
	KindCapsule: {
		KindSphere:  swapped(SphereCapsule),
		KindBox:     swapped(OBBCapsule),
		KindCapsule: pair(CapsuleCapsule),
	},
}

func init() {
	for i := range pairTests {
		for j := range pairTests[i] {
			if pairTests[i][j] == nil {
				panic(fmt.Sprintf("physics: no overlap test for %v/%v", Kind(i), Kind(j)))
			}
		}
	}
}

// Intersects reports whether two shapes overlap. Invalid or nil shapes never
// overlap anything. The result is symmetric in a and b.
func Intersects(a, b Shape) bool {
	a, b = canonical(a), canonical(b)
	if a == nil || b == nil {
		return false
	}
	if a.Validate() != nil || b.Validate() != nil {
		return false
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return false
	}
	return pairTests[a.Kind()][b.Kind()](a, b)
}

// Raycast casts ray against a single shape.
func Raycast(s Shape, ray Ray, hit *RaycastHit, maxDistance float32) bool {
	s = canonical(s)
	if s == nil || s.Validate() != nil {
		return false
	}
	return s.Raycast(ray, hit, maxDistance)
}
