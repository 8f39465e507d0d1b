package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Unbounded can be passed as maxDistance to accept hits at any distance.
const Unbounded float32 = math32.MaxFloat32

const (
	epsilon = 1e-6
	// parallelEpsilon is the squared perpendicular length below which a ray is
	// treated as parallel to a capsule axis.
	parallelEpsilon = 1e-8
)

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func finiteVec(v rl.Vector3) bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func validRadius(r float32) bool {
	return r > 0 && finite(r)
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absVec(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}

// component returns v.X, v.Y or v.Z for i = 0, 1, 2.
func component(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// MaxComponent returns the largest absolute component of v.
func MaxComponent(v rl.Vector3) float32 {
	return math32.Max(math32.Abs(v.X), math32.Max(math32.Abs(v.Y), math32.Abs(v.Z)))
}
