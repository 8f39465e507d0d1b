package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func v3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func assertVec(t *testing.T, want, got rl.Vector3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tol, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tol, msgAndArgs...)
}

func TestNewRayNormalizes(t *testing.T) {
	r, err := NewRay(v3(1, 2, 3), v3(0, 0, 10))
	require.NoError(t, err)
	assertVec(t, v3(0, 0, 1), r.Direction())
	assertVec(t, v3(1, 2, 8), r.GetPoint(5))
}

func TestNewRayDegenerate(t *testing.T) {
	_, err := NewRay(v3(0, 0, 0), v3(0, 0, 0))
	require.ErrorIs(t, err, ErrDegenerateRay)

	nan := float32(0)
	nan = nan / nan
	_, err = NewRay(v3(0, 0, 0), v3(nan, 1, 0))
	require.ErrorIs(t, err, ErrDegenerateRay)
}

func TestZeroRayMisses(t *testing.T) {
	var r Ray
	assert.False(t, RaycastSphere(v3(0, 0, 0), 1, r, nil, Unbounded))
	assert.False(t, RaycastOBB(NewAxisAlignedOBB(v3(0, 0, 0), v3(1, 1, 1)), r, nil, Unbounded))
	assert.False(t, RaycastCapsule(v3(0, -1, 0), v3(0, 1, 0), 1, r, nil, Unbounded))
}

func TestRaycastHitNormalizesNormal(t *testing.T) {
	h := NewRaycastHit(2.5, v3(1, 2, 3), v3(0, 4, 0))
	assert.Equal(t, float32(2.5), h.Distance())
	assert.Equal(t, v3(1, 2, 3), h.Point())
	assertVec(t, v3(0, 1, 0), h.Normal())

	zero := NewRaycastHit(1, v3(0, 0, 0), v3(0, 0, 0))
	assert.Equal(t, rl.Vector3{}, zero.Normal())
}

func TestRaycastSphere(t *testing.T) {
	center := v3(1, 0, 0)

	t.Run("through center from outside", func(t *testing.T) {
		var hit RaycastHit
		ok := RaycastSphere(center, 2, MustRay(v3(1, 0, -10), v3(0, 0, 1)), &hit, Unbounded)
		require.True(t, ok)
		assert.InDelta(t, 8, hit.Distance(), tol)
		assertVec(t, v3(1, 0, -2), hit.Point())
		assertVec(t, v3(0, 0, -1), hit.Normal())
	})

	t.Run("misses bounding extent", func(t *testing.T) {
		hit := NewRaycastHit(42, v3(9, 9, 9), v3(1, 0, 0))
		ok := RaycastSphere(center, 2, MustRay(v3(10, 10, -10), v3(0, 0, 1)), &hit, Unbounded)
		assert.False(t, ok)
		assert.Equal(t, float32(42), hit.Distance(), "miss must leave the record untouched")
	})

	t.Run("pointing away", func(t *testing.T) {
		assert.False(t, RaycastSphere(center, 2, MustRay(v3(1, 0, -10), v3(0, 0, -1)), nil, Unbounded))
	})

	t.Run("origin inside reports exit", func(t *testing.T) {
		var hit RaycastHit
		ok := RaycastSphere(center, 2, MustRay(center, v3(0, 1, 0)), &hit, Unbounded)
		require.True(t, ok)
		assert.InDelta(t, 2, hit.Distance(), tol)
		assert.Greater(t, hit.Distance(), float32(0))
		assertVec(t, v3(1, 2, 0), hit.Point())
	})

	t.Run("max distance", func(t *testing.T) {
		ray := MustRay(v3(1, 0, -10), v3(0, 0, 1))
		assert.False(t, RaycastSphere(center, 2, ray, nil, 7.9))
		assert.True(t, RaycastSphere(center, 2, ray, nil, 8.1))
	})

	t.Run("invalid radius", func(t *testing.T) {
		ray := MustRay(v3(1, 0, -10), v3(0, 0, 1))
		assert.False(t, RaycastSphere(center, 0, ray, nil, Unbounded))
		assert.False(t, RaycastSphere(center, -1, ray, nil, Unbounded))
	})
}

func TestRaycastOBB(t *testing.T) {
	box := NewAxisAlignedOBB(v3(0, 0, 0), v3(2, 2, 2))

	var hit RaycastHit
	require.True(t, RaycastOBB(box, MustRay(v3(-5, 0, 0), v3(1, 0, 0)), &hit, Unbounded))
	assert.InDelta(t, 4, hit.Distance(), tol)
	assertVec(t, v3(-1, 0, 0), hit.Point())
	assertVec(t, v3(-1, 0, 0), hit.Normal())

	require.True(t, RaycastOBB(box, MustRay(v3(0, 0, 0), v3(0, 0, 1)), &hit, Unbounded))
	assert.InDelta(t, 1, hit.Distance(), tol)
	assertVec(t, v3(0, 0, 1), hit.Normal())

	assert.False(t, RaycastOBB(box, MustRay(v3(-5, 3, 0), v3(1, 0, 0)), nil, Unbounded))
	assert.False(t, RaycastOBB(box, MustRay(v3(-5, 0, 0), v3(-1, 0, 0)), nil, Unbounded))

	rotated := NewOBB(v3(0, 0, 0), v3(2, 2, 2), rl.MatrixRotateY(45*rl.Deg2rad))
	require.True(t, RaycastOBB(rotated, MustRay(v3(-5, 0, 0), v3(1, 0, 0)), &hit, Unbounded))
	assert.InDelta(t, 5-1.41421, hit.Distance(), tol)
}

func TestRaycastCapsule(t *testing.T) {
	p0, p1 := v3(0, -1, 0), v3(0, 1, 0)

	t.Run("top cap from above", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0, 5, 0), v3(0, -1, 0)), &hit, Unbounded))
		assert.InDelta(t, 3, hit.Distance(), tol)
		assertVec(t, v3(0, 2, 0), hit.Point())
		assertVec(t, v3(0, 1, 0), hit.Normal())
	})

	t.Run("bottom cap from below", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0, -5, 0), v3(0, 1, 0)), &hit, Unbounded))
		assertVec(t, v3(0, -2, 0), hit.Point())
	})

	t.Run("parallel offset within radius", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0.5, 5, 0), v3(0, -1, 0)), &hit, Unbounded))
		assert.Greater(t, hit.Point().Y, float32(1))
		assert.InDelta(t, 1, rl.Vector3Distance(hit.Point(), p1), tol)
	})

	t.Run("parallel offset beyond radius", func(t *testing.T) {
		assert.False(t, RaycastCapsule(p0, p1, 1, MustRay(v3(1.5, 5, 0), v3(0, -1, 0)), nil, Unbounded))
	})

	t.Run("parallel pointing away", func(t *testing.T) {
		assert.False(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0, 5, 0), v3(0, 1, 0)), nil, Unbounded))
	})

	t.Run("cylinder side", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(-5, 0.5, 0), v3(1, 0, 0)), &hit, Unbounded))
		assert.InDelta(t, 4, hit.Distance(), tol)
		assertVec(t, v3(-1, 0.5, 0), hit.Point())
		assertVec(t, v3(-1, 0, 0), hit.Normal())
	})

	t.Run("oblique into bottom cap", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(-3, -4, 0), v3(1, 1, 0)), &hit, Unbounded))
		assert.InDelta(t, 3.24264, hit.Distance(), tol)
		assert.Less(t, hit.Point().Y, float32(-1))
		assert.InDelta(t, 1, rl.Vector3Distance(hit.Point(), p0), tol)
	})

	t.Run("side miss", func(t *testing.T) {
		assert.False(t, RaycastCapsule(p0, p1, 1, MustRay(v3(-5, 0, 3), v3(1, 0, 0)), nil, Unbounded))
	})

	t.Run("inside exits through side", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0, 0, 0), v3(1, 0, 0)), &hit, Unbounded))
		assert.InDelta(t, 1, hit.Distance(), tol)
		assertVec(t, v3(1, 0, 0), hit.Point())
	})

	t.Run("inside exits through cap", func(t *testing.T) {
		var hit RaycastHit
		require.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0, 0, 0), v3(0, 1, 0)), &hit, Unbounded))
		assertVec(t, v3(0, 2, 0), hit.Point())
	})

	t.Run("max distance", func(t *testing.T) {
		ray := MustRay(v3(-5, 0, 0), v3(1, 0, 0))
		assert.False(t, RaycastCapsule(p0, p1, 1, ray, nil, 3.9))
		assert.True(t, RaycastCapsule(p0, p1, 1, ray, nil, 4.1))
	})

	t.Run("nil record", func(t *testing.T) {
		assert.True(t, RaycastCapsule(p0, p1, 1, MustRay(v3(0, 5, 0), v3(0, -1, 0)), nil, Unbounded))
	})
}

// A capsule whose height equals twice its radius is a sphere.
func TestRaycastCapsuleDegeneratesToSphere(t *testing.T) {
	center := v3(2, 1, -3)
	rays := []Ray{
		MustRay(v3(2, 10, -3), v3(0, -1, 0)),
		MustRay(v3(-8, 1.3, -3), v3(1, 0, 0)),
		MustRay(v3(-4, -5, 2), v3(1, 1, -0.8)),
		MustRay(center, v3(0.3, -0.2, 1)),
	}
	for i, ray := range rays {
		var sphereHit, capsuleHit RaycastHit
		okSphere := RaycastSphere(center, 1.5, ray, &sphereHit, Unbounded)
		okCapsule := RaycastCapsule(center, center, 1.5, ray, &capsuleHit, Unbounded)
		require.Equal(t, okSphere, okCapsule, "ray %d", i)
		if !okSphere {
			continue
		}
		assert.InDelta(t, sphereHit.Distance(), capsuleHit.Distance(), tol, "ray %d", i)
		assertVec(t, sphereHit.Point(), capsuleHit.Point(), "ray %d", i)
	}
}
