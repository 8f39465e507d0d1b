package components

import (
	"testing"

	"collide3d/internal/engine"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func v3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func assertVec(t *testing.T, want, got rl.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func attach(c engine.Component, pos, rot, scale rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject("obj")
	g.Transform.Position = pos
	g.Transform.Rotation = rot
	g.Transform.Scale = scale
	g.AddComponent(c)
	return g
}

type recordedCapsule struct {
	p0, p1 rl.Vector3
	radius float32
}

type recordedBox struct {
	center, size rl.Vector3
	rotation     rl.Matrix
}

type fakeDrawer struct {
	spheres  int
	boxes    []recordedBox
	capsules []recordedCapsule
}

func (f *fakeDrawer) WireSphere(rl.Vector3, float32, rl.Color) { f.spheres++ }
func (f *fakeDrawer) WireBox(center, size rl.Vector3, rotation rl.Matrix, _ rl.Color) {
	f.boxes = append(f.boxes, recordedBox{center, size, rotation})
}
func (f *fakeDrawer) WireCapsule(p0, p1 rl.Vector3, radius float32, _ rl.Color) {
	f.capsules = append(f.capsules, recordedCapsule{p0, p1, radius})
}
func (f *fakeDrawer) Line(rl.Vector3, rl.Vector3, rl.Color) {}
func (f *fakeDrawer) Point(rl.Vector3, rl.Color)            {}

func TestGetWorldCapsuleScales(t *testing.T) {
	scales := []struct {
		name  string
		scale rl.Vector3
		// long, cross per axis X, Y, Z
		want [3][2]float32
	}{
		{"identity", v3(1, 1, 1), [3][2]float32{{1, 1}, {1, 1}, {1, 1}}},
		{"uniform", v3(2.5, 2.5, 2.5), [3][2]float32{{2.5, 2.5}, {2.5, 2.5}, {2.5, 2.5}}},
		{"non-uniform", v3(2, 3, 4), [3][2]float32{{2, 4}, {3, 4}, {4, 3}}},
	}
	for _, tt := range scales {
		for i, axis := range []Axis{AxisX, AxisY, AxisZ} {
			t.Run(tt.name+"/"+axis.String(), func(t *testing.T) {
				c := NewCapsuleCollider(0.5, 2)
				c.Direction = axis
				attach(c, v3(0, 0, 0), v3(0, 0, 0), tt.scale)

				_, scale, cross := c.GetWorldCapsule()
				assert.InDelta(t, tt.want[i][1], cross, tol)
				assert.InDelta(t, tt.want[i][1], scale.M0, tol)
				assert.InDelta(t, tt.want[i][0], scale.M5, tol)
				assert.InDelta(t, tt.want[i][1], scale.M10, tol)
			})
		}
	}
}

func TestGetWorldCapsuleRotation(t *testing.T) {
	up := v3(0, 1, 0)
	cases := map[Axis]rl.Vector3{
		AxisX: v3(-1, 0, 0),
		AxisY: v3(0, 1, 0),
		AxisZ: v3(0, 0, 1),
	}
	for axis, want := range cases {
		c := NewCapsuleCollider(0.5, 2)
		c.Direction = axis
		rotation, _, _ := c.GetWorldCapsule()
		assertVec(t, want, rl.Vector3Transform(up, rotation))
	}
}

func TestCapsuleRaycastTopCap(t *testing.T) {
	c := NewCapsuleCollider(1, 4)
	attach(c, v3(0, 0, 0), v3(0, 0, 0), v3(1, 1, 1))

	var hit physics.RaycastHit
	ray := physics.MustRay(v3(0, 5, 0), v3(0, -1, 0))
	require.True(t, c.Raycast(ray, &hit, physics.Unbounded))
	assertVec(t, v3(0, 2, 0), hit.Point())
	assert.InDelta(t, 3, hit.Distance(), tol)
	assertVec(t, v3(0, 1, 0), hit.Normal())
}

func TestCapsuleRaycastTransforms(t *testing.T) {
	tests := []struct {
		name      string
		axis      Axis
		pos, rot  rl.Vector3
		scale     rl.Vector3
		origin    rl.Vector3
		dir       rl.Vector3
		wantPoint rl.Vector3
	}{
		{"x axis", AxisX, v3(0, 0, 0), v3(0, 0, 0), v3(1, 1, 1), v3(5, 0, 0), v3(-1, 0, 0), v3(2, 0, 0)},
		{"z axis", AxisZ, v3(0, 0, 0), v3(0, 0, 0), v3(1, 1, 1), v3(0, 0, -5), v3(0, 0, 1), v3(0, 0, -2)},
		{"long axis scaled", AxisY, v3(0, 0, 0), v3(0, 0, 0), v3(1, 2, 1), v3(0, 5, 0), v3(0, -1, 0), v3(0, 3, 0)},
		{"cross section takes max", AxisY, v3(0, 0, 0), v3(0, 0, 0), v3(3, 1, 1), v3(0, 0, -5), v3(0, 0, 1), v3(0, 0, -3)},
		{"object rotated", AxisY, v3(0, 0, 0), v3(0, 0, 90), v3(1, 1, 1), v3(5, 0, 0), v3(-1, 0, 0), v3(2, 0, 0)},
		{"translated", AxisY, v3(10, 0, 0), v3(0, 0, 0), v3(1, 1, 1), v3(10, -5, 0), v3(0, 1, 0), v3(10, -2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCapsuleCollider(1, 4)
			c.Direction = tt.axis
			attach(c, tt.pos, tt.rot, tt.scale)

			var hit physics.RaycastHit
			require.True(t, c.Raycast(physics.MustRay(tt.origin, tt.dir), &hit, physics.Unbounded))
			assertVec(t, tt.wantPoint, hit.Point())
		})
	}
}

func TestCapsuleInvalid(t *testing.T) {
	c := NewCapsuleCollider(1, 1.5)
	attach(c, v3(0, 0, 0), v3(0, 0, 0), v3(1, 1, 1))

	_, err := c.WorldShape()
	require.ErrorIs(t, err, physics.ErrInvalidShape)
	assert.False(t, c.Raycast(physics.MustRay(v3(0, 5, 0), v3(0, -1, 0)), nil, physics.Unbounded))

	c.Height = 2
	c.Direction = Axis(9)
	_, err = c.WorldShape()
	require.ErrorIs(t, err, ErrUnknownAxis)

	c.Direction = AxisY
	_, err = c.WorldShape()
	require.NoError(t, err, "height == 2*radius is a sphere")
}

func TestDetachedCollider(t *testing.T) {
	c := NewCapsuleCollider(1, 4)
	_, err := c.WorldShape()
	require.ErrorIs(t, err, ErrDetached)

	s := NewSphereCollider(1)
	g := attach(s, v3(0, 0, 0), v3(0, 0, 0), v3(1, 1, 1))
	ray := physics.MustRay(v3(0, 5, 0), v3(0, -1, 0))
	require.True(t, s.Raycast(ray, nil, physics.Unbounded))

	g.Destroy()
	_, err = s.WorldShape()
	require.ErrorIs(t, err, ErrDetached)
	assert.False(t, s.Raycast(ray, nil, physics.Unbounded))
}

func TestSphereColliderWorldShape(t *testing.T) {
	s := NewSphereCollider(1)
	s.Center = v3(1, 0, 0)
	attach(s, v3(1, 2, 3), v3(0, 0, 0), v3(2, 0.5, 1))

	shape, err := s.WorldShape()
	require.NoError(t, err)
	sphere := shape.(physics.Sphere)
	assertVec(t, v3(3, 2, 3), sphere.Center)
	assert.InDelta(t, 2, sphere.Radius, tol)
}

func TestBoxColliderWorldShape(t *testing.T) {
	b := NewBoxCollider(v3(1, 1, 1))
	attach(b, v3(0, 0, 0), v3(0, 0, 0), v3(2, 1, 1))

	var hit physics.RaycastHit
	require.True(t, b.Raycast(physics.MustRay(v3(-5, 0, 0), v3(1, 0, 0)), &hit, physics.Unbounded))
	assertVec(t, v3(-1, 0, 0), hit.Point())
	assertVec(t, v3(-1, 0, 0), hit.Normal())

	bounds, err := b.GetAABB()
	require.NoError(t, err)
	assertVec(t, v3(-1, -0.5, -0.5), bounds.Min)
}

func TestCollidersIntersect(t *testing.T) {
	capsule := NewCapsuleCollider(0.5, 3)
	capsule.Direction = AxisX
	attach(capsule, v3(0, 0, 0), v3(0, 0, 0), v3(1, 1, 1))

	sphere := NewSphereCollider(0.5)
	sphereObj := attach(sphere, v3(1.2, 0.9, 0), v3(0, 0, 0), v3(1, 1, 1))

	box := NewBoxCollider(v3(1, 1, 1))
	attach(box, v3(0, -0.9, 0), v3(0, 45, 0), v3(1, 1, 1))

	assert.True(t, capsule.Intersects(sphere))
	assert.True(t, sphere.Intersects(capsule))
	assert.True(t, capsule.Intersects(box))
	assert.True(t, box.Intersects(capsule))
	assert.False(t, sphere.Intersects(box))
	assert.False(t, box.Intersects(nil))

	sphereObj.Transform.Position = v3(1.2, 1.1, 0)
	assert.False(t, capsule.Intersects(sphere), "world shape follows the transform")
}

func TestDrawGizmoMatchesWorldShape(t *testing.T) {
	capsule := NewCapsuleCollider(1, 4)
	capsule.Direction = AxisZ
	attach(capsule, v3(1, 0, 0), v3(0, 0, 0), v3(1, 1, 2))

	var d fakeDrawer
	capsule.DrawGizmo(&d, rl.Red)
	require.Len(t, d.capsules, 1)
	want, err := capsule.GetCapsule()
	require.NoError(t, err)
	assertVec(t, want.P0, d.capsules[0].p0)
	assertVec(t, want.P1, d.capsules[0].p1)
	assertVec(t, v3(1, 0, -2), want.P0)
	assertVec(t, v3(1, 0, 2), want.P1)
	assert.InDelta(t, 1, d.capsules[0].radius, tol)

	detached := NewCapsuleCollider(1, 4)
	detached.DrawGizmo(&d, rl.Red)
	assert.Len(t, d.capsules, 1)
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"x": AxisX, "Y": AxisY, "z_axis": AxisZ, " Z_AXIS ": AxisZ} {
		got, err := ParseAxis(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseAxis("w")
	require.ErrorIs(t, err, ErrUnknownAxis)

	var a Axis
	require.NoError(t, a.UnmarshalText([]byte("z")))
	assert.Equal(t, AxisZ, a)
	text, err := AxisX.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "X", string(text))
	_, err = Axis(5).MarshalText()
	require.ErrorIs(t, err, ErrUnknownAxis)
}

func TestBoxGizmoMatchesWorldShape(t *testing.T) {
	b := NewBoxCollider(v3(1, 2, 3))
	b.Center = v3(0, 1, 0)
	attach(b, v3(4, 0, 0), v3(0, 90, 0), v3(-2, 1, 1))

	var d fakeDrawer
	b.DrawGizmo(&d, rl.Red)
	require.Len(t, d.boxes, 1)
	got := d.boxes[0]

	want, err := b.GetOBB()
	require.NoError(t, err)
	assertVec(t, want.Center, got.center)
	assertVec(t, v3(2, 2, 3), got.size)
	drawn := physics.NewOBB(got.center, got.size, got.rotation)
	assertVec(t, want.HalfSize, drawn.HalfSize)
	for i := range want.Axes {
		assertVec(t, want.Axes[i], drawn.Axes[i])
	}
	assertVec(t, v3(0, 0, -1), drawn.Axes[0])

	detached := NewBoxCollider(v3(1, 1, 1))
	detached.DrawGizmo(&d, rl.Red)
	assert.Len(t, d.boxes, 1)
}
