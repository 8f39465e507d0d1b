package debugdraw

import (
	"collide3d/internal/components"
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

const (
	frustumNear = 0.1
	frustumFar  = 1000.0
)

// ExtractFrustum extracts frustum planes for camera at the given aspect ratio.
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := viewMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}

	// Combine view and projection: VP = P * V
	return FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// viewMatrix returns the camera's view matrix in the layout Vector3Transform
// and MatrixPerspective use. raylib-go's MatrixLookAt stores it transposed,
// with the translation in M3/M7/M11.
func viewMatrix(camera rl.Camera3D) rl.Matrix {
	return rl.MatrixTranspose(rl.MatrixLookAt(camera.Position, camera.Target, camera.Up))
}

// FrustumFromMatrix extracts the planes of a combined view-projection matrix.
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	row := func(i int) (rl.Vector3, float32) {
		switch i {
		case 0:
			return rl.Vector3{X: vp.M0, Y: vp.M4, Z: vp.M8}, vp.M12
		case 1:
			return rl.Vector3{X: vp.M1, Y: vp.M5, Z: vp.M9}, vp.M13
		case 2:
			return rl.Vector3{X: vp.M2, Y: vp.M6, Z: vp.M10}, vp.M14
		}
		return rl.Vector3{X: vp.M3, Y: vp.M7, Z: vp.M11}, vp.M15
	}
	w, wd := row(3)

	var f Frustum
	for i := 0; i < 3; i++ {
		r, rd := row(i)
		// row4 + row_i, then row4 - row_i
		f.planes[2*i] = normalizePlane(Plane{normal: rl.Vector3Add(w, r), distance: wd + rd})
		f.planes[2*i+1] = normalizePlane(Plane{normal: rl.Vector3Subtract(w, r), distance: wd - rd})
	}
	return f
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		// If sphere is completely behind any plane, it's outside
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB is conservative: it only rejects boxes whose every corner is
// behind a single plane.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].normal
		// corner furthest along the plane normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}

// Culled forwards only the primitives that can be visible in Frustum.
type Culled struct {
	Next    components.GizmoDrawer
	Frustum Frustum
	Skipped int
}

func (c *Culled) WireSphere(center rl.Vector3, radius float32, color rl.Color) {
	if !c.Frustum.ContainsSphere(center, radius) {
		c.Skipped++
		return
	}
	c.Next.WireSphere(center, radius, color)
}

func (c *Culled) WireBox(center, size rl.Vector3, rotation rl.Matrix, color rl.Color) {
	if !c.Frustum.ContainsAABB(physics.NewOBB(center, size, rotation).Bounds()) {
		c.Skipped++
		return
	}
	c.Next.WireBox(center, size, rotation, color)
}

func (c *Culled) WireCapsule(p0, p1 rl.Vector3, radius float32, color rl.Color) {
	if !c.Frustum.ContainsAABB(physics.Capsule{P0: p0, P1: p1, Radius: radius}.Bounds()) {
		c.Skipped++
		return
	}
	c.Next.WireCapsule(p0, p1, radius, color)
}

func (c *Culled) Line(a, b rl.Vector3, color rl.Color) {
	c.Next.Line(a, b, color)
}

func (c *Culled) Point(p rl.Vector3, color rl.Color) {
	if !c.Frustum.ContainsPoint(p) {
		c.Skipped++
		return
	}
	c.Next.Point(p, color)
}
