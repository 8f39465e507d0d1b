package debugdraw

import (
	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sphereRings  = 12
	sphereSlices = 16
	capsuleRings = 6
	pointRadius  = 0.06
)

// Raylib draws gizmos with raylib immediate-mode calls. It must be used
// between BeginMode3D and EndMode3D.
type Raylib struct{}

func (Raylib) WireSphere(center rl.Vector3, radius float32, color rl.Color) {
	rl.DrawSphereWires(center, radius, sphereRings, sphereSlices, color)
}

func (Raylib) WireBox(center, size rl.Vector3, rotation rl.Matrix, color rl.Color) {
	for _, e := range boxEdges(physics.NewOBB(center, size, rotation)) {
		rl.DrawLine3D(e[0], e[1], color)
	}
}

func (Raylib) WireCapsule(p0, p1 rl.Vector3, radius float32, color rl.Color) {
	rl.DrawCapsuleWires(p0, p1, radius, sphereSlices, capsuleRings, color)
}

func (Raylib) Line(a, b rl.Vector3, color rl.Color) {
	rl.DrawLine3D(a, b, color)
}

func (Raylib) Point(p rl.Vector3, color rl.Color) {
	rl.DrawSphere(p, pointRadius, color)
}

// boxEdges returns the 12 edges of o; corner order follows OBB.Corners.
func boxEdges(o physics.OBB) [12][2]rl.Vector3 {
	c := o.Corners()
	return [12][2]rl.Vector3{
		{c[0], c[1]}, {c[1], c[2]}, {c[2], c[3]}, {c[3], c[0]},
		{c[4], c[5]}, {c[5], c[6]}, {c[6], c[7]}, {c[7], c[4]},
		{c[0], c[4]}, {c[1], c[5]}, {c[2], c[6]}, {c[3], c[7]},
	}
}
