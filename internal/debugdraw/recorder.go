package debugdraw

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type PrimitiveKind string

const (
	PrimSphere  PrimitiveKind = "sphere"
	PrimBox     PrimitiveKind = "box"
	PrimCapsule PrimitiveKind = "capsule"
	PrimLine    PrimitiveKind = "line"
	PrimPoint   PrimitiveKind = "point"
)

// Primitive is one recorded draw request. Points holds the center for
// spheres, boxes and points, the endpoints for capsules and lines.
type Primitive struct {
	Kind     PrimitiveKind
	Points   []rl.Vector3
	Radius   float32
	Size     rl.Vector3
	Rotation rl.Matrix
	Color    rl.Color
}

// Recorder keeps draw requests in memory instead of rendering them.
type Recorder struct {
	Primitives []Primitive
}

func (r *Recorder) WireSphere(center rl.Vector3, radius float32, color rl.Color) {
	r.add(Primitive{Kind: PrimSphere, Points: []rl.Vector3{center}, Radius: radius, Color: color})
}

func (r *Recorder) WireBox(center, size rl.Vector3, rotation rl.Matrix, color rl.Color) {
	r.add(Primitive{Kind: PrimBox, Points: []rl.Vector3{center}, Size: size, Rotation: rotation, Color: color})
}

func (r *Recorder) WireCapsule(p0, p1 rl.Vector3, radius float32, color rl.Color) {
	r.add(Primitive{Kind: PrimCapsule, Points: []rl.Vector3{p0, p1}, Radius: radius, Color: color})
}

func (r *Recorder) Line(a, b rl.Vector3, color rl.Color) {
	r.add(Primitive{Kind: PrimLine, Points: []rl.Vector3{a, b}, Color: color})
}

func (r *Recorder) Point(p rl.Vector3, color rl.Color) {
	r.add(Primitive{Kind: PrimPoint, Points: []rl.Vector3{p}, Color: color})
}

func (r *Recorder) add(p Primitive) {
	r.Primitives = append(r.Primitives, p)
}

// Count returns how many primitives of kind were recorded.
func (r *Recorder) Count(kind PrimitiveKind) int {
	n := 0
	for _, p := range r.Primitives {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) Reset() {
	r.Primitives = r.Primitives[:0]
}
