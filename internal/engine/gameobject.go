package engine

import (
	"math"
	"slices"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// GetComponents returns every component of type T in attach order.
func GetComponents[T Component](g *GameObject) []T {
	var result []T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			result = append(result, typed)
		}
	}
	return result
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Destroyed reports whether the object has been torn down by Destroy.
func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

// Destroy detaches every component from the object and marks it dead.
// Components keep their local parameters but lose the back-reference, so
// any query made through them afterwards fails instead of reading a stale
// transform.
func (g *GameObject) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	for _, c := range g.components {
		c.SetGameObject(nil)
	}
	for _, child := range slices.Clone(g.Children) {
		child.Destroy()
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, RotationMatrix(g.Parent.WorldRotation()))
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

// WorldRotationMatrix is the rotation-only matrix of WorldRotation.
func (g *GameObject) WorldRotationMatrix() rl.Matrix {
	return RotationMatrix(g.WorldRotation())
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// TransformPoint maps a point from the object's local space into world space
// (scale, then rotation, then translation).
func (g *GameObject) TransformPoint(local rl.Vector3) rl.Vector3 {
	scale := g.WorldScale()
	scaled := rl.Vector3{X: local.X * scale.X, Y: local.Y * scale.Y, Z: local.Z * scale.Z}
	return rl.Vector3Add(g.WorldPosition(), rl.Vector3Transform(scaled, g.WorldRotationMatrix()))
}

// RotationMatrix builds a right-handed rotation matrix from euler angles in
// degrees, applied X then Y then Z. raylib's MatrixRotate* turn the other
// way under Vector3Transform, so the angles are negated.
func RotationMatrix(rotation rl.Vector3) rl.Matrix {
	rx := -float64(rotation.X) * math.Pi / 180
	ry := -float64(rotation.Y) * math.Pi / 180
	rz := -float64(rotation.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}
