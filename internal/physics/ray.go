package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a half-line with a unit-length direction. The fields are private so
// that every Ray outside this package went through NewRay; the zero Ray has no
// direction and misses everything.
type Ray struct {
	origin    rl.Vector3
	direction rl.Vector3
}

// NewRay normalizes direction. Zero-length or non-finite input yields ErrDegenerateRay.
func NewRay(origin, direction rl.Vector3) (Ray, error) {
	if !finiteVec(origin) || !finiteVec(direction) {
		return Ray{}, fmt.Errorf("%w: non-finite origin %v or direction %v", ErrDegenerateRay, origin, direction)
	}
	length := rl.Vector3Length(direction)
	if length < epsilon {
		return Ray{}, fmt.Errorf("%w: zero-length direction %v", ErrDegenerateRay, direction)
	}
	return Ray{origin: origin, direction: rl.Vector3Scale(direction, 1/length)}, nil
}

// MustRay is NewRay for inputs known to be valid; it panics otherwise.
func MustRay(origin, direction rl.Vector3) Ray {
	r, err := NewRay(origin, direction)
	if err != nil {
		panic(err)
	}
	return r
}

// FromRaylib converts a raylib picking ray (e.g. from GetScreenToWorldRay).
func FromRaylib(r rl.Ray) (Ray, error) {
	return NewRay(r.Position, r.Direction)
}

func (r Ray) Origin() rl.Vector3 {
	return r.origin
}

func (r Ray) Direction() rl.Vector3 {
	return r.direction
}

// GetPoint returns origin + direction*t.
func (r Ray) GetPoint(t float32) rl.Vector3 {
	return rl.Vector3Add(r.origin, rl.Vector3Scale(r.direction, t))
}

func (r Ray) ToRaylib() rl.Ray {
	return rl.Ray{Position: r.origin, Direction: r.direction}
}

func (r Ray) valid() bool {
	return r.direction != (rl.Vector3{})
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(origin=%v, dir=%v)", r.origin, r.direction)
}
