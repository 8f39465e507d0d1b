package physics

import "errors"

var (
	// ErrDegenerateRay is returned when a ray direction has zero length or is not finite.
	ErrDegenerateRay = errors.New("physics: degenerate ray")
	// ErrInvalidShape is returned for shapes whose parameters cannot describe a volume.
	ErrInvalidShape = errors.New("physics: invalid shape")
)
