package world

import (
	"fmt"
	"slices"

	"collide3d/internal/components"
	"collide3d/internal/config"
	"collide3d/internal/engine"
	"collide3d/internal/logging"
	"collide3d/internal/physics"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World answers collision queries over the colliders of a scene. It keeps a
// registry of colliders in registration order, kept in sync through the
// scene's OnAdded/OnRemoved events. World geometry is never cached: every
// query derives shapes from the current transforms.
type World struct {
	Scene     *engine.Scene
	colliders []entry
	logger    *log.Logger
}

type entry struct {
	object   *engine.GameObject
	collider components.Collider
}

// Hit is the result of a raycast against the world.
type Hit struct {
	Object   *engine.GameObject
	Collider components.Collider
	physics.RaycastHit
}

// Pair is two colliders on different objects whose world shapes overlap.
type Pair struct {
	A, B                 engine.GameObjectRef
	ColliderA, ColliderB components.Collider
}

// Filter limits a query to the colliders it accepts.
type Filter func(g *engine.GameObject, c components.Collider) bool

// WithTag accepts colliders whose object carries tag.
func WithTag(tag string) Filter {
	return func(g *engine.GameObject, _ components.Collider) bool {
		return g.HasTag(tag)
	}
}

// Excluding rejects colliders on g.
func Excluding(g *engine.GameObject) Filter {
	return func(other *engine.GameObject, _ components.Collider) bool {
		return other != g
	}
}

// New wraps scene and registers every object it already holds. A nil logger
// discards output.
func New(scene *engine.Scene, logger *log.Logger) *World {
	if logger == nil {
		logger = logging.Discard()
	}
	w := &World{
		Scene:  scene,
		logger: logger,
	}
	for _, g := range scene.GameObjects {
		w.Register(g)
	}
	scene.OnAdded.AddListener(w.Register)
	scene.OnRemoved.AddListener(w.Unregister)
	return w
}

// Register (re)collects the colliders of g. Call it again after adding
// components to an object that is already in the scene.
func (w *World) Register(g *engine.GameObject) {
	w.Unregister(g)
	for _, c := range engine.GetComponents[components.Collider](g) {
		w.colliders = append(w.colliders, entry{object: g, collider: c})
		w.logger.Debug("registered collider", "object", g.Name, "uid", g.UID, "type", fmt.Sprintf("%T", c))
	}
}

func (w *World) Unregister(g *engine.GameObject) {
	w.colliders = slices.DeleteFunc(w.colliders, func(e entry) bool {
		return e.object == g
	})
}

// Colliders returns the number of registered colliders.
func (w *World) Colliders() int {
	return len(w.colliders)
}

func (w *World) eligible(e entry, filters []Filter) bool {
	if !e.object.Active || e.object.Destroyed() {
		return false
	}
	for _, f := range filters {
		if !f(e.object, e.collider) {
			return false
		}
	}
	return true
}

// Raycast returns the nearest hit within maxDistance. Equal distances keep
// the collider registered first.
func (w *World) Raycast(ray physics.Ray, maxDistance float32, filters ...Filter) (Hit, bool) {
	var best Hit
	found := false
	for _, e := range w.colliders {
		if !w.eligible(e, filters) {
			continue
		}
		var h physics.RaycastHit
		if !e.collider.Raycast(ray, &h, maxDistance) {
			continue
		}
		if !found || h.Distance() < best.Distance() {
			best = Hit{Object: e.object, Collider: e.collider, RaycastHit: h}
			found = true
		}
	}
	return best, found
}

// RaycastAll returns every hit within maxDistance, nearest first.
func (w *World) RaycastAll(ray physics.Ray, maxDistance float32, filters ...Filter) []Hit {
	var hits []Hit
	for _, e := range w.colliders {
		if !w.eligible(e, filters) {
			continue
		}
		var h physics.RaycastHit
		if e.collider.Raycast(ray, &h, maxDistance) {
			hits = append(hits, Hit{Object: e.object, Collider: e.collider, RaycastHit: h})
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Distance() < b.Distance():
			return -1
		case a.Distance() > b.Distance():
			return 1
		}
		return 0
	})
	return hits
}

// Overlap returns the colliders whose world shape intersects shape.
func (w *World) Overlap(shape physics.Shape, filters ...Filter) []components.Collider {
	var result []components.Collider
	for _, e := range w.colliders {
		if !w.eligible(e, filters) {
			continue
		}
		s, err := e.collider.WorldShape()
		if err != nil {
			continue
		}
		if physics.Intersects(shape, s) {
			result = append(result, e.collider)
		}
	}
	return result
}

// CollidingPairs tests every pair of colliders on different objects.
func (w *World) CollidingPairs(filters ...Filter) []Pair {
	type resolved struct {
		entry
		shape physics.Shape
	}
	live := make([]resolved, 0, len(w.colliders))
	for _, e := range w.colliders {
		if !w.eligible(e, filters) {
			continue
		}
		s, err := e.collider.WorldShape()
		if err != nil {
			w.logger.Warn("skipping collider", "object", e.object.Name, "error", err)
			continue
		}
		live = append(live, resolved{entry: e, shape: s})
	}

	var pairs []Pair
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a, b := live[i], live[j]
			if a.object == b.object {
				continue
			}
			if physics.Intersects(a.shape, b.shape) {
				pairs = append(pairs, Pair{
					A:         engine.RefTo(a.object),
					B:         engine.RefTo(b.object),
					ColliderA: a.collider,
					ColliderB: b.collider,
				})
			}
		}
	}
	return pairs
}

// Problems reports every registered collider whose world shape cannot be
// derived, for example a capsule shorter than its diameter.
func (w *World) Problems() []error {
	var errs []error
	for _, e := range w.colliders {
		if _, err := e.collider.WorldShape(); err != nil {
			errs = append(errs, fmt.Errorf("%s (uid %d): %w", e.object.Name, e.object.UID, err))
		}
	}
	return errs
}

// Shapes returns the world shape of every valid, active collider.
func (w *World) Shapes() []ObjectShape {
	var out []ObjectShape
	for _, e := range w.colliders {
		if !w.eligible(e, nil) {
			continue
		}
		s, err := e.collider.WorldShape()
		if err != nil {
			continue
		}
		out = append(out, ObjectShape{Object: e.object, Collider: e.collider, Shape: s})
	}
	return out
}

type ObjectShape struct {
	Object   *engine.GameObject
	Collider components.Collider
	Shape    physics.Shape
}

// DrawGizmos draws every active collider in its kind's colour.
func (w *World) DrawGizmos(d components.GizmoDrawer, palette config.Palette) {
	for _, s := range w.Shapes() {
		s.Collider.DrawGizmo(d, palette.For(s.Shape.Kind()))
	}
}

// MaxDrawnRay caps the drawn length of a ray that hit nothing.
const MaxDrawnRay = 1000

// DrawRay draws ray up to the hit (or maxDistance, capped at MaxDrawnRay)
// and, on a hit, the hit point and a unit normal.
func DrawRay(d components.GizmoDrawer, ray physics.Ray, maxDistance float32, hit *Hit, palette config.Palette) {
	length := maxDistance
	if !(length <= MaxDrawnRay) {
		length = MaxDrawnRay
	}
	end := ray.GetPoint(length)
	if hit != nil {
		end = hit.Point()
	}
	d.Line(ray.Origin(), end, palette.Ray)
	if hit == nil {
		return
	}
	d.Point(hit.Point(), palette.Hit)
	d.Line(hit.Point(), rl.Vector3Add(hit.Point(), hit.Normal()), palette.Hit)
}
