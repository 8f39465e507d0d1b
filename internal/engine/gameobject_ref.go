package engine

// GameObjectRef is a handle to a GameObject by UID. Unlike a pointer it
// cannot dangle: once the object leaves the scene, Get returns nil.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a handle to g (the empty handle for nil).
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference against scene.
// Returns nil if the reference is empty or the object is no longer in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// It does not check that the object still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
