package engine

// GameObjectRef is a weak reference by UID. It resolves to nil once the
// object has left the scene, so holders never keep a destroyed object alive.
type GameObjectRef struct {
	UID uint64 // 0 = none
}

func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the ref was set. It does not check that the
// object still exists; use Get for that.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the ref at g, or clears it for nil.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
		return
	}
	r.UID = g.UID
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
