package scripts

import "exogame/internal/engine"

// Rotator spins its object around the Y axis. Scenes use it to mark
// interactive props and zone beacons.
type Rotator struct {
	engine.BaseComponent
	Speed float32 // degrees/sec
}

func (r *Rotator) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Rotation.Y += r.Speed * deltaTime
	if g.Transform.Rotation.Y > 360 {
		g.Transform.Rotation.Y -= 360
	}
}

func init() {
	engine.RegisterScript("Rotator", rotatorFactory, rotatorSerializer)
}

func rotatorFactory(props map[string]any) engine.Component {
	return &Rotator{Speed: engine.PropFloat(props, "speed", 90)}
}

func rotatorSerializer(c engine.Component) map[string]any {
	r, ok := c.(*Rotator)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": r.Speed,
	}
}
