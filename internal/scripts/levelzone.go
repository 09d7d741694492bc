package scripts

import (
	"exogame/internal/engine"
)

type LevelState int

const (
	Unloaded LevelState = iota
	Loaded
)

func (s LevelState) String() string {
	if s == Loaded {
		return "loaded"
	}
	return "unloaded"
}

// LevelZone streams Level in while any solid body overlaps its trigger and
// out again when the last one leaves. Requests are fire-and-forget; State is
// the last requested state, not what the streamer has finished.
type LevelZone struct {
	engine.BaseComponent
	Level string

	state     LevelState
	occupants int
}

func (z *LevelZone) State() LevelState {
	return z.state
}

func (z *LevelZone) OnTriggerEnter(other *engine.GameObject) {
	if other == nil {
		return
	}
	z.occupants++
	if z.occupants == 1 {
		z.request(Loaded)
	}
}

func (z *LevelZone) OnTriggerExit(other *engine.GameObject) {
	if other == nil || z.occupants == 0 {
		return
	}
	z.occupants--
	if z.occupants == 0 {
		z.request(Unloaded)
	}
}

func (z *LevelZone) request(state LevelState) {
	z.state = state
	world := z.World()
	if world == nil || z.Level == "" {
		return
	}
	streamer := world.Streamer()
	if streamer == nil {
		return
	}
	if state == Loaded {
		streamer.Load(z.Level)
	} else {
		streamer.Unload(z.Level)
	}
}

func init() {
	engine.RegisterScript("LevelZone", levelZoneFactory, levelZoneSerializer)
}

func levelZoneFactory(props map[string]any) engine.Component {
	return &LevelZone{Level: engine.PropString(props, "level", "")}
}

func levelZoneSerializer(c engine.Component) map[string]any {
	z, ok := c.(*LevelZone)
	if !ok {
		return nil
	}
	return map[string]any{
		"level": z.Level,
	}
}
