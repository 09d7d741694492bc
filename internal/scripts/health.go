package scripts

import (
	"exogame/internal/engine"
)

// Damageable is implemented by anything a zone or weapon can hurt or heal.
type Damageable interface {
	ApplyDelta(amount float32)
	CurrentHealth() float32
	IsDead() bool
}

// FindDamageable returns g's Damageable component, or nil.
func FindDamageable(g *engine.GameObject) Damageable {
	return engine.FindComponent[Damageable](g)
}

// Health holds a numeric health value. Reaching zero or below kills the
// owner exactly once; there is no way back.
type Health struct {
	engine.BaseComponent
	Initial float32
	HP      float32

	// OnDeath fires once, on the first lethal delta or Death call.
	OnDeath engine.Event
	// OnChanged fires with the new value after every delta.
	OnChanged engine.EventWithArg[float32]

	dead bool
}

func NewHealth(initial float32) *Health {
	return &Health{Initial: initial, HP: initial}
}

func (h *Health) Start() {
	h.HP = h.Initial
}

func (h *Health) ApplyDelta(amount float32) {
	h.HP += amount
	h.OnChanged.Invoke(h.HP)
	if h.HP <= 0 {
		h.Death()
	}
}

// Death is the terminal transition. Calls after the first are ignored.
func (h *Health) Death() {
	if h.dead {
		return
	}
	h.dead = true
	h.OnDeath.Invoke()
}

func (h *Health) CurrentHealth() float32 {
	return h.HP
}

func (h *Health) IsDead() bool {
	return h.dead
}

func init() {
	engine.RegisterScript("Health", healthFactory, healthSerializer)
}

func healthFactory(props map[string]any) engine.Component {
	return NewHealth(engine.PropFloat(props, "initial", 100))
}

func healthSerializer(c engine.Component) map[string]any {
	h, ok := c.(*Health)
	if !ok {
		return nil
	}
	return map[string]any{
		"initial": h.Initial,
	}
}
