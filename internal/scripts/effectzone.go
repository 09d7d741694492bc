package scripts

import (
	"fmt"

	"exogame/internal/engine"
)

// EffectZone applies a signed health delta to any Damageable that enters its
// trigger volume. Negative amounts hurt, positive amounts heal.
type EffectZone struct {
	engine.BaseComponent
	Amount float32
}

func (z *EffectZone) OnTriggerEnter(other *engine.GameObject) {
	target := FindDamageable(other)
	if target == nil {
		return
	}
	target.ApplyDelta(z.Amount)

	if world := z.World(); world != nil {
		world.ShowMessage(fmt.Sprintf("Player health : %f", target.CurrentHealth()), Emerald, 1)
	}
}

func (z *EffectZone) OnTriggerExit(other *engine.GameObject) {}

func init() {
	engine.RegisterScript("EffectZone", effectZoneFactory, effectZoneSerializer)
}

func effectZoneFactory(props map[string]any) engine.Component {
	return &EffectZone{Amount: engine.PropFloat(props, "amount", -10)}
}

func effectZoneSerializer(c engine.Component) map[string]any {
	z, ok := c.(*EffectZone)
	if !ok {
		return nil
	}
	return map[string]any{
		"amount": z.Amount,
	}
}
