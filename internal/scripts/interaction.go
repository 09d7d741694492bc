package scripts

import (
	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const DefaultPickupRange = 700

// InteractionProbe lets its owner grab a movable object in front of it and
// carry it around. Only one object is held at a time.
type InteractionProbe struct {
	engine.BaseComponent
	Range float32

	// Held resolves to nil once the held object leaves the scene.
	Held engine.GameObjectRef

	heldWasSimulating bool
}

func NewInteractionProbe(pickupRange float32) *InteractionProbe {
	return &InteractionProbe{Range: pickupRange}
}

// origin is the centre of the owner's collider, or its position without one.
func (p *InteractionProbe) origin(g *engine.GameObject) rl.Vector3 {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		return box.GetCenter()
	}
	return g.WorldPosition()
}

// BeginPickup traces forward and attaches the first thing hit if it is
// movable and not already attached to something.
func (p *InteractionProbe) BeginPickup() {
	g := p.GetGameObject()
	world := p.World()
	if g == nil || world == nil {
		return
	}
	if p.HeldObject() != nil {
		return
	}

	start := p.origin(g)
	dir := g.WorldForward()
	end := rl.Vector3Add(start, rl.Vector3Scale(dir, p.Range))

	hit, ok := world.Raycast(start, dir, p.Range, g)
	if !ok {
		return
	}
	world.DrawDebugLine(start, end, Emerald, 1)

	target := hit.GameObject
	if target == nil || target.Mobility != engine.Movable || target.Parent != nil {
		return
	}

	p.heldWasSimulating = false
	if rb := engine.GetComponent[*components.Rigidbody](target); rb != nil {
		p.heldWasSimulating = rb.SimulatesPhysics()
		rb.SetSimulatePhysics(false)
	}
	target.AttachKeepWorld(g)
	p.Held.Set(target)
}

// EndPickup drops the held object where it is and hands it back to physics.
func (p *InteractionProbe) EndPickup() {
	target := p.HeldObject()
	p.Held.Clear()
	if target == nil {
		return
	}

	target.DetachKeepWorld()
	if rb := engine.GetComponent[*components.Rigidbody](target); rb != nil {
		rb.SetSimulatePhysics(p.heldWasSimulating)
	}
}

// HeldObject resolves Held against the owner's scene.
func (p *InteractionProbe) HeldObject() *engine.GameObject {
	g := p.GetGameObject()
	if g == nil {
		return nil
	}
	return p.Held.Get(g.Scene)
}
