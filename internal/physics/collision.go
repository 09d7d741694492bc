package physics

import (
	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ignoresContact reports whether a and b must pass through each other:
// one of them filters the other out, or one is attached below the other.
func ignoresContact(a, b *engine.GameObject) bool {
	if a.IsDescendantOf(b) || b.IsDescendantOf(a) {
		return true
	}
	for _, comp := range a.Components() {
		if f, ok := comp.(engine.CollisionFilter); ok && f.IgnoresCollisionWith(b) {
			return true
		}
	}
	for _, comp := range b.Components() {
		if f, ok := comp.(engine.CollisionFilter); ok && f.IgnoresCollisionWith(a) {
			return true
		}
	}
	return false
}

// solidPair returns both colliders when a and b can collide at all.
func solidPair(a, b *engine.GameObject) (collider, collider, bool) {
	ca, okA := colliderOf(a)
	cb, okB := colliderOf(b)
	if !okA || !okB || ca.trigger || cb.trigger || !b.Active {
		return collider{}, collider{}, false
	}
	if ignoresContact(a, b) {
		return collider{}, collider{}, false
	}
	return ca, cb, true
}

// resolveDynamic handles collision between two simulated rigidbodies
func (p *PhysicsWorld) resolveDynamic(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil {
		return
	}

	// Skip if both objects are sleeping
	if rbA.IsSleeping && rbB.IsSleeping {
		return
	}

	ca, cb, ok := solidPair(a, b)
	if !ok {
		return
	}

	pushOut := ca.bounds.Resolve(cb.bounds)
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Record collision for callbacks
	p.recordCollision(a, b)
	rbA.Wake()
	rbB.Wake()

	// Split the push based on mass ratio
	totalMass := rbA.Mass + rbB.Mass
	ratioA, ratioB := float32(0.5), float32(0.5)
	if totalMass > 0 {
		ratioA = rbB.Mass / totalMass
		ratioB = rbA.Mass / totalMass
	}

	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(pushOut, ratioA))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(pushOut, ratioB))

	// Bounce velocities
	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 || rbA.Mass <= 0 || rbB.Mass <= 0 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	// Relative velocity
	relVel := rl.Vector3Subtract(rbA.Velocity, rbB.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)

	// Only resolve if objects are moving toward each other
	if velAlongNormal > 0 {
		return
	}

	// Restitution (bounciness)
	e := (rbA.Bounciness + rbB.Bounciness) / 2

	// Impulse magnitude
	j := -(1 + e) * velAlongNormal
	j /= (1/rbA.Mass + 1/rbB.Mass)

	impulse := rl.Vector3Scale(normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, 1/rbA.Mass))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, 1/rbB.Mass))
}

// resolveStatic pushes a simulated body out of level geometry
func (p *PhysicsWorld) resolveStatic(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil {
		return
	}

	co, cs, ok := solidPair(obj, static)
	if !ok {
		return
	}

	pushOut := co.bounds.Resolve(cs.bounds)
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Record collision for callbacks
	p.recordCollision(obj, static)

	// Push fully out (static doesn't move)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	// Reflect velocity
	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal < 0 {
		// Cancel the inward component, then bounce back a share of it
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, (1+rb.Bounciness)*velAlongNormal))

		// Apply friction perpendicular to normal
		if normal.Y > 0.5 {
			rb.Velocity.X *= (1 - rb.Friction)
			rb.Velocity.Z *= (1 - rb.Friction)
		}
	}
}

// resolveKinematic handles a kinematic body (the player) pushing a dynamic one
func (p *PhysicsWorld) resolveKinematic(kinematic, obj *engine.GameObject) {
	rbKin := engine.GetComponent[*components.Rigidbody](kinematic)
	rbObj := engine.GetComponent[*components.Rigidbody](obj)
	if rbKin == nil || rbObj == nil {
		return
	}

	cObj, cKin, ok := solidPair(obj, kinematic)
	if !ok {
		return
	}

	pushOut := cObj.bounds.Resolve(cKin.bounds)
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Record collision for callbacks
	p.recordCollision(kinematic, obj)
	rbObj.Wake()

	// Push the dynamic object fully out (kinematic doesn't move)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	// Carry over the kinematic's velocity in the push direction
	kinVelAlongNormal := rl.Vector3DotProduct(rbKin.Velocity, normal)
	if kinVelAlongNormal > 0 {
		rbObj.Velocity = rl.Vector3Add(rbObj.Velocity, rl.Vector3Scale(normal, kinVelAlongNormal*1.5))
	}
}

// detectTriggers records every trigger volume currently overlapped by a body.
// Only bodies visit triggers; level geometry never does.
func (p *PhysicsWorld) detectTriggers() {
	var triggers []*engine.GameObject
	for _, list := range [][]*engine.GameObject{p.Statics, p.Bodies} {
		for _, obj := range list {
			if c, ok := colliderOf(obj); ok && c.trigger && obj.Active {
				triggers = append(triggers, obj)
			}
		}
	}

	for _, trigger := range triggers {
		zone, _ := colliderOf(trigger)
		for _, body := range p.Bodies {
			if body == trigger || !body.Active {
				continue
			}
			c, ok := colliderOf(body)
			if !ok || c.trigger {
				continue
			}
			if zone.bounds.Intersects(c.bounds) {
				p.currentTriggers[TriggerPair{Trigger: trigger, Other: body}] = true
			}
		}
	}
}

// dispatchTriggerCallbacks sends OnTriggerExit for ended overlaps, then
// OnTriggerEnter for new ones. Handlers may destroy objects, so each enter is
// rechecked before it is delivered.
func (p *PhysicsWorld) dispatchTriggerCallbacks() {
	var entered, exited []TriggerPair
	for pair := range p.currentTriggers {
		if !p.activeTriggers[pair] {
			entered = append(entered, pair)
		}
	}
	for pair := range p.activeTriggers {
		if !p.currentTriggers[pair] {
			exited = append(exited, pair)
		}
	}
	p.activeTriggers = p.currentTriggers
	p.currentTriggers = make(map[TriggerPair]bool)

	for _, pair := range exited {
		p.notifyTriggerExit(pair)
	}
	for _, pair := range entered {
		if !p.activeTriggers[pair] {
			continue
		}
		notifyTriggerEnter(pair.Trigger, pair.Other)
		notifyTriggerEnter(pair.Other, pair.Trigger)
	}
}

// IsOverlapping reports whether other is inside trigger as of the last step.
func (p *PhysicsWorld) IsOverlapping(trigger, other *engine.GameObject) bool {
	return p.activeTriggers[TriggerPair{Trigger: trigger, Other: other}]
}

func (p *PhysicsWorld) notifyTriggerExit(pair TriggerPair) {
	notifyTriggerExit(pair.Trigger, pair.Other)
	notifyTriggerExit(pair.Other, pair.Trigger)
}

func notifyTriggerEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerEnter(other)
		}
	}
}

func notifyTriggerExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerExit(other)
		}
	}
}
