package components

import (
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 3.0 // units/sec - below this, object might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

type Rigidbody struct {
	engine.BaseComponent
	Velocity   rl.Vector3
	Mass       float32
	Bounciness float32 // 0 = no bounce, 1 = perfect bounce
	Friction   float32 // 0 = ice, 1 = stops immediately
	UseGravity bool
	// IsKinematic bodies move only when code moves them; the solver never
	// integrates or pushes them.
	IsKinematic bool

	// Sleep state - sleeping objects skip physics simulation
	IsSleeping bool
	sleepTimer float32 // time spent below velocity threshold
	CanSleep   bool    // whether this object can sleep (default true)
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Velocity:    rl.Vector3{},
		Mass:        1.0,
		Bounciness:  0.2,
		Friction:    0.1,
		UseGravity:  true,
		IsKinematic: false,
		CanSleep:    true,
	}
}

// SimulatesPhysics reports whether the solver currently drives this body.
func (r *Rigidbody) SimulatesPhysics() bool {
	return !r.IsKinematic
}

// SetSimulatePhysics toggles solver control. Turning simulation off freezes
// the body in place; turning it on wakes it.
func (r *Rigidbody) SetSimulatePhysics(simulate bool) {
	r.IsKinematic = !simulate
	r.Velocity = rl.Vector3{}
	r.Wake()
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
