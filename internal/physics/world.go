package physics

import (
	"unsafe"

	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects within same or neighboring cells are checked
const CellSize = 500.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(pos.X / CellSize),
		Y: int(pos.Y / CellSize),
		Z: int(pos.Z / CellSize),
	}
}

// CollisionPair represents two objects that are colliding
type CollisionPair struct {
	A, B *engine.GameObject
}

// makePair creates a consistent collision pair (smaller pointer first)
func makePair(a, b *engine.GameObject) CollisionPair {
	ptrA, ptrB := uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b))
	if ptrA > ptrB {
		return CollisionPair{A: b, B: a}
	}
	return CollisionPair{A: a, B: b}
}

// TriggerPair is an ordered (trigger, visitor) overlap.
type TriggerPair struct {
	Trigger, Other *engine.GameObject
}

type PhysicsWorld struct {
	Gravity rl.Vector3
	Bodies  []*engine.GameObject // everything with a Rigidbody, simulated or kinematic
	Statics []*engine.GameObject // no rigidbody (walls, floor, trigger volumes)
	grid    map[CellKey][]*engine.GameObject

	// Collision tracking for callbacks
	activeCollisions  map[CollisionPair]bool // collisions from last frame
	currentCollisions map[CollisionPair]bool // collisions this frame

	activeTriggers  map[TriggerPair]bool
	currentTriggers map[TriggerPair]bool
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:           rl.Vector3{X: 0, Y: -980.0, Z: 0},
		Bodies:            make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		grid:              make(map[CellKey][]*engine.GameObject),
		activeCollisions:  make(map[CollisionPair]bool),
		currentCollisions: make(map[CollisionPair]bool),
		activeTriggers:    make(map[TriggerPair]bool),
		currentTriggers:   make(map[TriggerPair]bool),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if _, ok := colliderOf(g); !ok && engine.GetComponent[*components.Rigidbody](g) == nil {
		return
	}
	if engine.GetComponent[*components.Rigidbody](g) == nil {
		p.Statics = append(p.Statics, g)
	} else {
		p.Bodies = append(p.Bodies, g)
	}
}

// RemoveObject drops g from the simulation. Overlaps it was part of end
// immediately and their exit callbacks fire.
func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	p.Bodies = removeFrom(p.Bodies, g)
	p.Statics = removeFrom(p.Statics, g)

	for pair := range p.activeTriggers {
		if pair.Trigger == g || pair.Other == g {
			delete(p.activeTriggers, pair)
			p.notifyTriggerExit(pair)
		}
	}
	for pair := range p.activeCollisions {
		if pair.A == g || pair.B == g {
			delete(p.activeCollisions, pair)
		}
	}
}

func removeFrom(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// ObjectCount returns the number of tracked objects
func (p *PhysicsWorld) ObjectCount() int {
	return len(p.Bodies) + len(p.Statics)
}

// simulated reports whether the solver owns g's motion this frame.
// Attached (parented) bodies ride on their parent instead.
func simulated(g *engine.GameObject) (*components.Rigidbody, bool) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil || rb.IsKinematic || g.Parent != nil || !g.Active {
		return rb, false
	}
	return rb, true
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	p.currentCollisions = make(map[CollisionPair]bool)
	p.currentTriggers = make(map[TriggerPair]bool)

	var dynamics, kinematics []*engine.GameObject
	for _, obj := range p.Bodies {
		if rb, ok := simulated(obj); ok {
			dynamics = append(dynamics, obj)
			if rb.IsSleeping {
				continue
			}
			if rb.UseGravity {
				rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
			}
			obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, deltaTime))
			rb.TrySleep(deltaTime)
		} else if obj.Active {
			kinematics = append(kinematics, obj)
		}
	}

	// Dynamic vs dynamic via spatial hashing
	p.rebuildGrid(dynamics)
	checked := make(map[CollisionPair]bool)
	for _, obj := range dynamics {
		for _, other := range p.getNeighborObjects(obj) {
			if obj == other {
				continue
			}
			pair := makePair(obj, other)
			if checked[pair] {
				continue
			}
			checked[pair] = true
			p.resolveDynamic(obj, other)
		}
	}

	// Kinematic vs dynamic (kinematic pushes dynamic)
	for _, kinematic := range kinematics {
		for _, obj := range dynamics {
			p.resolveKinematic(kinematic, obj)
		}
	}

	// Dynamic vs static
	for _, obj := range dynamics {
		for _, static := range p.Statics {
			p.resolveStatic(obj, static)
		}
	}

	p.detectTriggers()

	p.dispatchCollisionCallbacks()
	p.dispatchTriggerCallbacks()
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid(objects []*engine.GameObject) {
	for k := range p.grid {
		delete(p.grid, k)
	}
	for _, obj := range objects {
		cell := posToCell(obj.Transform.Position)
		p.grid[cell] = append(p.grid[cell], obj)
	}
}

// getNeighborObjects returns all objects in same cell and 26 neighboring cells
func (p *PhysicsWorld) getNeighborObjects(obj *engine.GameObject) []*engine.GameObject {
	cell := posToCell(obj.Transform.Position)
	var neighbors []*engine.GameObject

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
				neighbors = append(neighbors, p.grid[key]...)
			}
		}
	}
	return neighbors
}

// recordCollision marks a collision pair as active this frame
func (p *PhysicsWorld) recordCollision(a, b *engine.GameObject) {
	p.currentCollisions[makePair(a, b)] = true
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to handlers
func (p *PhysicsWorld) dispatchCollisionCallbacks() {
	for pair := range p.currentCollisions {
		if !p.activeCollisions[pair] {
			notifyCollisionEnter(pair.A, pair.B)
			notifyCollisionEnter(pair.B, pair.A)
		}
	}
	for pair := range p.activeCollisions {
		if !p.currentCollisions[pair] {
			notifyCollisionExit(pair.A, pair.B)
			notifyCollisionExit(pair.B, pair.A)
		}
	}
	p.activeCollisions = p.currentCollisions
}

func notifyCollisionEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

func notifyCollisionExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}

// Stats counts what the last Update worked with.
type Stats struct {
	Bodies, Statics, Overlaps int
}

func (p *PhysicsWorld) Stats() Stats {
	return Stats{Bodies: len(p.Bodies), Statics: len(p.Statics), Overlaps: len(p.activeTriggers)}
}
