package scripts

import (
	"fmt"

	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultProjectileSpeed    = 3000
	DefaultProjectileLifetime = 3
	projectileRadius          = 8
)

// ProjectileSpawner fires one projectile per Fire call. There is no cooldown
// and no ammunition.
type ProjectileSpawner struct {
	engine.BaseComponent
	Speed    float32
	Lifetime float32

	// OnFired receives every spawned projectile.
	OnFired engine.EventWithArg[*engine.GameObject]

	fired int
}

func NewProjectileSpawner(speed, lifetime float32) *ProjectileSpawner {
	return &ProjectileSpawner{Speed: speed, Lifetime: lifetime}
}

// Fire spawns a projectile at the owner's current position and rotation,
// moving along the owner's forward vector.
func (s *ProjectileSpawner) Fire() {
	g := s.GetGameObject()
	world := s.World()
	if g == nil || world == nil {
		return
	}

	s.fired++
	p := engine.NewGameObject(fmt.Sprintf("Projectile_%d", s.fired))
	p.Mobility = engine.Movable
	p.Transform.Position = g.WorldPosition()
	p.Transform.Rotation = g.WorldRotation()

	rb := components.NewRigidbody()
	rb.Velocity = rl.Vector3Scale(g.WorldForward(), s.Speed)
	rb.Mass = 0.2
	rb.Bounciness = 0.5
	rb.CanSleep = false

	p.AddComponent(components.NewSphereCollider(projectileRadius))
	p.AddComponent(rb)
	p.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.Orange, rl.Vector3{X: projectileRadius, Y: projectileRadius, Z: projectileRadius}))
	p.AddComponent(&Projectile{Owner: g, Lifetime: s.Lifetime})

	world.SpawnObject(p)
	s.OnFired.Invoke(p)
}

// Fired returns how many projectiles this spawner has created.
func (s *ProjectileSpawner) Fired() int {
	return s.fired
}

// Projectile removes its object after Lifetime seconds and never collides
// with the object that fired it.
type Projectile struct {
	engine.BaseComponent
	Owner    *engine.GameObject
	Lifetime float32

	age float32
}

func (p *Projectile) Update(deltaTime float32) {
	p.age += deltaTime
	if p.Lifetime <= 0 || p.age < p.Lifetime {
		return
	}
	if world := p.World(); world != nil {
		world.Destroy(p.GetGameObject())
	}
}

func (p *Projectile) IgnoresCollisionWith(other *engine.GameObject) bool {
	return p.Owner != nil && other.IsDescendantOf(p.Owner)
}
