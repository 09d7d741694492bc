// Stress test for the physics step: a pile of crates on a floor bombarded by
// projectiles, timed at increasing object counts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"exogame/internal/components"
	"exogame/internal/engine"
	"exogame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	steps := flag.Int("steps", 120, "physics steps per run")
	flag.Parse()

	testCounts := []int{100, 500, 1000, 2000, 5000}
	for _, count := range testCounts {
		run(count, *steps)
	}
}

func run(count, steps int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	world := physics.NewPhysicsWorld()

	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -50}
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: 100000, Y: 100, Z: 100000}))
	world.AddObject(floor)

	// Spawn area grows with count to keep density reasonable
	spawnSize := float32(2000) + float32(count)*2

	for i := 0; i < count; i++ {
		g := engine.NewGameObject(fmt.Sprintf("Body_%d", i))
		g.Mobility = engine.Movable
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 50 + rng.Float32()*500,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		rb := components.NewRigidbody()
		if i%4 == 0 {
			// Every fourth body is a projectile flying sideways
			g.AddComponent(components.NewSphereCollider(8))
			rb.Mass = 0.2
			rb.CanSleep = false
			rb.Velocity = rl.Vector3{X: 3000 * (rng.Float32() - 0.5), Z: 3000 * (rng.Float32() - 0.5)}
		} else {
			g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 50, Y: 50, Z: 50}))
		}
		g.AddComponent(rb)
		world.AddObject(g)
	}

	const dt = float32(1.0 / 60)
	start := time.Now()
	for i := 0; i < steps; i++ {
		world.Update(dt)
	}
	perStep := time.Since(start) / time.Duration(steps)

	sleeping := 0
	for _, g := range world.Bodies {
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil && rb.IsSleeping {
			sleeping++
		}
	}

	fmt.Printf("%5d bodies: %10v per step | %5d asleep after %d steps\n",
		count, perStep.Round(time.Microsecond), sleeping, steps)
}
