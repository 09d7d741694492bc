package scripts

import (
	"exogame/internal/components"
	"exogame/internal/config"
	"exogame/internal/engine"
	"exogame/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NewPlayer builds the player character with every component it owns. The
// controller is not possessed here; the caller decides when to possess.
func NewPlayer(cfg config.PlayerConfig, pc *input.PlayerController) *engine.GameObject {
	g := engine.NewGameObject("Player")
	g.Tags = []string{"Player"}
	g.Mobility = engine.Movable
	g.Transform.Position = rl.Vector3{X: cfg.SpawnPosition[0], Y: cfg.SpawnPosition[1], Z: cfg.SpawnPosition[2]}

	size := rl.Vector3{X: cfg.CapsuleRadius * 2, Y: cfg.CapsuleHeight, Z: cfg.CapsuleRadius * 2}

	movement := components.NewCharacterController()
	movement.Height = cfg.CapsuleHeight
	movement.Radius = cfg.CapsuleRadius
	movement.JumpVelocity = cfg.JumpVelocity
	movement.AirControl = cfg.AirControl

	// Kinematic while alive; death switches it to simulated (ragdoll).
	body := components.NewRigidbody()
	body.IsKinematic = true
	body.Mass = 80
	body.Bounciness = 0

	health := NewHealth(cfg.MaxHealth)
	probe := NewInteractionProbe(cfg.PickupRange)
	spawner := NewProjectileSpawner(cfg.ProjectileSpeed, cfg.ProjectileLifetime)

	character := &Character{
		Controller:       pc,
		Movement:         movement,
		Body:             body,
		Health:           health,
		Probe:            probe,
		Spawner:          spawner,
		WalkSpeed:        cfg.WalkSpeed,
		CrouchSpeed:      cfg.CrouchSpeed,
		BaseTurnRate:     cfg.TurnRate,
		BaseLookUpRate:   cfg.LookUpRate,
		RotationRate:     cfg.RotationRate,
		MouseSensitivity: cfg.MouseSensitivity,
		EyeHeight:        cfg.CapsuleHeight / 3,
	}

	g.AddComponent(components.NewBoxCollider(size))
	g.AddComponent(body)
	g.AddComponent(movement)
	g.AddComponent(health)
	g.AddComponent(probe)
	g.AddComponent(spawner)
	g.AddComponent(character)
	g.AddComponent(components.NewFollowCamera(cfg.ArmLength))
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.NewColor(60, 110, 200, 255), size))
	return g
}
