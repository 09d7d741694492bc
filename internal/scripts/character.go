package scripts

import (
	"log"
	"math"

	"exogame/internal/components"
	"exogame/internal/engine"
	"exogame/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Character is the player glue: it turns controller actions and axes into
// movement, camera rotation, pickup and firing, and runs the death
// transition when Health runs out.
type Character struct {
	engine.BaseComponent

	Controller *input.PlayerController
	Movement   *components.CharacterController
	Body       *components.Rigidbody
	Health     *Health
	Probe      *InteractionProbe
	Spawner    *ProjectileSpawner

	WalkSpeed        float32
	CrouchSpeed      float32
	BaseTurnRate     float32 // degrees/sec at full TurnRate axis
	BaseLookUpRate   float32 // degrees/sec at full LookUpRate axis
	RotationRate     float32 // degrees/sec the body turns toward movement
	MouseSensitivity float32 // degrees per mouse pixel
	EyeHeight        float32

	Crouching bool
}

func (c *Character) Start() {
	if c.Health != nil {
		c.Health.OnDeath.AddListener(c.onDeath)
	}
}

// Possessed reports whether the controller currently drives this character.
func (c *Character) Possessed() bool {
	g := c.GetGameObject()
	return g != nil && c.Controller != nil && c.Controller.Pawn() == g
}

func (c *Character) Update(deltaTime float32) {
	if !c.Possessed() {
		return
	}
	pc := c.Controller

	if pc.ActionPressed("Jump") || pc.ActionPressed("TouchPressed") {
		c.Jump()
	}
	if pc.ActionReleased("Jump") || pc.ActionReleased("TouchPressed") {
		c.StopJumping()
	}
	if pc.ActionPressed("Crouch") {
		c.Crouching = true
	}
	if pc.ActionReleased("Crouch") {
		c.Crouching = false
	}
	if c.Probe != nil {
		if pc.ActionPressed("Drag") {
			c.Probe.BeginPickup()
		}
		if pc.ActionReleased("Drag") {
			c.Probe.EndPickup()
		}
	}
	if c.Spawner != nil && pc.ActionPressed("Fire") {
		c.Spawner.Fire()
	}
	if pc.ActionPressed("ResetView") {
		c.ResetView()
	}

	pc.AddYawInput(pc.Axis("Turn") * c.MouseSensitivity)
	pc.AddPitchInput(pc.Axis("LookUp") * c.MouseSensitivity)
	c.TurnAtRate(pc.Axis("TurnRate"), deltaTime)
	c.LookUpAtRate(pc.Axis("LookUpRate"), deltaTime)

	c.Move(pc.Axis("MoveForward"), pc.Axis("MoveRight"), deltaTime)
}

func (c *Character) Jump() {
	if c.Movement != nil {
		c.Movement.Jump()
	}
}

func (c *Character) StopJumping() {
	if c.Movement != nil {
		c.Movement.StopJumping()
	}
}

// TurnAtRate turns by rate * BaseTurnRate degrees per second.
func (c *Character) TurnAtRate(rate, deltaTime float32) {
	if c.Controller != nil && rate != 0 {
		c.Controller.AddYawInput(rate * c.BaseTurnRate * deltaTime)
	}
}

// LookUpAtRate pitches by rate * BaseLookUpRate degrees per second.
func (c *Character) LookUpAtRate(rate, deltaTime float32) {
	if c.Controller != nil && rate != 0 {
		c.Controller.AddPitchInput(rate * c.BaseLookUpRate * deltaTime)
	}
}

// ResetView puts the camera back behind the character, level.
func (c *Character) ResetView() {
	g := c.GetGameObject()
	if g == nil || c.Controller == nil {
		return
	}
	c.Controller.SetControlRotation(g.Transform.Rotation.Y, 0)
}

// Move walks relative to the control yaw. forward and right are axis values
// in [-1, 1]; the body turns toward the walk direction at RotationRate.
func (c *Character) Move(forward, right, deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || c.Movement == nil || c.Controller == nil {
		return
	}

	yaw, _ := c.Controller.ControlRotation()
	fwd, rgt := yawAxes(yaw)
	dir := rl.Vector3Add(rl.Vector3Scale(fwd, forward), rl.Vector3Scale(rgt, right))
	if l := rl.Vector3Length(dir); l > 1 {
		dir = rl.Vector3Scale(dir, 1/l)
	}

	speed := c.WalkSpeed
	if c.Crouching {
		speed = c.CrouchSpeed
	}
	c.Movement.SimpleMove(rl.Vector3Scale(dir, speed), deltaTime)
	if c.Body != nil {
		c.Body.Velocity = c.Movement.GetVelocity()
	}

	if dir.X != 0 || dir.Z != 0 {
		target := float32(math.Atan2(float64(dir.X), float64(dir.Z)) * 180 / math.Pi)
		g.Transform.Rotation.Y = turnToward(g.Transform.Rotation.Y, target, c.RotationRate*deltaTime)
	}
}

// yawAxes returns the horizontal forward and right vectors for yaw degrees.
func yawAxes(yaw float32) (forward, right rl.Vector3) {
	rad := float64(yaw) * math.Pi / 180
	sin, cos := float32(math.Sin(rad)), float32(math.Cos(rad))
	forward = rl.Vector3{X: sin, Z: cos}
	right = rl.Vector3{X: -cos, Z: sin}
	return forward, right
}

// turnToward moves angle toward target by at most step degrees along the
// shorter arc.
func turnToward(angle, target, step float32) float32 {
	diff := float32(math.Mod(float64(target-angle), 360))
	if diff > 180 {
		diff -= 360
	} else if diff < -180 {
		diff += 360
	}
	if diff > step {
		diff = step
	} else if diff < -step {
		diff = -step
	}
	return angle + diff
}

// GetLookDirection implements engine.LookProvider with the control rotation.
func (c *Character) GetLookDirection() (x, y, z float32) {
	if c.Controller == nil {
		f := c.GetGameObject().WorldForward()
		return f.X, f.Y, f.Z
	}
	yaw, pitch := c.Controller.ControlRotation()
	yr := float64(yaw) * math.Pi / 180
	pr := float64(pitch) * math.Pi / 180
	return float32(math.Sin(yr) * math.Cos(pr)), float32(math.Sin(pr)), float32(math.Cos(yr) * math.Cos(pr))
}

func (c *Character) GetEyeHeight() float32 {
	if c.Crouching {
		return c.EyeHeight / 2
	}
	return c.EyeHeight
}

// onDeath disables input, drops whatever is held, hands the body to physics
// and releases the controller.
func (c *Character) onDeath() {
	g := c.GetGameObject()

	if c.Possessed() {
		c.Controller.SetInputEnabled(false)
	}
	if c.Probe != nil {
		c.Probe.EndPickup()
	}
	if c.Movement != nil {
		c.Movement.Disabled = true
	}
	if c.Body != nil {
		c.Body.SetSimulatePhysics(true)
	}
	if c.Possessed() {
		c.Controller.UnPossess()
	}

	if g != nil {
		log.Printf("Character: %s died", g.Name)
	}
}
