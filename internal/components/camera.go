package components

import (
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowCamera is a third-person camera on a spring arm. The arm hangs
// behind the owner's look direction and pulls in when geometry blocks it.
type FollowCamera struct {
	engine.BaseComponent
	FOV       float32
	ArmLength float32 // desired distance behind the pivot
	ProbeSize float32 // margin kept between camera and blocking geometry

	current float32
}

func NewFollowCamera(armLength float32) *FollowCamera {
	return &FollowCamera{
		FOV:       60,
		ArmLength: armLength,
		ProbeSize: 12,
		current:   armLength,
	}
}

// ArmLengthNow is the arm length after collision pull-in.
func (c *FollowCamera) ArmLengthNow() float32 {
	return c.current
}

func (c *FollowCamera) pivotAndLook() (rl.Vector3, rl.Vector3) {
	g := c.GetGameObject()
	pivot := g.WorldPosition()
	look := g.WorldForward()

	// Look for any LookProvider component on this object or parents
	for obj := g; obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			x, y, z := lp.GetLookDirection()
			look = rl.Vector3{X: x, Y: y, Z: z}
			pivot.Y += lp.GetEyeHeight()
			break
		}
	}
	return pivot, rl.Vector3Normalize(look)
}

func (c *FollowCamera) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	c.current = c.ArmLength

	world := c.World()
	if world == nil {
		return
	}
	pivot, look := c.pivotAndLook()
	back := rl.Vector3Negate(look)
	if hit, ok := world.Raycast(pivot, back, c.ArmLength, g); ok {
		c.current = hit.Distance - c.ProbeSize
		if c.current < 0 {
			c.current = 0
		}
	}
}

func (c *FollowCamera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	pivot, look := c.pivotAndLook()
	return rl.Camera3D{
		Position:   rl.Vector3Subtract(pivot, rl.Vector3Scale(look, c.current)),
		Target:     pivot,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
