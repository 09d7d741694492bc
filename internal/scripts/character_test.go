package scripts

import (
	"testing"

	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterDeathTransition(t *testing.T) {
	w := newTestWorld()
	newFloor(w)
	player, character, pc, _ := newPlayer(w)
	crate := newCrate(w, rl.Vector3{Y: 96, Z: 300}, engine.Movable)
	character.Probe.BeginPickup()
	require.NotNil(t, character.Probe.HeldObject())

	character.Health.ApplyDelta(-100)

	assert.Nil(t, pc.Pawn())
	assert.False(t, pc.InputEnabled())
	assert.True(t, character.Movement.Disabled)
	assert.True(t, character.Body.SimulatesPhysics(), "body becomes a ragdoll")
	assert.Nil(t, crate.Parent, "held object is dropped")
	assert.False(t, character.Possessed())

	// The body falls under physics instead of the movement component.
	player.Transform.Position.Y = 400
	for i := 0; i < 120; i++ {
		w.step(1.0 / 60)
	}
	assert.Less(t, player.Transform.Position.Y, float32(120))
}

func TestDeadCharacterIgnoresInput(t *testing.T) {
	w := newTestWorld()
	_, character, pc, src := newPlayer(w)
	character.Health.ApplyDelta(-500)

	src.buttons[rl.MouseLeftButton] = true
	pc.Poll()
	w.step(1.0 / 60)

	assert.Empty(t, w.spawned)
}

func TestCharacterFiresOnPress(t *testing.T) {
	w := newTestWorld()
	_, _, pc, src := newPlayer(w)

	src.buttons[rl.MouseLeftButton] = true
	pc.Poll()
	w.step(1.0 / 60)
	pc.Poll()
	w.step(1.0 / 60)

	assert.Len(t, w.spawned, 1, "holding the button fires once")
}

func TestCharacterCrouchAndDrag(t *testing.T) {
	w := newTestWorld()
	newFloor(w)
	_, character, pc, src := newPlayer(w)
	crate := newCrate(w, rl.Vector3{Y: 96, Z: 300}, engine.Movable)

	src.keys[rl.KeyLeftControl] = true
	src.keys[rl.KeyE] = true
	pc.Poll()
	w.step(1.0 / 60)
	assert.True(t, character.Crouching)
	assert.Same(t, crate, character.Probe.HeldObject())

	src.keys[rl.KeyLeftControl] = false
	src.keys[rl.KeyE] = false
	pc.Poll()
	w.step(1.0 / 60)
	assert.False(t, character.Crouching)
	assert.Nil(t, character.Probe.HeldObject())
}

func TestCharacterWalksRelativeToControlYaw(t *testing.T) {
	w := newTestWorld()
	newFloor(w)
	player, _, pc, src := newPlayer(w)
	pc.SetControlRotation(90, 0)

	src.keys[rl.KeyW] = true
	for i := 0; i < 30; i++ {
		pc.Poll()
		w.step(1.0 / 60)
	}

	assert.Greater(t, player.Transform.Position.X, float32(100))
	assert.InDelta(t, 0, player.Transform.Position.Z, 1)
	assert.InDelta(t, 90, player.Transform.Rotation.Y, 1, "body turns toward movement")
}

func TestCharacterJumpsWhenGrounded(t *testing.T) {
	w := newTestWorld()
	newFloor(w)
	player, _, pc, src := newPlayer(w)
	for i := 0; i < 10; i++ {
		pc.Poll()
		w.step(1.0 / 60)
	}
	startY := player.Transform.Position.Y

	src.keys[rl.KeySpace] = true
	for i := 0; i < 10; i++ {
		pc.Poll()
		w.step(1.0 / 60)
	}

	assert.Greater(t, player.Transform.Position.Y, startY+30)
}

func TestResetViewRecentersCamera(t *testing.T) {
	w := newTestWorld()
	player, character, pc, _ := newPlayer(w)
	player.Transform.Rotation.Y = 45
	pc.SetControlRotation(200, 60)

	character.ResetView()

	yaw, pitch := pc.ControlRotation()
	assert.Equal(t, float32(45), yaw)
	assert.Zero(t, pitch)
}

func TestLookDirectionFollowsControlRotation(t *testing.T) {
	w := newTestWorld()
	_, character, pc, _ := newPlayer(w)

	x, y, z := character.GetLookDirection()
	assertVecNear(t, rl.Vector3{Z: 1}, rl.Vector3{X: x, Y: y, Z: z})

	pc.SetControlRotation(90, 0)
	x, y, z = character.GetLookDirection()
	assertVecNear(t, rl.Vector3{X: 1}, rl.Vector3{X: x, Y: y, Z: z})
}

func TestTurnToward(t *testing.T) {
	assert.Equal(t, float32(10), turnToward(0, 90, 10))
	assert.Equal(t, float32(90), turnToward(85, 90, 10))
	assert.Equal(t, float32(-10), turnToward(0, 270, 10), "shorter arc goes negative")
	assert.Equal(t, float32(350), turnToward(350, 350, 5))
}

func TestYawAxes(t *testing.T) {
	fwd, right := yawAxes(0)
	assertVecNear(t, rl.Vector3{Z: 1}, fwd)
	assertVecNear(t, rl.Vector3{X: -1}, right)

	fwd, _ = yawAxes(90)
	assertVecNear(t, rl.Vector3{X: 1}, fwd)
}
