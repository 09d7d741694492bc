// Package input turns device state into named actions and axes and routes
// them to the possessed pawn.
package input

import (
	"exogame/internal/engine"
)

const maxPitch = 89

// PlayerController owns the control rotation and gates gameplay input.
// Gameplay queries (ActionPressed, Axis, ...) return nothing while no pawn is
// possessed or input is disabled; System queries always answer.
type PlayerController struct {
	source   Source
	bindings *Bindings

	pawn         *engine.GameObject
	inputEnabled bool

	yaw   float32 // degrees around +Y, 0 faces +Z
	pitch float32 // degrees, positive looks up

	prev map[string]bool
	cur  map[string]bool
}

func NewPlayerController(source Source, bindings *Bindings) *PlayerController {
	return &PlayerController{
		source:       source,
		bindings:     bindings,
		inputEnabled: true,
		prev:         make(map[string]bool),
		cur:          make(map[string]bool),
	}
}

// Poll snapshots action states. Call once per frame before scripts update.
func (c *PlayerController) Poll() {
	c.prev, c.cur = c.cur, c.prev
	for _, action := range c.bindings.Actions() {
		c.cur[action] = c.bindings.actionDown(c.source, action)
	}
}

func (c *PlayerController) Possess(pawn *engine.GameObject) {
	c.pawn = pawn
	c.inputEnabled = true
}

// UnPossess releases the pawn. Gameplay input stops reaching it.
func (c *PlayerController) UnPossess() {
	c.pawn = nil
}

func (c *PlayerController) Pawn() *engine.GameObject {
	return c.pawn
}

func (c *PlayerController) SetInputEnabled(enabled bool) {
	c.inputEnabled = enabled
}

func (c *PlayerController) InputEnabled() bool {
	return c.inputEnabled
}

func (c *PlayerController) active() bool {
	return c.pawn != nil && c.inputEnabled
}

// ActionPressed reports a press edge this frame.
func (c *PlayerController) ActionPressed(action string) bool {
	return c.active() && c.SystemPressed(action)
}

// ActionReleased reports a release edge this frame.
func (c *PlayerController) ActionReleased(action string) bool {
	return c.active() && c.prev[action] && !c.cur[action]
}

func (c *PlayerController) ActionDown(action string) bool {
	return c.active() && c.cur[action]
}

func (c *PlayerController) Axis(axis string) float32 {
	if !c.active() {
		return 0
	}
	return c.bindings.axisValue(c.source, axis)
}

// SystemPressed is ActionPressed without the possession gate, for actions
// such as save and restart that work after death.
func (c *PlayerController) SystemPressed(action string) bool {
	return c.cur[action] && !c.prev[action]
}

// AddYawInput turns the control rotation. Positive values turn right.
func (c *PlayerController) AddYawInput(degrees float32) {
	c.yaw -= degrees
	for c.yaw >= 360 {
		c.yaw -= 360
	}
	for c.yaw < 0 {
		c.yaw += 360
	}
}

// AddPitchInput tilts the control rotation. Positive values look up.
func (c *PlayerController) AddPitchInput(degrees float32) {
	c.pitch += degrees
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}
}

// ControlRotation returns yaw and pitch in degrees.
func (c *PlayerController) ControlRotation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

func (c *PlayerController) SetControlRotation(yaw, pitch float32) {
	c.yaw, c.pitch = 0, 0
	c.AddYawInput(-yaw)
	c.AddPitchInput(pitch)
}
