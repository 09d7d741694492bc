// Package hud draws the on-screen overlay: timed debug messages and the
// player's health bar.
package hud

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	defaultMaxMessages = 8
	messageFontSize    = 20
	messageLineHeight  = 24
)

// Message is a line of text that disappears after its duration.
type Message struct {
	Text      string
	Color     rl.Color
	Remaining float32
}

type HUD struct {
	MaxMessages int

	messages  []Message // newest first
	health    float32
	maxHealth float32
	dead      bool
	status    string
}

func New() *HUD {
	return &HUD{MaxMessages: defaultMaxMessages}
}

// ShowMessage adds a line at the top. When the list is full the oldest line
// is dropped.
func (h *HUD) ShowMessage(text string, color rl.Color, duration float32) {
	if duration <= 0 {
		return
	}
	h.messages = append([]Message{{Text: text, Color: color, Remaining: duration}}, h.messages...)
	if h.MaxMessages > 0 && len(h.messages) > h.MaxMessages {
		h.messages = h.messages[:h.MaxMessages]
	}
}

// Update ages messages and drops expired ones.
func (h *HUD) Update(deltaTime float32) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		m.Remaining -= deltaTime
		if m.Remaining > 0 {
			kept = append(kept, m)
		}
	}
	h.messages = kept
}

func (h *HUD) Messages() []Message {
	return h.messages
}

func (h *HUD) SetHealth(health, maxHealth float32, dead bool) {
	h.health = health
	h.maxHealth = maxHealth
	h.dead = dead
}

// SetStatus sets the line shown under the health bar (streamed segments,
// save state). Empty hides it.
func (h *HUD) SetStatus(status string) {
	h.status = status
}

func (h *HUD) Status() string {
	return h.status
}

func (h *HUD) Draw(screenWidth, screenHeight int32) {
	for i, m := range h.messages {
		rl.DrawText(m.Text, 10, 10+int32(i)*messageLineHeight, messageFontSize, m.Color)
	}

	// Crosshair
	cx, cy := screenWidth/2, screenHeight/2
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.RayWhite)

	panel := rl.Rectangle{X: 10, Y: float32(screenHeight) - 90, Width: 280, Height: 80}
	gui.Panel(panel, "Player")

	label := fmt.Sprintf("%.0f", h.health)
	if h.dead {
		label = "DEAD"
	}
	maxHealth := h.maxHealth
	if maxHealth <= 0 {
		maxHealth = 1
	}
	bar := rl.Rectangle{X: panel.X + 60, Y: panel.Y + 32, Width: 160, Height: 16}
	gui.ProgressBar(bar, "HP", label, h.health, 0, maxHealth)

	if h.status != "" {
		gui.Label(rl.Rectangle{X: panel.X + 10, Y: panel.Y + 54, Width: panel.Width - 20, Height: 20}, h.status)
	}
}
