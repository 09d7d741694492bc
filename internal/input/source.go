package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Source is the raw device state read once per frame.
type Source interface {
	IsKeyDown(key int32) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	MouseDelta() rl.Vector2
	TouchCount() int
}

// RaylibSource reads the window's devices through raylib.
type RaylibSource struct{}

func (RaylibSource) IsKeyDown(key int32) bool {
	return rl.IsKeyDown(key)
}

func (RaylibSource) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}

func (RaylibSource) MouseDelta() rl.Vector2 {
	return rl.GetMouseDelta()
}

func (RaylibSource) TouchCount() int {
	return int(rl.GetTouchPointCount())
}
