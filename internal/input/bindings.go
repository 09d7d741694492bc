package input

import (
	"fmt"
	"slices"
	"strconv"

	"exogame/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type inputKind int

const (
	kindKey inputKind = iota
	kindMouseButton
	kindMouseX
	kindMouseY
	kindTouch
)

type binding struct {
	kind   inputKind
	key    int32
	button rl.MouseButton
	scale  float32
}

var keyNames = map[string]int32{
	"Space":        rl.KeySpace,
	"Enter":        rl.KeyEnter,
	"Escape":       rl.KeyEscape,
	"Tab":          rl.KeyTab,
	"Backspace":    rl.KeyBackspace,
	"LeftControl":  rl.KeyLeftControl,
	"RightControl": rl.KeyRightControl,
	"LeftShift":    rl.KeyLeftShift,
	"RightShift":   rl.KeyRightShift,
	"LeftAlt":      rl.KeyLeftAlt,
	"Up":           rl.KeyUp,
	"Down":         rl.KeyDown,
	"Left":         rl.KeyLeft,
	"Right":        rl.KeyRight,
	"PageUp":       rl.KeyPageUp,
	"PageDown":     rl.KeyPageDown,
}

var mouseNames = map[string]rl.MouseButton{
	"MouseLeft":   rl.MouseLeftButton,
	"MouseRight":  rl.MouseRightButton,
	"MouseMiddle": rl.MouseMiddleButton,
}

func init() {
	// raylib key codes for letters and digits are their ASCII values
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = int32(c)
	}
	for c := '0'; c <= '9'; c++ {
		keyNames[string(c)] = int32(c)
	}
	for i := int32(0); i < 12; i++ {
		keyNames["F"+strconv.Itoa(int(i)+1)] = rl.KeyF1 + i
	}
}

func parseInput(name string, scale float32) (binding, error) {
	if key, ok := keyNames[name]; ok {
		return binding{kind: kindKey, key: key, scale: scale}, nil
	}
	if button, ok := mouseNames[name]; ok {
		return binding{kind: kindMouseButton, button: button, scale: scale}, nil
	}
	switch name {
	case "MouseX":
		return binding{kind: kindMouseX, scale: scale}, nil
	case "MouseY":
		return binding{kind: kindMouseY, scale: scale}, nil
	case "Touch":
		return binding{kind: kindTouch, scale: scale}, nil
	}
	return binding{}, fmt.Errorf("unknown input %q", name)
}

// Bindings maps action and axis names to device inputs.
type Bindings struct {
	actions map[string][]binding
	axes    map[string][]binding
}

// NewBindings resolves the configured input names.
func NewBindings(cfg config.InputConfig) (*Bindings, error) {
	b := &Bindings{
		actions: make(map[string][]binding),
		axes:    make(map[string][]binding),
	}
	for action, names := range cfg.Actions {
		for _, name := range names {
			in, err := parseInput(name, 1)
			if err != nil {
				return nil, fmt.Errorf("action %s: %w", action, err)
			}
			if in.kind == kindMouseX || in.kind == kindMouseY {
				return nil, fmt.Errorf("action %s: %s is an axis", action, name)
			}
			b.actions[action] = append(b.actions[action], in)
		}
	}
	for axis, list := range cfg.Axes {
		for _, ab := range list {
			in, err := parseInput(ab.Input, ab.Scale)
			if err != nil {
				return nil, fmt.Errorf("axis %s: %w", axis, err)
			}
			b.axes[axis] = append(b.axes[axis], in)
		}
	}
	return b, nil
}

// Actions returns the bound action names, sorted.
func (b *Bindings) Actions() []string {
	names := make([]string, 0, len(b.actions))
	for name := range b.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (in binding) down(src Source) bool {
	switch in.kind {
	case kindKey:
		return src.IsKeyDown(in.key)
	case kindMouseButton:
		return src.IsMouseButtonDown(in.button)
	case kindTouch:
		return src.TouchCount() > 0
	}
	return false
}

func (in binding) value(src Source) float32 {
	switch in.kind {
	case kindMouseX:
		return src.MouseDelta().X * in.scale
	case kindMouseY:
		return src.MouseDelta().Y * in.scale
	}
	if in.down(src) {
		return in.scale
	}
	return 0
}

func (b *Bindings) actionDown(src Source, action string) bool {
	for _, in := range b.actions[action] {
		if in.down(src) {
			return true
		}
	}
	return false
}

func (b *Bindings) axisValue(src Source, axis string) float32 {
	var v float32
	for _, in := range b.axes[axis] {
		v += in.value(src)
	}
	return v
}
