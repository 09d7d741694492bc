package engine

import "fmt"

// Mobility says whether an object may be repositioned at runtime.
// Only Movable objects can be picked up or simulated.
type Mobility int

const (
	Static Mobility = iota
	Movable
)

func (m Mobility) String() string {
	switch m {
	case Static:
		return "static"
	case Movable:
		return "movable"
	}
	return fmt.Sprintf("Mobility(%d)", int(m))
}

// ParseMobility converts a scene-file mobility name. Empty means Static.
func ParseMobility(s string) (Mobility, error) {
	switch s {
	case "", "static":
		return Static, nil
	case "movable":
		return Movable, nil
	}
	return Static, fmt.Errorf("unknown mobility %q", s)
}
