package components

import (
	"fmt"

	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

func (m MeshType) String() string {
	switch m {
	case MeshCube:
		return "cube"
	case MeshSphere:
		return "sphere"
	case MeshPlane:
		return "plane"
	}
	return fmt.Sprintf("MeshType(%d)", int(m))
}

// ParseMeshType converts a scene-file mesh name.
func ParseMeshType(s string) (MeshType, error) {
	switch s {
	case "cube":
		return MeshCube, nil
	case "sphere":
		return MeshSphere, nil
	case "plane":
		return MeshPlane, nil
	}
	return MeshCube, fmt.Errorf("unknown mesh %q", s)
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	// Wireframe draws outlines only; used for trigger volumes.
	Wireframe bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}

	switch m.MeshType {
	case MeshCube:
		if m.Wireframe {
			rl.DrawCubeWiresV(pos, size, m.Color)
			return
		}
		rl.DrawCubeV(pos, size, m.Color)
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		if m.Wireframe {
			rl.DrawSphereWires(pos, size.X, 8, 8, m.Color)
			return
		}
		rl.DrawSphere(pos, size.X, m.Color)
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: size.X, Y: size.Z}, m.Color)
	}
}
