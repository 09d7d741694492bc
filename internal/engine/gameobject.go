package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// Forward returns the unit +Z axis rotated by this transform's rotation.
func (t Transform) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Z: 1}, rotationMatrix(t.Rotation)))
}

var nextUID atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Mobility   Mobility
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

// FindComponent returns the first component implementing interface T.
// Unlike GetComponent, T does not need to satisfy Component.
func FindComponent[T any](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Started() bool {
	return g.started
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// IsDescendantOf reports whether g is ancestor itself or sits below it.
func (g *GameObject) IsDescendantOf(ancestor *GameObject) bool {
	for obj := g; obj != nil; obj = obj.Parent {
		if obj == ancestor {
			return true
		}
	}
	return false
}

// AttachKeepWorld parents g under parent, rewriting the local transform so
// the world transform stays where it was.
func (g *GameObject) AttachKeepWorld(parent *GameObject) {
	if parent == nil || parent == g || parent.IsDescendantOf(g) {
		return
	}
	pos, rot, scale := g.WorldPosition(), g.WorldRotation(), g.WorldScale()
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	parent.AddChild(g)
	g.setWorld(pos, rot, scale)
}

// DetachKeepWorld unparents g without moving it in the world.
func (g *GameObject) DetachKeepWorld() {
	if g.Parent == nil {
		return
	}
	pos, rot, scale := g.WorldPosition(), g.WorldRotation(), g.WorldScale()
	g.Parent.RemoveChild(g)
	g.Transform = Transform{Position: pos, Rotation: rot, Scale: scale}
}

func (g *GameObject) setWorld(pos, rot, scale rl.Vector3) {
	p := g.Parent
	parentPos := p.WorldPosition()
	parentRot := p.WorldRotation()
	parentScale := p.WorldScale()

	inv := rl.MatrixInvert(rotationMatrix(parentRot))
	local := rl.Vector3Transform(rl.Vector3Subtract(pos, parentPos), inv)

	g.Transform.Position = rl.Vector3{
		X: safeDiv(local.X, parentScale.X),
		Y: safeDiv(local.Y, parentScale.Y),
		Z: safeDiv(local.Z, parentScale.Z),
	}
	g.Transform.Rotation = rl.Vector3Subtract(rot, parentRot)
	g.Transform.Scale = rl.Vector3{
		X: safeDiv(scale.X, parentScale.X),
		Y: safeDiv(scale.Y, parentScale.Y),
		Z: safeDiv(scale.Z, parentScale.Z),
	}
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}

// rotationMatrix builds the X-then-Y-then-Z rotation used everywhere a
// transform's Euler angles are applied.
func rotationMatrix(rot rl.Vector3) rl.Matrix {
	rotX := rl.MatrixRotateX(float32(float64(rot.X) * math.Pi / 180))
	rotY := rl.MatrixRotateY(float32(float64(rot.Y) * math.Pi / 180))
	rotZ := rl.MatrixRotateZ(float32(float64(rot.Z) * math.Pi / 180))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, rotationMatrix(parentRot))
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// WorldForward is Transform.Forward evaluated with the world rotation.
func (g *GameObject) WorldForward() rl.Vector3 {
	return Transform{Rotation: g.WorldRotation()}.Forward()
}
