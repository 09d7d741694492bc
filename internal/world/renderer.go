package world

import (
	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ClipNear float32 = 10
	ClipFar  float32 = 20000
)

// Renderer draws mesh renderers inside the camera frustum plus the debug
// lines. It holds no GPU resources.
type Renderer struct {
	Background rl.Color
	ShowGrid   bool

	drawn, culled int
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.SkyBlue, ShowGrid: true}
}

// Draw renders w as seen by camera. Must be called between BeginDrawing and
// EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, w *World) {
	rl.ClearBackground(r.Background)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := ExtractFrustum(camera, aspect, ClipNear, ClipFar)

	rl.BeginMode3D(camera)
	if r.ShowGrid {
		rl.DrawGrid(40, 100)
	}
	r.drawScene(&frustum, w.Scene.GameObjects)
	for _, l := range w.DebugLines() {
		rl.DrawLine3D(l.Start, l.End, l.Color)
	}
	rl.EndMode3D()
}

func (r *Renderer) drawScene(frustum *Frustum, gameObjects []*engine.GameObject) {
	r.drawn, r.culled = 0, 0
	for _, g := range gameObjects {
		renderer := engine.GetComponent[*components.MeshRenderer](g)
		if renderer == nil {
			continue
		}
		center, radius := boundingSphere(g, renderer)
		if !frustum.ContainsSphere(center, radius) {
			r.culled++
			continue
		}
		renderer.Draw()
		r.drawn++
	}
}

// Stats returns how many objects the last Draw rendered and culled.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

func boundingSphere(g *engine.GameObject, m *components.MeshRenderer) (rl.Vector3, float32) {
	scale := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * scale.X, Y: m.Size.Y * scale.Y, Z: m.Size.Z * scale.Z}
	if m.MeshType == components.MeshSphere {
		return g.WorldPosition(), size.X
	}
	return g.WorldPosition(), rl.Vector3Length(size) / 2
}
