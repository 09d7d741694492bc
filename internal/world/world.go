// Package world glues the scene, the physics world and level streaming
// together and gives components their engine.WorldAccess.
package world

import (
	"fmt"
	"log"
	"path/filepath"

	"exogame/internal/components"
	"exogame/internal/engine"
	"exogame/internal/physics"
	"exogame/internal/streaming"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MessageSink shows on-screen messages. hud.HUD implements it.
type MessageSink interface {
	ShowMessage(text string, color rl.Color, duration float32)
}

// DebugLine is a world-space line that disappears after its duration.
type DebugLine struct {
	Start, End rl.Vector3
	Color      rl.Color
	Remaining  float32
}

type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Messages     MessageSink

	sceneDir   string
	streamer   *streaming.Streamer[*Segment]
	segments   map[string]*Segment
	persistent map[uint64]bool
	destroyed  []*engine.GameObject
	lines      []DebugLine
}

// New creates an empty world whose streamed segments are read from
// sceneDir/<name>.json.
func New(sceneDir string, messages MessageSink) *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		Messages:     messages,
		sceneDir:     sceneDir,
		segments:     make(map[string]*Segment),
		persistent:   make(map[uint64]bool),
	}
	w.Scene.World = w
	w.streamer = streaming.New[*Segment](fileSource{dir: sceneDir}, w)
	return w
}

// ScenePath returns the file a scene or segment name is read from.
func (w *World) ScenePath(name string) string {
	return filepath.Join(w.sceneDir, name+".json")
}

// LoadScene reads the persistent level and starts its objects.
func (w *World) LoadScene(name string) error {
	objects, err := ReadSceneFile(w.ScenePath(name))
	if err != nil {
		return err
	}
	for _, g := range objects {
		w.persistent[g.UID] = true
		w.add(g)
	}
	w.Scene.Name = name
	log.Printf("World: loaded scene %q (%d objects)", name, len(objects))
	return nil
}

func (w *World) add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
	g.Start()
}

// remove drops g and everything attached to it from physics and the scene.
func (w *World) remove(g *engine.GameObject) {
	children := append([]*engine.GameObject(nil), g.Children...)
	for _, child := range children {
		w.remove(child)
	}
	w.PhysicsWorld.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
	delete(w.persistent, g.UID)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.PhysicsWorld.Update(deltaTime)
	w.flushDestroyed()
	w.streamer.Poll()
	w.ageLines(deltaTime)
}

func (w *World) flushDestroyed() {
	pending := w.destroyed
	w.destroyed = nil
	for _, g := range pending {
		if g.Scene != w.Scene {
			continue
		}
		w.remove(g)
	}
}

func (w *World) ageLines(deltaTime float32) {
	kept := w.lines[:0]
	for _, l := range w.lines {
		l.Remaining -= deltaTime
		if l.Remaining > 0 {
			kept = append(kept, l)
		}
	}
	w.lines = kept
}

// DebugLines returns the lines still on screen.
func (w *World) DebugLines() []DebugLine {
	return w.lines
}

// StreamingPending returns the number of segment requests not yet applied.
func (w *World) StreamingPending() int {
	return w.streamer.Pending()
}

// LoadedSegments returns the names of the attached segments.
func (w *World) LoadedSegments() []string {
	return w.streamer.Loaded()
}

// Close stops the streaming worker.
func (w *World) Close() {
	w.streamer.Close()
}

// --- engine.WorldAccess ---

// GetCollidableObjects returns all GameObjects that have BoxColliders
func (w *World) GetCollidableObjects() []*engine.GameObject {
	var result []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if collider := engine.GetComponent[*components.BoxCollider](g); collider != nil {
			result = append(result, g)
		}
	}
	return result
}

// SpawnObject adds g to the running world and starts it.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.add(g)
}

// Destroy removes g at the end of the current frame.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil {
		return
	}
	for _, d := range w.destroyed {
		if d == g {
			return
		}
	}
	w.destroyed = append(w.destroyed, g)
}

func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (engine.RaycastResult, bool) {
	hit, ok := w.PhysicsWorld.Raycast(origin, direction, maxDistance, ignore)
	if !ok {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{
		GameObject: hit.GameObject,
		Point:      hit.Point,
		Normal:     hit.Normal,
		Distance:   hit.Distance,
	}, true
}

func (w *World) DrawDebugLine(start, end rl.Vector3, color rl.Color, duration float32) {
	w.lines = append(w.lines, DebugLine{Start: start, End: end, Color: color, Remaining: duration})
}

func (w *World) ShowMessage(text string, color rl.Color, duration float32) {
	if w.Messages == nil {
		log.Printf("World: %s", text)
		return
	}
	w.Messages.ShowMessage(text, color, duration)
}

func (w *World) Streamer() engine.LevelStreamer {
	return w.streamer
}

// --- streaming.Sink ---

// Attach adds a streamed segment's objects to the running world.
func (w *World) Attach(name string, seg *Segment) {
	w.segments[name] = seg
	for _, g := range seg.Objects {
		w.add(g)
	}
}

// Detach removes a segment's objects. Objects already destroyed are skipped.
func (w *World) Detach(name string) {
	seg, ok := w.segments[name]
	if !ok {
		return
	}
	delete(w.segments, name)
	for _, g := range seg.Objects {
		if g.Scene == w.Scene {
			w.remove(g)
		}
	}
}

// Segment is a streamed sub-level.
type Segment struct {
	Name    string
	Objects []*engine.GameObject
}

// fileSource reads segments from scene files on the streaming worker.
type fileSource struct {
	dir string
}

func (s fileSource) Read(name string) (*Segment, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid segment name %q", name)
	}
	objects, err := ReadSceneFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return nil, err
	}
	return &Segment{Name: name, Objects: objects}, nil
}
