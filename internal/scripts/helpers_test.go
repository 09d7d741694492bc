package scripts

import (
	"exogame/internal/components"
	"exogame/internal/config"
	"exogame/internal/engine"
	"exogame/internal/input"
	"exogame/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type streamRequest struct {
	op   string
	name string
}

type recordingStreamer struct {
	requests []streamRequest
	loaded   map[string]bool
}

func (s *recordingStreamer) Load(name string) {
	s.requests = append(s.requests, streamRequest{"load", name})
	s.loaded[name] = true
}

func (s *recordingStreamer) Unload(name string) {
	s.requests = append(s.requests, streamRequest{"unload", name})
	delete(s.loaded, name)
}

func (s *recordingStreamer) IsLoaded(name string) bool { return s.loaded[name] }

// testWorld is a minimal WorldAccess backed by a real physics world.
type testWorld struct {
	scene     *engine.Scene
	physics   *physics.PhysicsWorld
	streamer  *recordingStreamer
	spawned   []*engine.GameObject
	destroyed []*engine.GameObject
	lines     int
	messages  []string
}

func newTestWorld() *testWorld {
	w := &testWorld{
		scene:    engine.NewScene("Test"),
		physics:  physics.NewPhysicsWorld(),
		streamer: &recordingStreamer{loaded: make(map[string]bool)},
	}
	w.scene.World = w
	return w
}

func (w *testWorld) add(g *engine.GameObject) *engine.GameObject {
	w.scene.AddGameObject(g)
	w.physics.AddObject(g)
	g.Start()
	return g
}

func (w *testWorld) step(deltaTime float32) {
	w.scene.Update(deltaTime)
	w.physics.Update(deltaTime)
}

func (w *testWorld) GetCollidableObjects() []*engine.GameObject {
	return w.scene.GameObjects
}

func (w *testWorld) SpawnObject(g *engine.GameObject) {
	w.spawned = append(w.spawned, g)
	w.add(g)
}

func (w *testWorld) Destroy(g *engine.GameObject) {
	w.destroyed = append(w.destroyed, g)
	w.physics.RemoveObject(g)
	w.scene.RemoveGameObject(g)
}

func (w *testWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *engine.GameObject) (engine.RaycastResult, bool) {
	hit, ok := w.physics.Raycast(origin, direction, maxDistance, ignore)
	return engine.RaycastResult{GameObject: hit.GameObject, Point: hit.Point, Normal: hit.Normal, Distance: hit.Distance}, ok
}

func (w *testWorld) DrawDebugLine(start, end rl.Vector3, color rl.Color, duration float32) {
	w.lines++
}

func (w *testWorld) ShowMessage(text string, color rl.Color, duration float32) {
	w.messages = append(w.messages, text)
}

func (w *testWorld) Streamer() engine.LevelStreamer {
	return w.streamer
}

type fakeInput struct {
	keys    map[int32]bool
	buttons map[rl.MouseButton]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: make(map[int32]bool), buttons: make(map[rl.MouseButton]bool)}
}

func (f *fakeInput) IsKeyDown(key int32) bool                     { return f.keys[key] }
func (f *fakeInput) IsMouseButtonDown(button rl.MouseButton) bool { return f.buttons[button] }
func (f *fakeInput) MouseDelta() rl.Vector2                       { return rl.Vector2{} }
func (f *fakeInput) TouchCount() int                              { return 0 }

func newFloor(w *testWorld) *engine.GameObject {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -50}
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: 10000, Y: 100, Z: 10000}))
	return w.add(floor)
}

func newCrate(w *testWorld, pos rl.Vector3, mobility engine.Mobility) *engine.GameObject {
	crate := engine.NewGameObject("Crate")
	crate.Mobility = mobility
	crate.Transform.Position = pos
	crate.AddComponent(components.NewBoxCollider(rl.Vector3{X: 50, Y: 50, Z: 50}))
	crate.AddComponent(components.NewRigidbody())
	return w.add(crate)
}

// newPlayer spawns a possessed player standing on the floor at the origin.
func newPlayer(w *testWorld) (*engine.GameObject, *Character, *input.PlayerController, *fakeInput) {
	cfg := config.Default()
	bindings, err := input.NewBindings(cfg.Input)
	if err != nil {
		panic(err)
	}
	src := newFakeInput()
	pc := input.NewPlayerController(src, bindings)

	cfg.Player.SpawnPosition = [3]float32{0, cfg.Player.CapsuleHeight / 2, 0}
	g := NewPlayer(cfg.Player, pc)
	w.add(g)
	pc.Possess(g)
	return g, engine.GetComponent[*Character](g), pc, src
}
