package game

import (
	"os"
	"path/filepath"
	"testing"

	"exogame/internal/config"
	"exogame/internal/engine"
	"exogame/internal/savegame"
	"exogame/internal/scripts"
	"exogame/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `{"objects":[
	{"name":"Floor","position":[0,-50,0],"components":[{"type":"BoxCollider","size":[10000,100,10000]}]},
	{"name":"Lava","position":[2000,150,0],"components":[
		{"type":"BoxCollider","size":[300,300,300],"trigger":true},
		{"type":"Script","name":"EffectZone","props":{"amount":-30}}]}
]}`

const frame = float32(1.0 / 60)

type fakeInput struct {
	keys map[int32]bool
}

func (f *fakeInput) IsKeyDown(key int32) bool                     { return f.keys[key] }
func (f *fakeInput) IsMouseButtonDown(button rl.MouseButton) bool { return false }
func (f *fakeInput) MouseDelta() rl.Vector2                       { return rl.Vector2{} }
func (f *fakeInput) TouchCount() int                              { return 0 }

func newTestGame(t *testing.T) (*Game, *fakeInput) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.json"), []byte(testScene), 0644))

	cfg := config.Default()
	cfg.Scene.Dir = dir
	src := &fakeInput{keys: make(map[int32]bool)}
	g, err := New(cfg, src, savegame.NewStore(nil, "slot0"))
	require.NoError(t, err)
	require.NoError(t, g.Start())
	t.Cleanup(g.Close)
	return g, src
}

// tap holds key for one frame and releases it on the next.
func tap(g *Game, src *fakeInput, key int32) {
	src.keys[key] = true
	g.Update(frame)
	src.keys[key] = false
	g.Update(frame)
}

func health(g *Game) *scripts.Health {
	return engine.GetComponent[*scripts.Health](g.Player)
}

func TestStartSpawnsPossessedPlayer(t *testing.T) {
	g, _ := newTestGame(t)

	require.NotNil(t, g.Player)
	assert.Same(t, g.Player, g.Controller.Pawn())
	assert.Same(t, g.Player, g.World.Scene.FindByName("Player"))
	assert.Equal(t, float32(100), health(g).CurrentHealth())
}

func TestStartFailsWithoutScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Dir = t.TempDir()
	g, err := New(cfg, &fakeInput{keys: map[int32]bool{}}, savegame.NewStore(nil, "slot0"))
	require.NoError(t, err)

	assert.Error(t, g.Start())
	assert.Nil(t, g.World)
}

func TestNewRejectsBadBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Input.Actions["Jump"] = []string{"Spacebar"}
	_, err := New(cfg, &fakeInput{}, savegame.NewStore(nil, "slot0"))
	assert.Error(t, err)
}

func TestSaveThenLoadRestoresPlayer(t *testing.T) {
	g, src := newTestGame(t)
	g.Update(frame)
	tap(g, src, rl.KeyF5)
	saved := g.Player.Transform.Position

	g.Player.Transform.Position = rl.Vector3{X: 800, Y: 96, Z: -400}
	health(g).ApplyDelta(-40)
	tap(g, src, rl.KeyF9)

	assert.InDelta(t, saved.X, g.Player.Transform.Position.X, 1)
	assert.InDelta(t, saved.Y, g.Player.Transform.Position.Y, 2)
	assert.InDelta(t, saved.Z, g.Player.Transform.Position.Z, 1)
	assert.Equal(t, float32(100), health(g).CurrentHealth())
	assert.Equal(t, "Game loaded", g.HUD.Messages()[0].Text)
}

func TestLoadWithoutSave(t *testing.T) {
	g, src := newTestGame(t)
	tap(g, src, rl.KeyF9)

	require.NotEmpty(t, g.HUD.Messages())
	assert.Equal(t, "No save to load", g.HUD.Messages()[0].Text)
}

func TestLavaHurtsAndHUDFollows(t *testing.T) {
	g, _ := newTestGame(t)
	g.Player.Transform.Position.X = 2000
	g.Update(frame)

	assert.Equal(t, float32(70), health(g).CurrentHealth())
	assert.Contains(t, g.HUD.Messages()[0].Text, "Player health : 70")
}

func TestRestartAfterDeath(t *testing.T) {
	g, src := newTestGame(t)
	first, firstWorld := g.Player, g.World
	health(g).ApplyDelta(-1000)
	g.Update(frame)

	assert.Nil(t, g.Controller.Pawn())
	assert.Contains(t, g.HUD.Status(), "Press F1 to restart")

	tap(g, src, rl.KeyF1)

	assert.NotSame(t, first, g.Player)
	assert.NotSame(t, firstWorld, g.World)
	assert.Same(t, g.Player, g.Controller.Pawn())
	assert.True(t, g.Controller.InputEnabled())
	assert.False(t, health(g).IsDead())
	assert.NotContains(t, g.HUD.Status(), "restart")
}

func TestRestartFailureKeepsPlayer(t *testing.T) {
	g, src := newTestGame(t)
	player, w := g.Player, g.World
	require.NoError(t, os.Remove(filepath.Join(g.Config.Scene.Dir, "main.json")))

	err := g.Restart()
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Same(t, player, g.Player)
	assert.Same(t, w, g.World)
	assert.Same(t, player, g.Controller.Pawn())

	tap(g, src, rl.KeyF1)
	assert.Same(t, player, g.Controller.Pawn())
	assert.True(t, g.Controller.InputEnabled())
	assert.NotContains(t, g.HUD.Status(), "restart")
	assert.Equal(t, "Restart failed", g.HUD.Messages()[0].Text)
}

func TestSnapshotWritesLevel(t *testing.T) {
	g, src := newTestGame(t)
	tap(g, src, rl.KeyF6)

	objects, err := world.ReadSceneFile(g.SnapshotPath())
	require.NoError(t, err)
	var names []string
	for _, o := range objects {
		names = append(names, o.Name)
	}
	assert.ElementsMatch(t, []string{"Floor", "Lava"}, names, "the runtime player is not part of the level")
	assert.Equal(t, "Level snapshot saved", g.HUD.Messages()[0].Text)
}

func TestDebugToggle(t *testing.T) {
	g, src := newTestGame(t)
	tap(g, src, rl.KeyF3)
	assert.True(t, g.DebugMode)
	tap(g, src, rl.KeyF3)
	assert.False(t, g.DebugMode)
}
