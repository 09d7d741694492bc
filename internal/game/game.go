// Package game owns the window, the main loop and the player's lifetime.
package game

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"exogame/internal/components"
	"exogame/internal/config"
	"exogame/internal/engine"
	"exogame/internal/hud"
	"exogame/internal/input"
	"exogame/internal/savegame"
	"exogame/internal/scripts"
	"exogame/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config     *config.Config
	World      *world.World
	Renderer   *world.Renderer
	HUD        *hud.HUD
	Controller *input.PlayerController
	Player     *engine.GameObject
	Saves      *savegame.Store
	DebugMode  bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New wires the subsystems but opens no window, so it can run headless.
func New(cfg *config.Config, source input.Source, saves *savegame.Store) (*Game, error) {
	bindings, err := input.NewBindings(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}
	return &Game{
		Config:     cfg,
		Renderer:   world.NewRenderer(),
		HUD:        hud.New(),
		Controller: input.NewPlayerController(source, bindings),
		Saves:      saves,
	}, nil
}

// Start loads the persistent level and spawns a possessed player.
func (g *Game) Start() error {
	w, err := g.loadWorld()
	if err != nil {
		return err
	}
	g.World = w
	g.spawnPlayer()
	return nil
}

func (g *Game) loadWorld() (*world.World, error) {
	w := world.New(g.Config.Scene.Dir, g.HUD)
	if err := w.LoadScene(g.Config.Scene.Main); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

func (g *Game) spawnPlayer() {
	g.Player = scripts.NewPlayer(g.Config.Player, g.Controller)
	g.World.SpawnObject(g.Player)
	g.Controller.Possess(g.Player)
	g.Controller.SetControlRotation(g.Player.Transform.Rotation.Y, 0)
}

// Close releases the world's streaming worker.
func (g *Game) Close() {
	if g.World != nil {
		g.World.Close()
	}
}

func (g *Game) Run() error {
	win := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(win.TargetFPS))
	rl.DisableCursor()

	if err := g.Start(); err != nil {
		return err
	}
	defer g.Close()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	return nil
}

func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	g.Controller.Poll()
	g.handleSystemActions()

	g.World.Update(deltaTime)
	g.HUD.Update(deltaTime)
	g.refreshHUD()

	// Toggle debug mode
	if g.Controller.SystemPressed("Debug") {
		g.DebugMode = !g.DebugMode
		if g.DebugMode {
			stats := g.World.PhysicsWorld.Stats()
			log.Printf("Game: debug on, physics %d bodies, %d statics, %d overlaps", stats.Bodies, stats.Statics, stats.Overlaps)
		}
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleSystemActions() {
	switch {
	case g.Controller.SystemPressed("Save"):
		g.Save()
	case g.Controller.SystemPressed("Load"):
		g.Load()
	case g.Controller.SystemPressed("Restart"):
		if err := g.Restart(); err != nil {
			log.Printf("Game: restart failed: %v", err)
			g.HUD.ShowMessage("Restart failed", rl.Red, 2)
		}
	case g.Controller.SystemPressed("Snapshot"):
		g.Snapshot()
	}
}

func (g *Game) refreshHUD() {
	if health := engine.GetComponent[*scripts.Health](g.Player); health != nil {
		g.HUD.SetHealth(health.CurrentHealth(), health.Initial, health.IsDead())
	}

	var parts []string
	if loaded := g.World.LoadedSegments(); len(loaded) > 0 {
		sort.Strings(loaded)
		parts = append(parts, "Level: "+strings.Join(loaded, ", "))
	}
	if n := g.World.StreamingPending(); n > 0 {
		parts = append(parts, fmt.Sprintf("streaming %d", n))
	}
	if g.Controller.Pawn() == nil {
		parts = append(parts, "Press F1 to restart")
	}
	g.HUD.SetStatus(strings.Join(parts, " | "))
}

// Save writes the player's location and health to the save slot.
func (g *Game) Save() {
	pos := g.Player.WorldPosition()
	var hp float32
	if health := engine.GetComponent[*scripts.Health](g.Player); health != nil {
		hp = health.CurrentHealth()
	}
	save, err := g.Saves.Save([3]float32{pos.X, pos.Y, pos.Z}, hp)
	if err != nil {
		log.Printf("Game: save failed: %v", err)
		g.HUD.ShowMessage("Save failed", rl.Red, 2)
		return
	}
	log.Printf("Game: saved %s at (%.0f, %.0f, %.0f)", save.ID, pos.X, pos.Y, pos.Z)
	g.HUD.ShowMessage("Game saved", scripts.Emerald, 2)
}

// Load moves a living player back to the saved location and health.
func (g *Game) Load() {
	save, err := g.Saves.Load()
	if errors.Is(err, savegame.ErrNoSave) {
		g.HUD.ShowMessage("No save to load", rl.Yellow, 2)
		return
	}
	if err != nil {
		log.Printf("Game: load failed: %v", err)
		g.HUD.ShowMessage("Load failed", rl.Red, 2)
		return
	}

	health := engine.GetComponent[*scripts.Health](g.Player)
	if health != nil && health.IsDead() {
		g.HUD.ShowMessage("Cannot load while dead", rl.Yellow, 2)
		return
	}

	loc := save.PlayerLocation
	g.Player.Transform.Position = rl.Vector3{X: loc[0], Y: loc[1], Z: loc[2]}
	if movement := engine.GetComponent[*components.CharacterController](g.Player); movement != nil {
		movement.SetVelocityY(0)
	}
	if health != nil && save.Health > 0 {
		health.ApplyDelta(save.Health - health.CurrentHealth())
	}
	log.Printf("Game: loaded %s", save.ID)
	g.HUD.ShowMessage("Game loaded", scripts.Emerald, 2)
}

// Restart reloads the persistent level into a fresh world and spawns a new
// player. If the level cannot be read the current world and player stay.
func (g *Game) Restart() error {
	w, err := g.loadWorld()
	if err != nil {
		return err
	}
	old := g.World
	g.Controller.UnPossess()
	g.World = w
	g.spawnPlayer()
	old.Close()
	log.Printf("Game: restarted %q", g.Config.Scene.Main)
	return nil
}

// SnapshotPath is where Snapshot writes the persistent level.
func (g *Game) SnapshotPath() string {
	return g.World.ScenePath(g.Config.Scene.Main + "_snapshot")
}

// Snapshot writes the persistent level as it stands now, crates and all, next
// to the scene it was loaded from.
func (g *Game) Snapshot() {
	path := g.SnapshotPath()
	if err := g.World.SaveScene(path); err != nil {
		log.Printf("Game: snapshot failed: %v", err)
		g.HUD.ShowMessage("Snapshot failed", rl.Red, 2)
		return
	}
	log.Printf("Game: wrote snapshot %s", path)
	g.HUD.ShowMessage("Level snapshot saved", scripts.Emerald, 2)
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.FollowCamera](g.Player)
	if cam == nil {
		return
	}

	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()

	drawStart := time.Now()
	g.Renderer.Draw(camera, g.World)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.HUD.Draw(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	g.DrawDebug()
	rl.EndDrawing()
}

func (g *Game) DrawDebug() {
	if !g.DebugMode {
		return
	}
	x := int32(rl.GetScreenWidth()) - 240
	drawn, culled := g.Renderer.Stats()
	pos := g.Player.WorldPosition()

	rl.DrawFPS(x, 10)
	rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), x, 35, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), x, 55, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Objects: %d drawn, %d culled", drawn, culled), x, 75, 16, rl.Lime)
	stats := g.World.PhysicsWorld.Stats()
	rl.DrawText(fmt.Sprintf("Physics: %d bodies, %d overlaps", stats.Bodies, stats.Overlaps), x, 95, 16, rl.Lime)
	rl.DrawText(fmt.Sprintf("Player:  %.0f %.0f %.0f", pos.X, pos.Y, pos.Z), x, 115, 16, rl.Yellow)
}
