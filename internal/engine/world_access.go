package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// LevelStreamer loads and unloads named level segments in the background.
// Requests are fire-and-forget.
type LevelStreamer interface {
	Load(name string)
	Unload(name string)
	IsLoaded(name string) bool
}

// WorldAccess provides components with access to world-level operations
// without creating circular import dependencies.
type WorldAccess interface {
	GetCollidableObjects() []*GameObject
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)

	// Raycast returns the closest solid hit. Triggers are skipped, and so is
	// ignore together with everything attached to it.
	Raycast(origin, direction rl.Vector3, maxDistance float32, ignore *GameObject) (RaycastResult, bool)

	DrawDebugLine(start, end rl.Vector3, color rl.Color, duration float32)
	ShowMessage(text string, color rl.Color, duration float32)
	Streamer() LevelStreamer
}
