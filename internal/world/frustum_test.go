package world

import (
	"testing"

	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func testCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: 100},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

func TestFrustumContainsPointAhead(t *testing.T) {
	f := ExtractFrustum(testCamera(), 1, ClipNear, ClipFar)

	assert.True(t, f.ContainsPoint(rl.Vector3{Z: 500}))
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: -500}), "behind the camera")
	assert.False(t, f.ContainsPoint(rl.Vector3{X: 5000, Z: 500}), "off to the side")
	assert.False(t, f.ContainsPoint(rl.Vector3{Z: ClipFar * 2}), "past the far plane")
}

func TestFrustumSphereStraddlingPlane(t *testing.T) {
	f := ExtractFrustum(testCamera(), 1, ClipNear, ClipFar)

	assert.True(t, f.ContainsSphere(rl.Vector3{Z: -50}, 100))
	assert.False(t, f.ContainsSphere(rl.Vector3{Z: -500}, 100))
}

func TestBoundingSphereCoversMesh(t *testing.T) {
	g := engine.NewGameObject("Box")
	g.Transform.Position = rl.Vector3{X: 10}
	g.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	cube := components.NewMeshRenderer(components.MeshCube, rl.Red, rl.Vector3{X: 100, Y: 100, Z: 100})
	g.AddComponent(cube)

	center, radius := boundingSphere(g, cube)
	assert.Equal(t, rl.Vector3{X: 10}, center)
	assert.InDelta(t, 173.2, radius, 0.1)

	ball := components.NewMeshRenderer(components.MeshSphere, rl.Red, rl.Vector3{X: 8, Y: 8, Z: 8})
	_, radius = boundingSphere(g, ball)
	assert.Equal(t, float32(16), radius)
}
