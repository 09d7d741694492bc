package physics

import (
	"exogame/internal/components"
	"exogame/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Resolve(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Penetration depth in each direction
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	// Find the axis with minimum penetration, that's the push-out direction
	min := dx1
	result := rl.Vector3{X: dx1}

	if dx2 < min {
		min = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dy1 < min {
		min = dy1
		result = rl.Vector3{Y: dy1}
	}
	if dy2 < min {
		min = dy2
		result = rl.Vector3{Y: -dy2}
	}
	if dz1 < min {
		min = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < min {
		result = rl.Vector3{Z: -dz2}
	}

	return result
}

// collider describes the single collider the solver uses for an object.
// Spheres are treated as their bounding cube for contact resolution.
type collider struct {
	bounds  AABB
	trigger bool
	box     *components.BoxCollider
	sphere  *components.SphereCollider
}

func colliderOf(g *engine.GameObject) (collider, bool) {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		return collider{
			bounds:  NewAABBFromCenter(box.GetCenter(), box.GetWorldSize()),
			trigger: box.IsTrigger,
			box:     box,
		}, true
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		d := sphere.GetWorldRadius() * 2
		return collider{
			bounds:  NewAABBFromCenter(sphere.GetCenter(), rl.Vector3{X: d, Y: d, Z: d}),
			trigger: sphere.IsTrigger,
			sphere:  sphere,
		}, true
	}
	return collider{}, false
}
