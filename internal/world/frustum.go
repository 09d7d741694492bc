package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six clip planes of a camera: left, right, bottom, top,
// near and far.
type Frustum struct {
	planes [6]Plane
}

// Plane is ax + by + cz + d = 0 with a unit normal.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of camera for a viewport with the given
// aspect ratio, using the Gribb/Hartmann row combinations of the
// view-projection matrix.
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}

	vp := rl.MatrixMultiply(view, proj)

	var f Frustum
	f.planes[0] = plane(vp.M3+vp.M0, vp.M7+vp.M4, vp.M11+vp.M8, vp.M15+vp.M12)
	f.planes[1] = plane(vp.M3-vp.M0, vp.M7-vp.M4, vp.M11-vp.M8, vp.M15-vp.M12)
	f.planes[2] = plane(vp.M3+vp.M1, vp.M7+vp.M5, vp.M11+vp.M9, vp.M15+vp.M13)
	f.planes[3] = plane(vp.M3-vp.M1, vp.M7-vp.M5, vp.M11-vp.M9, vp.M15-vp.M13)
	f.planes[4] = plane(vp.M3+vp.M2, vp.M7+vp.M6, vp.M11+vp.M10, vp.M15+vp.M14)
	f.planes[5] = plane(vp.M3-vp.M2, vp.M7-vp.M6, vp.M11-vp.M10, vp.M15-vp.M14)
	return f
}

func plane(a, b, c, d float32) Plane {
	p := Plane{normal: rl.Vector3{X: a, Y: b, Z: c}, distance: d}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
