package rendering

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"cubescene/core"
)

// Ray is a half line in world space. Dir is unit length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// RayFromNDC unprojects a pointer position through the camera
func RayFromNDC(ndc mgl32.Vec2, cam *core.Camera) Ray {
	invViewProj := cam.Projection().Mul4(cam.View()).Inv()

	nearWorld := invViewProj.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), -1, 1})
	farWorld := invViewProj.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 1, 1})

	// Perspective divide
	near := nearWorld.Vec3().Mul(1 / nearWorld.W())
	far := farWorld.Vec3().Mul(1 / farWorld.W())

	return Ray{Origin: cam.Position, Dir: far.Sub(near).Normalize()}
}

// IntersectCube tests the ray against the cube's oriented unit box and returns
// the distance to the first hit in front of the origin
func IntersectCube(r Ray, c *core.Cube) (float32, bool) {
	inv := c.Model().Inv()
	o := inv.Mul4x1(r.Origin.Vec4(1)).Vec3()
	d := inv.Mul4x1(r.Dir.Vec4(0)).Vec3()

	// Slab test in local space; t is preserved by the affine transform
	tmin, tmax := float32(math.Inf(-1)), float32(math.Inf(1))
	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < -0.5 || o[axis] > 0.5 {
				return 0, false
			}
			continue
		}
		t1 := (-0.5 - o[axis]) / d[axis]
		t2 := (0.5 - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	switch {
	case tmin >= 0:
		return tmin, true
	case tmax >= 0:
		return tmax, true
	}
	return 0, false
}

// Nearest returns the closest cube hit by the ray, or nil
func Nearest(r Ray, cubes []*core.Cube) *core.Cube {
	var hit *core.Cube
	best := float32(math.Inf(1))
	for _, c := range cubes {
		if t, ok := IntersectCube(r, c); ok && t < best {
			best, hit = t, c
		}
	}
	return hit
}

// RayPicker picks by unprojecting through the scene camera
type RayPicker struct{}

// Pick implements Picker
func (RayPicker) Pick(ndc mgl32.Vec2, cam *core.Camera, cubes []*core.Cube) *core.Cube {
	return Nearest(RayFromNDC(ndc, cam), cubes)
}
