package rendering

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubescene/core"
)

func cubeAt(x, y, z float32) *core.Cube {
	return &core.Cube{Position: mgl32.Vec3{x, y, z}, Scale: 1}
}

func TestRayFromNDCCenter(t *testing.T) {
	cam := core.NewCamera(800, 600)
	r := RayFromNDC(mgl32.Vec2{0, 0}, &cam)

	assert.Equal(t, cam.Position, r.Origin)
	assert.InDelta(t, 0, r.Dir.X(), 1e-5)
	assert.InDelta(t, 0, r.Dir.Y(), 1e-5)
	assert.InDelta(t, -1, r.Dir.Z(), 1e-5)
}

func TestPickNearest(t *testing.T) {
	cam := core.NewCamera(800, 600)
	far, near := cubeAt(0, 0, 0), cubeAt(0, 0, 5)

	got := RayPicker{}.Pick(mgl32.Vec2{0, 0}, &cam, []*core.Cube{far, near})
	assert.Same(t, near, got)
}

func TestPickMiss(t *testing.T) {
	cam := core.NewCamera(800, 600)
	got := RayPicker{}.Pick(mgl32.Vec2{0.95, 0.95}, &cam, []*core.Cube{cubeAt(0, 0, 0)})
	assert.Nil(t, got)
}

func TestIntersectCubeDistance(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 10}, Dir: mgl32.Vec3{0, 0, -1}}

	d, ok := IntersectCube(r, cubeAt(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 9.5, d, 1e-5)

	scaled := cubeAt(0, 0, 0)
	scaled.Scale = 2
	d, ok = IntersectCube(r, scaled)
	require.True(t, ok)
	assert.InDelta(t, 9, d, 1e-5)
}

func TestIntersectCubeRotated(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0.6, 0, 10}, Dir: mgl32.Vec3{0, 0, -1}}

	plain := cubeAt(0, 0, 0)
	_, ok := IntersectCube(r, plain)
	assert.False(t, ok, "axis aligned unit box does not reach x=0.6")

	turned := cubeAt(0, 0, 0)
	turned.Rotation = mgl32.Vec2{0, math.Pi / 4}
	_, ok = IntersectCube(r, turned)
	assert.True(t, ok, "box rotated 45 degrees about y reaches x=0.707")
}

func TestIntersectCubeBehindOrigin(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 10}, Dir: mgl32.Vec3{0, 0, 1}}
	_, ok := IntersectCube(r, cubeAt(0, 0, 0))
	assert.False(t, ok)
}

func TestIntersectFromInside(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{0, 0, 0}, Dir: mgl32.Vec3{1, 0, 0}}
	d, ok := IntersectCube(r, cubeAt(0, 0, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.5, d, 1e-5)
}
