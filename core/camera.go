package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera that always looks at the world origin
type Camera struct {
	Position mgl32.Vec3
	FovY     float32 // vertical field of view in degrees
	Near     float32
	Far      float32

	// Window size in screen coordinates, used for aspect and pointer mapping
	Width, Height int
}

// NewCamera returns the default camera at (0, 0, 15)
func NewCamera(width, height int) Camera {
	return Camera{
		Position: mgl32.Vec3{0, 0, 15},
		FovY:     75,
		Near:     0.1,
		Far:      1000,
		Width:    width,
		Height:   height,
	}
}

// Aspect returns width/height, or 1 for a degenerate window
func (c *Camera) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// View returns the look-at matrix towards the origin
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the current aspect
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

// ScreenToNDC maps window coordinates (origin top-left, y down) to
// normalized device coordinates in [-1, 1] with y up
func (c *Camera) ScreenToNDC(x, y float64) mgl32.Vec2 {
	w, h := float64(c.Width), float64(c.Height)
	if w <= 0 || h <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32(x/w*2 - 1),
		float32(-y/h*2 + 1),
	}
}
