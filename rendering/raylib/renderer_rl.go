// Package raylib draws the scene with raylib. Lighting and fog are evaluated
// per face on the CPU, which is plenty for a few thousand triangles.
package raylib

import (
	"errors"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"cubescene/core"
	"cubescene/rendering"
)

// Options configure the window
type Options struct {
	Width, Height int
	Title         string
	VSync         bool
	Samples       int
}

// Renderer is the raylib backend
type Renderer struct {
	log     *slog.Logger
	title   string
	handler rendering.InputHandler

	mesh  []float32 // unit cube, interleaved position+normal
	order []int
	input rendering.InputLatch

	stats rendering.FrameStats
	quads []rendering.Quad
}

var (
	_ rendering.Renderer      = (*Renderer)(nil)
	_ rendering.StatusSetter  = (*Renderer)(nil)
	_ rendering.StatsReporter = (*Renderer)(nil)
)

// New opens the raylib window
func New(opts Options, log *slog.Logger) (*Renderer, error) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	if opts.VSync {
		flags |= rl.FlagVsyncHint
	}
	if opts.Samples > 0 {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("failed to create raylib window")
	}
	log.Info("raylib ready", "width", rl.GetScreenWidth(), "height", rl.GetScreenHeight())

	return &Renderer{
		log:   log,
		title: opts.Title,
		mesh:  rendering.CubeVertices(),
	}, nil
}

// SetInputHandler routes window input to h
func (r *Renderer) SetInputHandler(h rendering.InputHandler) {
	r.handler = h
}

// WindowSize returns the window size in screen coordinates
func (r *Renderer) WindowSize() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func toRaylibCamera(cam *core.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(cam.Position.X(), cam.Position.Y(), cam.Position.Z()),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cam.FovY,
		Projection: rl.CameraPerspective,
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

func toColor(c colorful.Color, alpha float32) rl.Color {
	red, green, blue := c.Clamped().RGB255()
	return rl.NewColor(red, green, blue, uint8(mgl32.Clamp(alpha, 0, 1)*255))
}

// Pick implements rendering.Picker using raylib's screen-to-world ray
func (r *Renderer) Pick(ndc mgl32.Vec2, cam *core.Camera, cubes []*core.Cube) *core.Cube {
	screen := rl.NewVector2(
		(ndc.X()+1)/2*float32(cam.Width),
		(1-ndc.Y())/2*float32(cam.Height),
	)
	ray := rl.GetScreenToWorldRay(screen, toRaylibCamera(cam))
	return rendering.Nearest(rendering.Ray{
		Origin: mgl32.Vec3{ray.Position.X, ray.Position.Y, ray.Position.Z},
		Dir:    mgl32.Vec3{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}.Normalize(),
	}, cubes)
}

// SetViewport implements rendering.Surface. raylib resizes its framebuffer
// with the window, so there is nothing to do beyond logging.
func (r *Renderer) SetViewport(width, height int) {
	r.log.Debug("viewport", "width", rl.GetRenderWidth(), "height", rl.GetRenderHeight())
}

// Draw renders particles, then cubes back to front
func (r *Renderer) Draw(scene *core.Scene) {
	cam := &scene.State.Camera
	view := cam.View()

	rl.BeginDrawing()
	rl.ClearBackground(toColor(scene.Fog.Color, 1))
	rl.BeginMode3D(toRaylibCamera(cam))
	rl.BeginBlendMode(rl.BlendAlpha)

	for _, p := range scene.Particles.Particles {
		depth := -view.Mul4x1(p.Position.Vec4(1)).Z()
		c := rendering.ApplyFog(scene.Fog, core.ParticleColor, depth)
		rl.DrawPoint3D(vec3(p.Position), toColor(c, core.ParticleOpacity))
	}

	r.order = rendering.BackToFront(cam, scene.Cubes, r.order)
	for _, i := range r.order {
		r.drawCube(scene, scene.Cubes[i], view)
	}

	rl.EndBlendMode()
	rl.EndMode3D()

	r.quads = rendering.StatsQuads(r.stats, r.quads)
	for _, q := range r.quads {
		rl.DrawRectangleV(rl.NewVector2(q.X, q.Y), rl.NewVector2(q.W, q.H), toColor(q.Color, q.Alpha))
	}
	// EndDrawing polls input for the next frame
	rl.EndDrawing()
	r.input.Latch(snapshot())
}

func (r *Renderer) drawCube(scene *core.Scene, c *core.Cube, view mgl32.Mat4) {
	model := c.Model()
	normalMatrix := model.Mat3().Inv().Transpose()
	depth := -view.Mul4x1(c.Position.Vec4(1)).Z()

	var tri [3]rl.Vector3
	for v := 0; v < len(r.mesh)/6; v++ {
		base := v * 6
		p := model.Mul4x1(mgl32.Vec4{r.mesh[base], r.mesh[base+1], r.mesh[base+2], 1})
		tri[v%3] = rl.NewVector3(p.X(), p.Y(), p.Z())
		if v%3 != 2 {
			continue
		}
		n := normalMatrix.Mul3x1(mgl32.Vec3{r.mesh[base+3], r.mesh[base+4], r.mesh[base+5]}).Normalize()
		shaded := rendering.ShadeFace(scene.Lights, n, c.Color, c.Emissive)
		col := toColor(rendering.ApplyFog(scene.Fog, shaded, depth), c.Opacity)
		rl.DrawTriangle3D(tri[0], tri[1], tri[2], col)
	}
}

// SetStatus shows status in the window title
func (r *Renderer) SetStatus(status string) {
	rl.SetWindowTitle(r.title + " | " + status)
}

// ReportStats updates the overlay bars
func (r *Renderer) ReportStats(stats rendering.FrameStats) {
	r.stats = stats
}

// PollEvents dispatches the input raylib collected at the end of the last
// frame. Input already dispatched is not replayed.
func (r *Renderer) PollEvents() {
	r.input.Dispatch(r.handler)
}

// WaitEvents idles for timeout, then collects and dispatches input. raylib
// only polls input when a frame ends, so a paused loop polls here.
func (r *Renderer) WaitEvents(timeout time.Duration) {
	rl.WaitTime(timeout.Seconds())
	rl.PollInputEvents()
	r.input.Latch(snapshot())
	r.input.Dispatch(r.handler)
}

// snapshot reads the input state of the last poll
func snapshot() rendering.InputSnapshot {
	m := rl.GetMousePosition()
	return rendering.InputSnapshot{
		Resized:  rl.IsWindowResized(),
		Width:    rl.GetScreenWidth(),
		Height:   rl.GetScreenHeight(),
		PointerX: float64(m.X),
		PointerY: float64(m.Y),
		Wheel:    -float64(rl.GetMouseWheelMove()) * rendering.WheelNotch,
		Click:    rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Pause:    rl.IsKeyPressed(rl.KeySpace),
	}
}

// ShouldClose reports a close request or Escape
func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// Close shuts the window
func (r *Renderer) Close() {
	rl.CloseWindow()
}
