// Package rendering defines what the animation and input code needs from a
// drawing backend, plus the ray picking shared by the backends.
package rendering

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"cubescene/core"
)

// Picker finds the nearest cube under a pointer position given in
// normalized device coordinates
type Picker interface {
	Pick(ndc mgl32.Vec2, cam *core.Camera, cubes []*core.Cube) *core.Cube
}

// Surface is the drawable area that follows the window size
type Surface interface {
	// SetViewport resizes the drawing viewport for a window of the given size
	SetViewport(width, height int)
}

// Renderer is a complete drawing backend with its own window and event source
type Renderer interface {
	Picker
	Surface

	// Draw issues one render of the full scene from its camera
	Draw(scene *core.Scene)

	// PollEvents dispatches pending input events without blocking
	PollEvents()

	// WaitEvents blocks until an input event arrives or timeout elapses
	WaitEvents(timeout time.Duration)

	ShouldClose() bool
	Close()
}

// Key is a backend independent key identity
type Key int

const (
	KeyUnknown Key = iota
	KeyPause
)

// WheelNotch is the vertical delta of one scroll notch, in the pixel units
// wheel handlers expect. Positive scrolls down (zooms out).
const WheelNotch = 100.0

// InputHandler receives the window input a backend collects
type InputHandler interface {
	PointerMove(x, y float64)
	Click()
	Wheel(deltaY float64)
	Key(k Key)
	Resize(width, height int)
}

// StatusSetter is implemented by backends that can show a status line,
// usually the window title
type StatusSetter interface {
	SetStatus(status string)
}

// FrameStats summarise the frames drawn since the last report
type FrameStats struct {
	FPS      float64
	Selected int
	Total    int
}

// StatsReporter is implemented by backends that draw a stats overlay
type StatsReporter interface {
	ReportStats(stats FrameStats)
}
