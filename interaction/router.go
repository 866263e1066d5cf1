// Package interaction turns window input into scene state changes:
// hover highlighting, selection, zoom, pause and resize.
package interaction

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"cubescene/core"
	"cubescene/rendering"
)

// Router implements rendering.InputHandler for a scene
type Router struct {
	scene   *core.Scene
	picker  rendering.Picker
	surface rendering.Surface
	log     *slog.Logger

	pointer mgl32.Vec2 // last pointer position in NDC
}

var _ rendering.InputHandler = (*Router)(nil)

// NewRouter returns a router that hit-tests with picker and resizes surface.
// surface may be nil.
func NewRouter(scene *core.Scene, picker rendering.Picker, surface rendering.Surface, log *slog.Logger) *Router {
	return &Router{
		scene:   scene,
		picker:  picker,
		surface: surface,
		log:     log,
	}
}

// Pointer returns the last pointer position in normalized device coordinates
func (r *Router) Pointer() mgl32.Vec2 {
	return r.pointer
}

func (r *Router) pick() *core.Cube {
	return r.picker.Pick(r.pointer, &r.scene.State.Camera, r.scene.Cubes)
}

// PointerMove updates the hovered cube for a pointer at window position (x, y)
func (r *Router) PointerMove(x, y float64) {
	state := &r.scene.State
	r.pointer = state.Camera.ScreenToNDC(x, y)
	hit := r.pick()

	if state.Hovered != nil && state.Hovered != hit {
		state.Hovered.ApplyResting()
		r.log.Debug("hover cleared", "coord", state.Hovered.Coord)
		state.Hovered = nil
	}

	if hit != nil && hit != state.Hovered {
		state.Hovered = hit
		hit.ApplyHover()
		r.log.Debug("hover", "coord", hit.Coord, "selected", hit.Selected)
	}
}

// Click toggles selection of the cube under the last pointer position
func (r *Router) Click() {
	hit := r.pick()
	if hit == nil {
		return
	}
	hit.ToggleSelected(r.scene.Rand)
	r.log.Debug("selection toggled", "coord", hit.Coord, "selected", hit.Selected)
}

// Wheel moves the camera along z by deltaY scaled by the zoom speed,
// clamped to the zoom limits
func (r *Router) Wheel(deltaY float64) {
	tun := r.scene.Tunables
	cam := &r.scene.State.Camera
	z := cam.Position.Z() + float32(deltaY)*tun.ZoomSpeed
	cam.Position[2] = mgl32.Clamp(z, tun.MinZoom, tun.MaxZoom)
}

// Key handles the pause toggle. Other keys are ignored.
func (r *Router) Key(k rendering.Key) {
	if k != rendering.KeyPause {
		return
	}
	state := &r.scene.State
	state.Paused = !state.Paused
	if state.Paused {
		r.log.Info("animation paused")
	} else {
		r.log.Info("animation resumed")
	}
}

// Resize tracks a new window size for the camera and the drawing surface
func (r *Router) Resize(width, height int) {
	cam := &r.scene.State.Camera
	cam.Width, cam.Height = width, height
	if r.surface != nil {
		r.surface.SetViewport(width, height)
	}
	r.log.Debug("resized", "width", width, "height", height, "aspect", cam.Aspect())
}
