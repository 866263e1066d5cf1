package interaction

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubescene/core"
	"cubescene/rendering"
)

// stubPicker returns whatever cube is set in hit
type stubPicker struct {
	hit   *core.Cube
	calls int
	last  mgl32.Vec2
}

func (p *stubPicker) Pick(ndc mgl32.Vec2, _ *core.Camera, _ []*core.Cube) *core.Cube {
	p.calls++
	p.last = ndc
	return p.hit
}

type stubSurface struct {
	width, height int
}

func (s *stubSurface) SetViewport(w, h int) {
	s.width, s.height = w, h
}

func newTestRouter(t *testing.T) (*Router, *core.Scene, *stubPicker, *stubSurface) {
	t.Helper()
	scene := core.NewScene(core.DefaultSceneConfig(800, 600), core.NewRandom(5))
	picker := &stubPicker{}
	surface := &stubSurface{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(scene, picker, surface, log), scene, picker, surface
}

func TestPointerMoveConvertsToNDC(t *testing.T) {
	r, _, picker, _ := newTestRouter(t)
	r.PointerMove(800, 0)
	assert.Equal(t, 1, picker.calls)
	assert.InDelta(t, 1, picker.last.X(), 1e-6)
	assert.InDelta(t, 1, picker.last.Y(), 1e-6)
	assert.Equal(t, picker.last, r.Pointer())
}

func TestHoverHighlightAndRestore(t *testing.T) {
	r, scene, picker, _ := newTestRouter(t)
	cube := scene.Cubes[10]

	picker.hit = cube
	r.PointerMove(100, 100)
	assert.Same(t, cube, scene.State.Hovered)
	assert.Equal(t, float32(1), cube.Opacity)
	assert.Equal(t, core.HoverEmissive, cube.Emissive)

	// Still over the same cube: nothing changes
	r.PointerMove(101, 100)
	assert.Same(t, cube, scene.State.Hovered)

	picker.hit = nil
	r.PointerMove(0, 0)
	assert.Nil(t, scene.State.Hovered)
	assert.Equal(t, float32(core.DefaultOpacity), cube.Opacity)
	assert.Equal(t, colorful.Color{}, cube.Emissive)
}

func TestHoverMovesBetweenCubes(t *testing.T) {
	r, scene, picker, _ := newTestRouter(t)
	a, b := scene.Cubes[1], scene.Cubes[2]

	picker.hit = a
	r.PointerMove(10, 10)
	picker.hit = b
	r.PointerMove(20, 20)

	assert.Same(t, b, scene.State.Hovered)
	assert.Equal(t, float32(core.DefaultOpacity), a.Opacity)
	assert.Equal(t, colorful.Color{}, a.Emissive)
	assert.Equal(t, core.HoverEmissive, b.Emissive)
}

func TestHoverSelectedCubeKeepsSelectionLook(t *testing.T) {
	r, scene, picker, _ := newTestRouter(t)
	cube := scene.Cubes[3]
	picker.hit = cube
	r.Click()
	require.True(t, cube.Selected)
	selectedColor := cube.Color

	r.PointerMove(10, 10)
	assert.Same(t, cube, scene.State.Hovered)
	assert.Equal(t, colorful.Color{}, cube.Emissive)

	picker.hit = nil
	r.PointerMove(0, 0)
	assert.Equal(t, float32(1), cube.Opacity)
	assert.Equal(t, selectedColor, cube.Color)
}

func TestClickTogglesSelection(t *testing.T) {
	r, scene, picker, _ := newTestRouter(t)
	cube := scene.CubeAt(core.GridCoord{X: 0, Y: 0, Z: 0})
	require.NotNil(t, cube)
	base := cube.Color

	picker.hit = cube
	r.Click()
	assert.True(t, cube.Selected)
	assert.Equal(t, float32(1.5), cube.TargetScale)
	assert.Equal(t, float32(0.05), cube.RotationSpeed)
	assert.NotEqual(t, base, cube.Color)

	r.Click()
	assert.False(t, cube.Selected)
	assert.Equal(t, float32(1), cube.TargetScale)
	assert.Equal(t, float32(0.01), cube.RotationSpeed)
	assert.Equal(t, float32(0.8), cube.Opacity)
	assert.Equal(t, base, cube.Color)
}

func TestClickMissDoesNothing(t *testing.T) {
	r, scene, _, _ := newTestRouter(t)
	r.Click()
	assert.Zero(t, scene.SelectedCount())
}

func TestWheelClamp(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   float32
	}{
		{"huge scroll down caps at max", []float64{100000}, 30},
		{"huge scroll up caps at min", []float64{-100000}, 5},
		{"one notch", []float64{rendering.WheelNotch}, 15.1},
		{"cumulative", []float64{5000, 5000, 5000, 5000}, 30},
		{"back from max", []float64{100000, -1000}, 29},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, scene, _, _ := newTestRouter(t)
			for _, d := range tc.deltas {
				r.Wheel(d)
			}
			assert.InDelta(t, tc.want, scene.State.Camera.Position.Z(), 1e-4)
		})
	}
}

func TestPauseKey(t *testing.T) {
	r, scene, _, _ := newTestRouter(t)

	r.Key(rendering.KeyUnknown)
	assert.False(t, scene.State.Paused)

	r.Key(rendering.KeyPause)
	assert.True(t, scene.State.Paused)
	r.Key(rendering.KeyPause)
	assert.False(t, scene.State.Paused)
}

func TestResize(t *testing.T) {
	r, scene, _, surface := newTestRouter(t)
	r.Resize(1920, 1080)

	assert.Equal(t, 1920, scene.State.Camera.Width)
	assert.Equal(t, 1080, scene.State.Camera.Height)
	assert.InDelta(t, 16.0/9.0, scene.State.Camera.Aspect(), 1e-6)
	assert.Equal(t, 1920, surface.width)
	assert.Equal(t, 1080, surface.height)
}

func TestRayPickerThroughRouter(t *testing.T) {
	scene := core.NewScene(core.DefaultSceneConfig(800, 600), core.NewRandom(5))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(scene, rendering.RayPicker{}, nil, log)

	// From (0, 0, 15) the center ray runs down the z axis in the gap
	// between the lattice columns
	r.PointerMove(400, 300)
	assert.Nil(t, scene.State.Hovered)

	// Aim at the front layer cube at world (1, 1, 3)
	target := scene.CubeAt(core.GridCoord{X: 3, Y: 3, Z: 4})
	require.Equal(t, mgl32.Vec3{1, 1, 3}, target.Position)
	cam := &scene.State.Camera
	clip := cam.Projection().Mul4(cam.View()).Mul4x1(target.Position.Vec4(1))
	ndcX, ndcY := clip.X()/clip.W(), clip.Y()/clip.W()
	sx := float64(ndcX+1) / 2 * float64(cam.Width)
	sy := float64(1-ndcY) / 2 * float64(cam.Height)

	r.PointerMove(sx, sy)
	assert.Same(t, target, scene.State.Hovered)
	assert.Equal(t, float32(1), target.Opacity)

	r.Click()
	assert.True(t, target.Selected)

	r.PointerMove(0, 0)
	assert.Nil(t, scene.State.Hovered, "corner of the view sees no cube")
	assert.Equal(t, float32(1), target.Opacity)
}
