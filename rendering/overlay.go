package rendering

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Quad is a screen space rectangle in window pixels, origin top left
type Quad struct {
	X, Y, W, H float32
	Color      colorful.Color
	Alpha      float32
}

// Stats overlay layout
const (
	overlayMargin  = 10
	overlayPadding = 10
	overlayBarMax  = 200
	overlayBarH    = 15
	overlayGap     = 10
	overlayFullFPS = 120 // frame rate that fills the bar
)

var (
	overlayPanel     = colorful.Color{R: 0.1, G: 0.1, B: 0.3}
	overlayTrack     = colorful.Color{R: 0.25, G: 0.25, B: 0.35}
	overlayFPSBar    = colorful.Color{R: 0, G: 1, B: 0}
	overlaySlowBar   = colorful.Color{R: 1, G: 0.3, B: 0}
	overlaySelectBar = colorful.Color{R: 0.5, G: 0.5, B: 1}
)

// StatsQuads lays out the stats overlay: a translucent panel holding a frame
// rate bar and a bar for the share of selected cubes. Each bar sits on a
// darker track so an empty bar is still visible.
func StatsQuads(s FrameStats, dst []Quad) []Quad {
	dst = dst[:0]

	panelW := float32(overlayBarMax + 2*overlayPadding)
	panelH := float32(2*overlayBarH + overlayGap + 2*overlayPadding)
	dst = append(dst, Quad{X: overlayMargin, Y: overlayMargin, W: panelW, H: panelH, Color: overlayPanel, Alpha: 0.8})

	x := float32(overlayMargin + overlayPadding)
	y := float32(overlayMargin + overlayPadding)

	fps := mgl32.Clamp(float32(s.FPS/overlayFullFPS), 0, 1)
	// Below half the target rate the bar turns towards red
	fpsColor := overlaySlowBar.BlendRgb(overlayFPSBar, float64(mgl32.Clamp(fps*2, 0, 1)))
	dst = append(dst,
		Quad{X: x, Y: y, W: overlayBarMax, H: overlayBarH, Color: overlayTrack, Alpha: 1},
		Quad{X: x, Y: y, W: fps * overlayBarMax, H: overlayBarH, Color: fpsColor, Alpha: 1},
	)

	y += overlayBarH + overlayGap
	var share float32
	if s.Total > 0 {
		share = mgl32.Clamp(float32(s.Selected)/float32(s.Total), 0, 1)
	}
	dst = append(dst,
		Quad{X: x, Y: y, W: overlayBarMax, H: overlayBarH, Color: overlayTrack, Alpha: 1},
		Quad{X: x, Y: y, W: share * overlayBarMax, H: overlayBarH, Color: overlaySelectBar, Alpha: 1},
	)
	return dst
}

// QuadVertices appends two triangles per quad as x, y, r, g, b, a
func QuadVertices(quads []Quad, dst []float32) []float32 {
	dst = dst[:0]
	for _, q := range quads {
		r, g, b := float32(q.Color.R), float32(q.Color.G), float32(q.Color.B)
		x0, y0, x1, y1 := q.X, q.Y, q.X+q.W, q.Y+q.H
		dst = append(dst,
			x0, y0, r, g, b, q.Alpha,
			x1, y0, r, g, b, q.Alpha,
			x0, y1, r, g, b, q.Alpha,
			x1, y0, r, g, b, q.Alpha,
			x1, y1, r, g, b, q.Alpha,
			x0, y1, r, g, b, q.Alpha,
		)
	}
	return dst
}
