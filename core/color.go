package core

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Material colors shared by both backends
var (
	ParticleColor  = mustHex("#88ccff")
	AmbientColor   = mustHex("#404040")
	HoverEmissive  = mustHex("#333333")
	NoEmissive     = colorful.Color{}
	FogColor       = colorful.Color{}
	DirectionalHue = colorful.Color{R: 1, G: 1, B: 1}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// GridHue returns the base hue in degrees for a grid coordinate
func GridHue(c GridCoord) float64 {
	return math.Mod(float64(c.X+c.Y+c.Z)*30, 360)
}

// BaseColorFor returns the deterministic resting color of the cube at c
func BaseColorFor(c GridCoord) colorful.Color {
	return colorful.Hsl(GridHue(c), 0.7, 0.5)
}

// SelectionColor picks a fully saturated color with a random hue
func SelectionColor(rng Random) colorful.Color {
	return colorful.Hsl(rng.Float64()*360, 1, 0.5)
}

// RGB32 returns the color channels as float32 for GPU upload
func RGB32(c colorful.Color) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}
