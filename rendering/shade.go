package rendering

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"cubescene/core"
)

// ShadeFace lights a flat face with world normal n using the scene's
// ambient and directional lights, adds the emissive term and clamps
func ShadeFace(lights core.Lighting, n mgl32.Vec3, diffuse, emissive colorful.Color) colorful.Color {
	light := lights.Ambient
	for _, l := range []core.DirectionalLight{lights.Key, lights.Fill} {
		ndl := float64(max(n.Dot(l.Direction.Normalize()), 0)) * float64(l.Intensity)
		light.R += l.Color.R * ndl
		light.G += l.Color.G * ndl
		light.B += l.Color.B * ndl
	}
	return colorful.Color{
		R: diffuse.R*light.R + emissive.R,
		G: diffuse.G*light.G + emissive.G,
		B: diffuse.B*light.B + emissive.B,
	}.Clamped()
}

// ApplyFog blends c towards the fog color for an object at view depth d
func ApplyFog(fog core.Fog, c colorful.Color, d float32) colorful.Color {
	return c.BlendRgb(fog.Color, float64(fog.Factor(d)))
}
