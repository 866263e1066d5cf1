package rendering

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"

	"cubescene/core"
)

func testLights() core.Lighting {
	scene := core.NewScene(core.DefaultSceneConfig(800, 600), core.NewRandom(1))
	return scene.Lights
}

func TestShadeFace(t *testing.T) {
	lights := testLights()
	white := colorful.Color{R: 1, G: 1, B: 1}
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}

	// Facing away from both lights: ambient only
	side := ShadeFace(lights, mgl32.Vec3{1, -1, 0}.Normalize(), grey, core.NoEmissive)
	assert.InDelta(t, 0.5*lights.Ambient.R, side.R, 1e-6)

	// Facing the key light straight on saturates a white surface
	lit := ShadeFace(lights, mgl32.Vec3{1, 1, 1}.Normalize(), white, core.NoEmissive)
	assert.Equal(t, 1.0, lit.R)

	// Emissive lifts an unlit face
	glow := ShadeFace(lights, mgl32.Vec3{1, -1, 0}.Normalize(), grey, core.HoverEmissive)
	assert.Greater(t, glow.R, side.R)
}

func TestApplyFog(t *testing.T) {
	fog := core.Fog{Color: colorful.Color{}, Near: 15, Far: 30}
	red := colorful.Color{R: 1}

	assert.Equal(t, red, ApplyFog(fog, red, 10))
	assert.InDelta(t, 0, ApplyFog(fog, red, 35).R, 1e-9)
	assert.InDelta(t, 0.5, ApplyFog(fog, red, 22.5).R, 1e-9)
}
