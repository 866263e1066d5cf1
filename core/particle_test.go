package core

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticleFieldBounds(t *testing.T) {
	f := NewParticleField(DefaultField, NewRandom(11))
	require.Len(t, f.Particles, 100)

	velocities := make([]mgl32.Vec3, len(f.Particles))
	for i, p := range f.Particles {
		velocities[i] = p.Velocity
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, math32.Abs(p.Position[axis]), float32(15))
			assert.LessOrEqual(t, math32.Abs(p.Velocity[axis]), float32(0.01))
		}
	}

	for tick := 0; tick < 20000; tick++ {
		f.Step()
	}

	for i, p := range f.Particles {
		assert.Equal(t, velocities[i], p.Velocity, "velocity of particle %d changed", i)
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, math32.Abs(p.Position[axis]), 15+math32.Abs(p.Velocity[axis])+1e-4)
		}
	}
}

func TestParticleReflects(t *testing.T) {
	f := &ParticleField{
		Bound: 15,
		Particles: []Particle{
			{Position: mgl32.Vec3{14.995, 0, -14.995}, Velocity: mgl32.Vec3{0.01, 0, -0.01}},
		},
	}
	f.Step()
	p := f.Particles[0]
	assert.InDelta(t, -15.005, p.Position.X(), 1e-4)
	assert.InDelta(t, 15.005, p.Position.Z(), 1e-4)
	assert.Equal(t, float32(0), p.Position.Y())

	f.Step()
	p = f.Particles[0]
	assert.InDelta(t, -14.995, p.Position.X(), 1e-4)
	assert.InDelta(t, 14.995, p.Position.Z(), 1e-4)
}

func TestParticlePositionsFlatten(t *testing.T) {
	f := &ParticleField{Particles: []Particle{
		{Position: mgl32.Vec3{1, 2, 3}},
		{Position: mgl32.Vec3{4, 5, 6}},
	}}
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, f.Positions(nil))
}

func TestSeededSceneIsReproducible(t *testing.T) {
	cfg := DefaultSceneConfig(800, 600)
	a := NewScene(cfg, NewRandom(99))
	b := NewScene(cfg, NewRandom(99))

	for i := range a.Cubes {
		assert.Equal(t, a.Cubes[i].PulsePhase, b.Cubes[i].PulsePhase)
	}
	assert.Equal(t, a.Particles.Particles, b.Particles.Particles)
}
