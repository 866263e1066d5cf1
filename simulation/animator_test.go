package simulation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cubescene/core"
)

func newScene() *core.Scene {
	return core.NewScene(core.DefaultSceneConfig(800, 600), core.NewRandom(42))
}

func TestInitialCornerCube(t *testing.T) {
	s := newScene()
	c := s.CubeAt(core.GridCoord{X: 0, Y: 0, Z: 0})
	require.NotNil(t, c)
	assert.Equal(t, mgl32.Vec3{-5, -5, -5}, c.Position)
	assert.Equal(t, float32(1), c.Scale)
}

func TestAnimatorCubeMotion(t *testing.T) {
	// Epoch scale time, the way the loop drives it
	for _, ts := range []float64{0, 1.25, 1.7e9 + 0.321} {
		s := newScene()
		Animator{}.Update(s, ts)

		for i, c := range s.Cubes {
			offset := float64(i) * 0.1
			wantX := float64(c.Initial.X()) + math.Sin(ts+offset)*0.5
			wantY := float64(c.Initial.Y()) + math.Cos(ts+offset)*0.5
			assert.InDelta(t, wantX, c.Position.X(), 1e-4, "cube %d x at t=%v", i, ts)
			assert.InDelta(t, wantY, c.Position.Y(), 1e-4, "cube %d y at t=%v", i, ts)
			assert.Equal(t, c.Initial.Z(), c.Position.Z())

			pulse := math.Sin(2*ts+float64(c.PulsePhase)) * 0.1
			wantScale := 1 + (1+pulse-1)*0.1
			assert.InDelta(t, wantScale, c.Scale, 1e-4)
			assert.Equal(t, mgl32.Vec2{0.01, 0.01}, c.Rotation)
		}
	}
}

func TestAnimatorScaleApproachesTarget(t *testing.T) {
	s := newScene()
	c := s.Cubes[0]
	c.TargetScale = 1.5

	prev := c.Scale
	for i := 0; i < 200; i++ {
		Animator{}.Update(s, float64(i)/60)
		assert.Less(t, c.Scale, float32(1.61))
		if i < 5 {
			assert.Greater(t, c.Scale, prev, "scale climbs gradually")
			assert.Less(t, c.Scale, float32(1.5))
		}
		prev = c.Scale
	}
	assert.InDelta(t, 1.5, c.Scale, 0.11, "settles around target plus pulse")
}

func TestAnimatorRotationAccumulates(t *testing.T) {
	s := newScene()
	c := s.Cubes[7]
	c.RotationSpeed = 0.05
	for i := 0; i < 100; i++ {
		Animator{}.Update(s, 0)
	}
	assert.InDelta(t, 5, c.Rotation.X(), 1e-4)
	assert.InDelta(t, 5, c.Rotation.Y(), 1e-4)
	assert.InDelta(t, 1, s.Cubes[8].Rotation.X(), 1e-4)
}

func TestAnimatorCameraOrbit(t *testing.T) {
	for _, ts := range []float64{0, 2, math.Pi, 1.7e9} {
		s := newScene()
		Animator{}.Update(s, ts)
		cam := s.State.Camera
		assert.InDelta(t, math.Sin(0.5*ts)*15, cam.Position.X(), 1e-3)
		assert.InDelta(t, math.Cos(0.5*ts)*15, cam.Position.Z(), 1e-3)
		assert.Equal(t, float32(0), cam.Position.Y())
	}
}

func TestAnimatorStepsParticles(t *testing.T) {
	s := newScene()
	before := s.Particles.Particles[0]
	Animator{}.Update(s, 0)
	after := s.Particles.Particles[0]
	assert.Equal(t, before.Velocity, after.Velocity)
	assert.NotEqual(t, before.Position, after.Position)
}
