package simulation

import (
	"math"

	"github.com/chewxy/math32"

	"cubescene/core"
)

const (
	// Every time term (t, 2t, t/2) repeats after 4π, so scene time is
	// reduced to that period before float32 trig
	timePeriod = 4 * math.Pi

	cubeOffsetStep  = 0.1
	swayAmplitude   = 0.5
	pulseAmplitude  = 0.1
	pulseFrequency  = 2
	scaleLerpFactor = 0.1
)

// Animator advances every object of a scene by one tick
type Animator struct{}

// Update moves particles, sways, pulses and spins cubes, and orbits the camera
// for scene time t in seconds
func (Animator) Update(s *core.Scene, t float64) {
	phase := float32(math.Mod(t, timePeriod))

	s.Particles.Step()

	for i, c := range s.Cubes {
		offset := float32(i) * cubeOffsetStep

		c.Position[0] = c.Initial.X() + math32.Sin(phase+offset)*swayAmplitude
		c.Position[1] = c.Initial.Y() + math32.Cos(phase+offset)*swayAmplitude

		pulse := math32.Sin(phase*pulseFrequency+c.PulsePhase) * pulseAmplitude
		target := c.TargetScale + pulse
		c.Scale += (target - c.Scale) * scaleLerpFactor

		c.Rotation[0] += c.RotationSpeed
		c.Rotation[1] += c.RotationSpeed
	}

	// Orbit speed is tunable, so reduce with its own period
	orbit := float32(math.Mod(t*float64(s.Tunables.OrbitSpeed), 2*math.Pi))
	cam := &s.State.Camera
	cam.Position[0] = math32.Sin(orbit) * s.Tunables.OrbitRadius
	cam.Position[2] = math32.Cos(orbit) * s.Tunables.OrbitRadius
}
