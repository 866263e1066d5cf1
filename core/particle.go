package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Particle field defaults
const (
	DefaultParticleCount = 100
	DefaultParticleBound = 15.0
	DefaultParticleSpeed = 0.01
	ParticleSize         = 0.05
	ParticleOpacity      = 0.6
)

// Particle is one point of the drifting field
type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3 // fixed at creation
}

// FieldConfig sizes the particle field
type FieldConfig struct {
	Count    int
	Bound    float32 // half extent of the cube the particles stay in
	MaxSpeed float32 // per-axis velocity magnitude limit, units per tick
}

// DefaultField is 100 particles in [-15, 15]³ moving at most 0.01 per axis per tick
var DefaultField = FieldConfig{
	Count:    DefaultParticleCount,
	Bound:    DefaultParticleBound,
	MaxSpeed: DefaultParticleSpeed,
}

// ParticleField holds every particle and the boundary they reflect off
type ParticleField struct {
	Particles []Particle
	Bound     float32
}

// NewParticleField scatters cfg.Count particles uniformly in the bounding cube
func NewParticleField(cfg FieldConfig, rng Random) *ParticleField {
	b, s := float64(cfg.Bound), float64(cfg.MaxSpeed)
	f := &ParticleField{
		Particles: make([]Particle, cfg.Count),
		Bound:     cfg.Bound,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			Position: mgl32.Vec3{uniform(rng, -b, b), uniform(rng, -b, b), uniform(rng, -b, b)},
			Velocity: mgl32.Vec3{uniform(rng, -s, s), uniform(rng, -s, s), uniform(rng, -s, s)},
		}
	}
	return f
}

// Step advances every particle by its velocity. A coordinate whose magnitude
// exceeds the bound is mirrored to the opposite side, not clamped.
func (f *ParticleField) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		for axis := 0; axis < 3; axis++ {
			p.Position[axis] += p.Velocity[axis]
			if math32.Abs(p.Position[axis]) > f.Bound {
				p.Position[axis] = -p.Position[axis]
			}
		}
	}
}

// Positions flattens the particle positions into xyz triples for vertex upload
func (f *ParticleField) Positions(dst []float32) []float32 {
	dst = dst[:0]
	for _, p := range f.Particles {
		dst = append(dst, p.Position[0], p.Position[1], p.Position[2])
	}
	return dst
}
