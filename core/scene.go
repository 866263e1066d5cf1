package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// InteractionState is the state shared by the input router and the frame updater.
// It is only touched from the loop goroutine.
type InteractionState struct {
	Hovered *Cube
	Paused  bool
	Camera  Camera
}

// DirectionalLight shines from Direction towards the origin
type DirectionalLight struct {
	Direction mgl32.Vec3
	Color     colorful.Color
	Intensity float32
}

// Lighting is the fixed light rig of the scene
type Lighting struct {
	Key     DirectionalLight
	Fill    DirectionalLight
	Ambient colorful.Color
}

// Fog fades geometry to Color between Near and Far view depth
type Fog struct {
	Color     colorful.Color
	Near, Far float32
}

// Factor returns the fog blend amount in [0, 1] at view depth d, a smoothstep
// between Near and Far matching the GPU shader
func (f Fog) Factor(d float32) float32 {
	if f.Far <= f.Near {
		return 0
	}
	x := mgl32.Clamp((d-f.Near)/(f.Far-f.Near), 0, 1)
	return x * x * (3 - 2*x)
}

// Tunables are the camera parameters that may change while the scene runs
type Tunables struct {
	OrbitRadius float32
	OrbitSpeed  float32
	ZoomSpeed   float32
	MinZoom     float32
	MaxZoom     float32
}

// DefaultTunables orbit at radius 15 and clamp wheel zoom to [5, 30]
var DefaultTunables = Tunables{
	OrbitRadius: 15,
	OrbitSpeed:  0.5,
	ZoomSpeed:   0.001,
	MinZoom:     5,
	MaxZoom:     30,
}

// SceneConfig collects everything NewScene needs
type SceneConfig struct {
	Grid     GridConfig
	Field    FieldConfig
	Fog      Fog
	Tunables Tunables
	Width    int
	Height   int
}

// DefaultSceneConfig returns the stock scene for a window of the given size
func DefaultSceneConfig(width, height int) SceneConfig {
	return SceneConfig{
		Grid:     DefaultGrid,
		Field:    DefaultField,
		Fog:      Fog{Color: FogColor, Near: 15, Far: 30},
		Tunables: DefaultTunables,
		Width:    width,
		Height:   height,
	}
}

// Scene owns every object drawn each frame plus the interaction state
type Scene struct {
	Cubes     []*Cube
	Particles *ParticleField
	State     InteractionState
	Lights    Lighting
	Fog       Fog
	Tunables  Tunables
	Rand      Random
}

// NewScene builds the cube grid, particle field, camera and light rig
func NewScene(cfg SceneConfig, rng Random) *Scene {
	return &Scene{
		Particles: NewParticleField(cfg.Field, rng),
		Cubes:     NewCubeGrid(cfg.Grid, rng),
		State: InteractionState{
			Camera: NewCamera(cfg.Width, cfg.Height),
		},
		Lights: Lighting{
			Key:     DirectionalLight{Direction: mgl32.Vec3{1, 1, 1}, Color: DirectionalHue, Intensity: 1},
			Fill:    DirectionalLight{Direction: mgl32.Vec3{-1, -1, -1}, Color: DirectionalHue, Intensity: 0.5},
			Ambient: AmbientColor,
		},
		Fog:      cfg.Fog,
		Tunables: cfg.Tunables,
		Rand:     rng,
	}
}

// CubeAt returns the cube at grid coordinate c, or nil
func (s *Scene) CubeAt(c GridCoord) *Cube {
	for _, cube := range s.Cubes {
		if cube.Coord == c {
			return cube
		}
	}
	return nil
}

// SelectedCount returns how many cubes are currently selected
func (s *Scene) SelectedCount() int {
	n := 0
	for _, cube := range s.Cubes {
		if cube.Selected {
			n++
		}
	}
	return n
}
