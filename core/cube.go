package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Cube animation and appearance constants
const (
	DefaultOpacity       = 0.8
	HighlightOpacity     = 1.0
	DefaultRotationSpeed = 0.01
	SelectedRotation     = 0.05
	DefaultScale         = 1.0
	SelectedScale        = 1.5
	Shininess            = 100.0
)

// GridCoord indexes a cube in the lattice
type GridCoord struct {
	X, Y, Z int
}

// Cube is one box of the grid together with its animation state
type Cube struct {
	Index int
	Coord GridCoord

	Initial  mgl32.Vec3 // never changes after creation
	Position mgl32.Vec3
	Rotation mgl32.Vec2 // x and y Euler angles in radians, unbounded

	Scale         float32
	TargetScale   float32
	RotationSpeed float32
	PulsePhase    float32

	BaseColor colorful.Color
	Color     colorful.Color
	Emissive  colorful.Color
	Opacity   float32
	Selected  bool
}

// GridConfig sizes the lattice
type GridConfig struct {
	Size    int
	Spacing float32
}

// DefaultGrid is the 5x5x5 lattice with spacing 2
var DefaultGrid = GridConfig{Size: 5, Spacing: 2}

// GridPosition returns the world position of a grid coordinate, centered on the origin
func (g GridConfig) GridPosition(c GridCoord) mgl32.Vec3 {
	half := float32(g.Size) / 2
	return mgl32.Vec3{
		(float32(c.X) - half) * g.Spacing,
		(float32(c.Y) - half) * g.Spacing,
		(float32(c.Z) - half) * g.Spacing,
	}
}

// NewCubeGrid builds Size³ cubes, x outermost and z innermost
func NewCubeGrid(g GridConfig, rng Random) []*Cube {
	cubes := make([]*Cube, 0, g.Size*g.Size*g.Size)
	for x := 0; x < g.Size; x++ {
		for y := 0; y < g.Size; y++ {
			for z := 0; z < g.Size; z++ {
				coord := GridCoord{x, y, z}
				pos := g.GridPosition(coord)
				base := BaseColorFor(coord)
				cubes = append(cubes, &Cube{
					Index:         len(cubes),
					Coord:         coord,
					Initial:       pos,
					Position:      pos,
					Scale:         DefaultScale,
					TargetScale:   DefaultScale,
					RotationSpeed: DefaultRotationSpeed,
					PulsePhase:    uniform(rng, 0, 2*math.Pi),
					BaseColor:     base,
					Color:         base,
					Opacity:       DefaultOpacity,
				})
			}
		}
	}
	return cubes
}

// ToggleSelected flips the selection flag and applies the matching animation
// targets. The selected color is drawn from rng.
func (c *Cube) ToggleSelected(rng Random) {
	c.Selected = !c.Selected
	if c.Selected {
		c.TargetScale = SelectedScale
		c.RotationSpeed = SelectedRotation
		c.Color = SelectionColor(rng)
		c.Opacity = HighlightOpacity
		return
	}
	c.TargetScale = DefaultScale
	c.RotationSpeed = DefaultRotationSpeed
	c.Color = c.BaseColor
	c.Opacity = DefaultOpacity
}

// ApplyHover highlights an unselected cube. Selected cubes keep their look.
func (c *Cube) ApplyHover() {
	if c.Selected {
		return
	}
	c.Opacity = HighlightOpacity
	c.Emissive = HoverEmissive
}

// ApplyResting restores the non-hovered look for the current selection state
func (c *Cube) ApplyResting() {
	c.Emissive = NoEmissive
	if c.Selected {
		c.Opacity = HighlightOpacity
	} else {
		c.Opacity = DefaultOpacity
	}
}

// Model returns the world transform: translate * rotX * rotY * uniform scale
func (c *Cube) Model() mgl32.Mat4 {
	return mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).
		Mul4(mgl32.HomogRotate3DX(c.Rotation.X())).
		Mul4(mgl32.HomogRotate3DY(c.Rotation.Y())).
		Mul4(mgl32.Scale3D(c.Scale, c.Scale, c.Scale))
}
