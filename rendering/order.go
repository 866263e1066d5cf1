package rendering

import (
	"cmp"
	"slices"

	"cubescene/core"
)

// BackToFront fills order with cube indices sorted farthest first along the
// camera's view axis, so transparent cubes blend over what is behind them.
// The order slice is reused when it has capacity.
func BackToFront(cam *core.Camera, cubes []*core.Cube, order []int) []int {
	view := cam.View()
	depth := make([]float32, len(cubes))
	order = order[:0]
	for i, c := range cubes {
		// View space looks down -z, so more negative is farther
		depth[i] = view.Mul4x1(c.Position.Vec4(1)).Z()
		order = append(order, i)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(depth[a], depth[b])
	})
	return order
}
