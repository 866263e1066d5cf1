package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsQuads(t *testing.T) {
	quads := StatsQuads(FrameStats{FPS: 60, Selected: 25, Total: 125}, nil)
	require.Len(t, quads, 5)

	panel := quads[0]
	assert.Equal(t, float32(0.8), panel.Alpha)
	for _, q := range quads[1:] {
		assert.GreaterOrEqual(t, q.X, panel.X)
		assert.LessOrEqual(t, q.X+q.W, panel.X+panel.W)
		assert.LessOrEqual(t, q.Y+q.H, panel.Y+panel.H)
	}

	// Half the full rate fills half the bar, a fifth selected fills a fifth
	assert.InDelta(t, quads[1].W/2, quads[2].W, 1e-4)
	assert.InDelta(t, quads[3].W/5, quads[4].W, 1e-4)
}

func TestStatsQuadsClamp(t *testing.T) {
	fast := StatsQuads(FrameStats{FPS: 1000}, nil)
	assert.Equal(t, fast[1].W, fast[2].W)

	// No cubes means an empty selection bar rather than a division by zero
	assert.Zero(t, fast[4].W)

	slow := StatsQuads(FrameStats{FPS: 0}, fast)
	assert.Zero(t, slow[2].W)
	assert.Greater(t, slow[2].Color.R, slow[2].Color.G)
}

func TestQuadVertices(t *testing.T) {
	quads := StatsQuads(FrameStats{FPS: 30, Selected: 1, Total: 2}, nil)
	v := QuadVertices(quads, nil)
	require.Len(t, v, len(quads)*6*6)

	// First vertex is the panel's top left corner
	assert.Equal(t, quads[0].X, v[0])
	assert.Equal(t, quads[0].Y, v[1])
	assert.Equal(t, quads[0].Alpha, v[5])
	// Fifth vertex is its bottom right corner
	assert.Equal(t, quads[0].X+quads[0].W, v[4*6])
	assert.Equal(t, quads[0].Y+quads[0].H, v[4*6+1])
}
