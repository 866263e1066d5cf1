package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cubescene/rendering"
)

const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec2 position;
layout (location = 1) in vec4 color;

out vec4 fragColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 0.0, 1.0);
    fragColor = color;
}
`

const overlayFragmentShader = `
#version 410 core

in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
`

// statsOverlay draws rendering.StatsQuads over the scene
type statsOverlay struct {
	program    uint32
	projection int32
	vao        uint32
	vbo        uint32

	stats    rendering.FrameStats
	quads    []rendering.Quad
	vertices []float32
}

func newStatsOverlay() (*statsOverlay, error) {
	program, err := newProgram(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to compile overlay shaders: %w", err)
	}
	o := &statsOverlay{
		program:    program,
		projection: gl.GetUniformLocation(program, gl.Str("projection\x00")),
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)

	// 2 floats position, 4 floats color
	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return o, nil
}

// draw renders the overlay for a window of width x height screen coordinates
func (o *statsOverlay) draw(width, height int) {
	o.quads = rendering.StatsQuads(o.stats, o.quads)
	o.vertices = rendering.QuadVertices(o.quads, o.vertices)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(o.program)
	projection := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	gl.UniformMatrix4fv(o.projection, 1, false, &projection[0])

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(o.vertices)*4, gl.Ptr(o.vertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(o.vertices)/6))
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

func (o *statsOverlay) release() {
	gl.DeleteProgram(o.program)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
}
