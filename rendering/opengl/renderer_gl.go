// Package opengl draws the scene with OpenGL 4.1 in a GLFW window.
package opengl

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"cubescene/core"
	"cubescene/rendering"
)

// Options configure the window
type Options struct {
	Width, Height int
	Title         string
	VSync         bool
	Samples       int
}

// Renderer is the GLFW/OpenGL backend
type Renderer struct {
	rendering.RayPicker

	window *glfw.Window
	log    *slog.Logger
	title  string

	handler rendering.InputHandler

	// Cube drawing
	cubeProgram  uint32
	cubeUniforms uniforms
	cubeVAO      uint32
	cubeVBO      uint32
	cubeCount    int32
	order        []int

	// Particle drawing
	pointProgram  uint32
	pointUniforms uniforms
	pointVAO      uint32
	pointVBO      uint32
	pointData     []float32

	overlay *statsOverlay

	fbWidth, fbHeight int
}

var (
	_ rendering.Renderer      = (*Renderer)(nil)
	_ rendering.StatusSetter  = (*Renderer)(nil)
	_ rendering.StatsReporter = (*Renderer)(nil)
)

// New opens the window and compiles the shaders. Any failure here is fatal
// for the caller: there is nothing to draw with.
func New(opts Options, log *slog.Logger) (*Renderer, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)
	if opts.Samples > 0 {
		glfw.WindowHint(glfw.Samples, opts.Samples)
	}

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	r := &Renderer{
		window: window,
		log:    log,
		title:  opts.Title,
	}
	if err := r.setup(opts); err != nil {
		r.Close()
		return nil, err
	}

	r.fbWidth, r.fbHeight = window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))

	r.installCallbacks()
	return r, nil
}

func (r *Renderer) setup(opts Options) error {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	if opts.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	var err error
	r.cubeProgram, err = newProgram(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to compile cube shaders: %w", err)
	}
	r.cubeUniforms = lookupUniforms(r.cubeProgram,
		"model", "view", "projection", "normalMatrix",
		"diffuse", "emissive", "opacity", "shininess", "specular",
		"ambientColor", "lightDir[0]", "lightColor[0]", "cameraPos",
		"fogColor", "fogNear", "fogFar")

	r.pointProgram, err = newProgram(pointVertexShader, pointFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to compile particle shaders: %w", err)
	}
	r.pointUniforms = lookupUniforms(r.pointProgram,
		"view", "projection", "size", "scale",
		"color", "opacity", "fogColor", "fogNear", "fogFar")

	r.overlay, err = newStatsOverlay()
	if err != nil {
		return err
	}

	r.cubeVAO, r.cubeVBO, r.cubeCount = newCubeMesh()
	return nil
}

// SetInputHandler routes window input to h
func (r *Renderer) SetInputHandler(h rendering.InputHandler) {
	r.handler = h
}

func (r *Renderer) installCallbacks() {
	r.window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if r.handler != nil {
			r.handler.Resize(width, height)
		}
	})

	// Moving between monitors can change pixel density without a resize
	r.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.fbWidth, r.fbHeight = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	r.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			r.window.SetShouldClose(true)
		case glfw.KeySpace:
			if r.handler != nil {
				r.handler.Key(rendering.KeyPause)
			}
		}
	})

	r.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if r.handler != nil {
			// GLFW reports notches, positive away from the user
			r.handler.Wheel(-yoff * rendering.WheelNotch)
		}
	})

	r.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Release && r.handler != nil {
			r.handler.Click()
		}
	})

	r.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if r.handler != nil {
			r.handler.PointerMove(xpos, ypos)
		}
	})
}

// WindowSize returns the window size in screen coordinates
func (r *Renderer) WindowSize() (int, int) {
	return r.window.GetSize()
}

// SetViewport implements rendering.Surface. The viewport follows the
// framebuffer, which is larger than the window on high density displays.
func (r *Renderer) SetViewport(width, height int) {
	r.fbWidth, r.fbHeight = r.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
}

// Draw renders the particles and then the cubes back to front
func (r *Renderer) Draw(scene *core.Scene) {
	fog := core.RGB32(scene.Fog.Color)
	gl.ClearColor(fog[0], fog[1], fog[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam := &scene.State.Camera
	view := cam.View()
	proj := cam.Projection()

	r.drawParticles(scene, view, proj)
	r.drawCubes(scene, view, proj)
	r.overlay.draw(cam.Width, cam.Height)

	if err := gl.GetError(); err != gl.NO_ERROR {
		r.log.Warn("OpenGL error after draw", "code", fmt.Sprintf("0x%x", err))
	}
	r.window.SwapBuffers()
}

func (r *Renderer) drawParticles(scene *core.Scene, view, proj mgl32.Mat4) {
	field := scene.Particles
	if len(field.Particles) == 0 {
		return
	}
	if r.pointVAO == 0 {
		r.pointVAO, r.pointVBO = newPointBuffer(len(field.Particles))
	}
	r.pointData = field.Positions(r.pointData)

	gl.UseProgram(r.pointProgram)
	u := r.pointUniforms
	gl.UniformMatrix4fv(u["view"], 1, false, &view[0])
	gl.UniformMatrix4fv(u["projection"], 1, false, &proj[0])
	gl.Uniform1f(u["size"], core.ParticleSize)
	gl.Uniform1f(u["scale"], float32(r.fbHeight)/2)
	color := core.RGB32(core.ParticleColor)
	gl.Uniform3fv(u["color"], 1, &color[0])
	gl.Uniform1f(u["opacity"], core.ParticleOpacity)
	r.setFog(u, scene.Fog)

	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.pointData)*4, gl.Ptr(r.pointData))
	gl.DrawArrays(gl.POINTS, 0, int32(len(field.Particles)))
}

func (r *Renderer) drawCubes(scene *core.Scene, view, proj mgl32.Mat4) {
	gl.UseProgram(r.cubeProgram)
	u := r.cubeUniforms
	cam := &scene.State.Camera

	gl.UniformMatrix4fv(u["view"], 1, false, &view[0])
	gl.UniformMatrix4fv(u["projection"], 1, false, &proj[0])
	gl.Uniform3fv(u["cameraPos"], 1, &cam.Position[0])
	gl.Uniform1f(u["shininess"], core.Shininess)
	specular := [3]float32{0x11 / 255.0, 0x11 / 255.0, 0x11 / 255.0}
	gl.Uniform3fv(u["specular"], 1, &specular[0])

	lights := scene.Lights
	ambient := core.RGB32(lights.Ambient)
	gl.Uniform3fv(u["ambientColor"], 1, &ambient[0])
	dirs := [6]float32{}
	colors := [6]float32{}
	for i, l := range []core.DirectionalLight{lights.Key, lights.Fill} {
		c := core.RGB32(l.Color)
		copy(dirs[i*3:], l.Direction[:])
		for k := 0; k < 3; k++ {
			colors[i*3+k] = c[k] * l.Intensity
		}
	}
	gl.Uniform3fv(u["lightDir[0]"], 2, &dirs[0])
	gl.Uniform3fv(u["lightColor[0]"], 2, &colors[0])
	r.setFog(u, scene.Fog)

	gl.BindVertexArray(r.cubeVAO)
	r.order = rendering.BackToFront(cam, scene.Cubes, r.order)
	for _, i := range r.order {
		c := scene.Cubes[i]
		model := c.Model()
		normal := model.Mat3().Inv().Transpose()
		diffuse := core.RGB32(c.Color)
		emissive := core.RGB32(c.Emissive)

		gl.UniformMatrix4fv(u["model"], 1, false, &model[0])
		gl.UniformMatrix3fv(u["normalMatrix"], 1, false, &normal[0])
		gl.Uniform3fv(u["diffuse"], 1, &diffuse[0])
		gl.Uniform3fv(u["emissive"], 1, &emissive[0])
		gl.Uniform1f(u["opacity"], c.Opacity)
		gl.DrawArrays(gl.TRIANGLES, 0, r.cubeCount)
	}
	gl.BindVertexArray(0)
}

func (r *Renderer) setFog(u uniforms, fog core.Fog) {
	color := core.RGB32(fog.Color)
	gl.Uniform3fv(u["fogColor"], 1, &color[0])
	gl.Uniform1f(u["fogNear"], fog.Near)
	gl.Uniform1f(u["fogFar"], fog.Far)
}

// SetStatus shows status in the window title
func (r *Renderer) SetStatus(status string) {
	r.window.SetTitle(r.title + " | " + status)
}

// ReportStats updates the overlay bars
func (r *Renderer) ReportStats(stats rendering.FrameStats) {
	r.overlay.stats = stats
}

// PollEvents processes window events
func (r *Renderer) PollEvents() {
	glfw.PollEvents()
}

// WaitEvents sleeps until an event arrives or timeout passes
func (r *Renderer) WaitEvents(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

// ShouldClose returns true if the window should close
func (r *Renderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// Close releases GL objects and the window
func (r *Renderer) Close() {
	if r.cubeProgram != 0 {
		gl.DeleteProgram(r.cubeProgram)
	}
	if r.pointProgram != 0 {
		gl.DeleteProgram(r.pointProgram)
	}
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.pointVAO != 0 {
		gl.DeleteVertexArrays(1, &r.pointVAO)
		gl.DeleteBuffers(1, &r.pointVBO)
	}
	if r.overlay != nil {
		r.overlay.release()
	}
	r.window.Destroy()
	glfw.Terminate()
}
