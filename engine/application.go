// Package engine wires the platform, the renderer and the mesh queue into
// the interactive triage viewer.
package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/meshview/meshview/engine/assets"
	"github.com/meshview/meshview/engine/config"
	"github.com/meshview/meshview/engine/core"
	"github.com/meshview/meshview/engine/labels"
	"github.com/meshview/meshview/engine/math"
	"github.com/meshview/meshview/engine/platform"
	"github.com/meshview/meshview/engine/renderer"
	"github.com/meshview/meshview/engine/renderer/components"
	"github.com/meshview/meshview/engine/renderer/opengl"
)

// meshBuffers bundles the GPU objects backing the mesh currently on screen.
// They live until the next mesh replaces them.
type meshBuffers struct {
	vb   *renderer.VertexBuffer
	ib   *renderer.IndexBuffer
	va   *renderer.VertexArray
	bbox assets.BoundingBox
}

func (m *meshBuffers) destroy() {
	m.va.Destroy()
	m.ib.Destroy()
	m.vb.Destroy()
}

type Application struct {
	cfg      *config.Config
	platform *platform.Platform
	backend  *opengl.Backend
	renderer *renderer.Renderer
	shader   *renderer.Shader
	orbit    *components.OrbitCamera
	flight   *components.FlightCamera
	recorder *labels.Recorder
	clock    *core.Clock

	cursor  int
	mesh    *assets.Mesh
	buffers *meshBuffers

	paused   bool
	dragging bool
	lastX    float64
	lastY    float64
	tracking bool

	quit atomic.Bool
}

func New(cfg *config.Config) *Application {
	core.SetLogLevel(cfg.LogLevel)

	return &Application{
		cfg:      cfg,
		platform: platform.New(),
		flight:   components.NewFlightCamera(),
		orbit:    components.NewOrbitCamera(mgl32.HomogRotate3DX(math.DegToRad(float32(-55.0)))),
		clock:    core.NewClock(),
	}
}

// Initialize creates the window and context, sets up the GL state, compiles
// the shader, opens the label files and uploads the first mesh of the queue.
func (a *Application) Initialize() error {
	cfg := a.cfg

	if err := a.platform.Startup(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.Window.Samples, cfg.Window.VSync); err != nil {
		return err
	}

	backend, err := opengl.New()
	if err != nil {
		return err
	}
	backend.SetupState()
	a.backend = backend
	a.renderer = renderer.NewRenderer(backend)

	width, height := a.platform.FramebufferSize()
	a.renderer.Resize(int32(width), int32(height))

	recorder, err := labels.NewRecorder(cfg.Viewer.LabelsDir)
	if err != nil {
		return err
	}
	a.recorder = recorder

	a.shader = renderer.NewShader(backend, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	a.setInitialUniforms(float32(width), float32(height))

	a.platform.SetHandler(a)

	if err := a.loadNextMesh(); err != nil {
		return err
	}

	return nil
}

// setInitialUniforms seeds the program with sane defaults so the first frame
// renders even before the per-frame uniforms are applied.
func (a *Application) setInitialUniforms(width, height float32) {
	model := a.orbit.Model()
	view := mgl32.Ident4()
	projection := a.flight.Projection(width, height)

	material := renderer.NewMaterial(a.shader, nil)
	material.Bind()

	a.shader.SetUniform(renderer.UniformMatrix4("model", &model))
	a.shader.SetUniform(renderer.UniformMatrix4("view", &view))
	a.shader.SetUniform(renderer.UniformMatrix4("projection", &projection))
	a.shader.SetUniform(renderer.Uniform3f("object_color", 0.8, 0.8, 0.8))
	a.shader.SetUniform(renderer.Uniform3f("light_color", 1.0, 1.0, 1.0))
	a.shader.SetUniform(renderer.Uniform3f("light_pos", 0.0, 0.0, 0.0))

	a.shader.Unbind()
}

// Run drives the frame loop until the window closes or the queue runs out.
func (a *Application) Run() error {
	a.clock.Start()

	for !a.platform.ShouldClose() && !a.quit.Load() {
		a.drawFrame()
		a.platform.SwapBuffers()
		a.platform.PollEvents()
	}

	a.clock.Update()
	a.clock.Stop()
	core.LogInfo("stopped at file #%d after %.1fs", a.cursor, a.clock.Elapsed())

	a.shutdown()
	return nil
}

// RequestShutdown asks the frame loop to stop. Safe to call from another
// goroutine (signal handlers).
func (a *Application) RequestShutdown() {
	a.quit.Store(true)
}

func (a *Application) drawFrame() {
	a.renderer.Clear()

	if a.buffers == nil {
		return
	}

	width, height := a.platform.FramebufferSize()

	model := a.orbit.Model()
	view := a.orbit.View(a.buffers.bbox)
	projection := a.flight.Projection(float32(width), float32(height))
	light := a.orbit.Eye(a.buffers.bbox)

	material := renderer.NewMaterial(a.shader, []renderer.Uniform{
		renderer.UniformMatrix4("model", &model),
		renderer.UniformMatrix4("view", &view),
		renderer.UniformMatrix4("projection", &projection),
		renderer.Uniform3f("light_pos", light.X(), light.Y(), light.Z()),
	})

	a.renderer.Draw(a.buffers.va, a.buffers.ib, material)
}

// loadNextMesh replaces the current GPU buffers with the next queue entry.
// An exhausted queue closes the window.
func (a *Application) loadNextMesh() error {
	if a.cursor >= len(a.cfg.Viewer.Models) {
		core.LogInfo("model queue exhausted")
		a.platform.RequestClose()
		return nil
	}

	path := a.cfg.Viewer.Models[a.cursor]
	a.cursor++

	mesh, err := assets.LoadSTL(path)
	if err != nil {
		return fmt.Errorf("loading next mesh: %w", err)
	}

	if a.buffers != nil {
		a.buffers.destroy()
		a.buffers = nil
	}

	layout := renderer.NewBufferLayout()
	layout.Push(renderer.Float, 3, false)
	layout.Push(renderer.Float, 3, false)

	vb := renderer.NewVertexBuffer(a.backend, mesh.Vertices)
	va := renderer.NewVertexArray(a.backend)
	va.AddBuffer(vb, layout)
	ib := renderer.NewIndexBuffer(a.backend, mesh.Indices)

	ib.Unbind()
	va.Unbind()
	vb.Unbind()

	a.mesh = mesh
	a.buffers = &meshBuffers{vb: vb, ib: ib, va: va, bbox: mesh.BBox}

	return nil
}

// label records the current mesh into the given bucket and advances the
// queue.
func (a *Application) label(key labels.Key) {
	if a.mesh != nil {
		if err := a.recorder.Record(key, a.mesh.ID, a.mesh.Path); err != nil {
			core.LogError("recording label: %s", err)
		}
	}
	if err := a.loadNextMesh(); err != nil {
		core.LogError("%s", err)
		a.platform.RequestClose()
	}
}

func (a *Application) shutdown() {
	if a.buffers != nil {
		a.buffers.destroy()
		a.buffers = nil
	}
	if a.shader != nil {
		a.shader.Destroy()
	}
	if a.recorder != nil {
		if err := a.recorder.Close(); err != nil {
			core.LogError("closing label files: %s", err)
		}
	}
	a.platform.Shutdown()
}

// OnKey implements platform.InputHandler.
func (a *Application) OnKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}

	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		a.platform.RequestClose()
	case glfw.KeyC:
		if mods&glfw.ModControl != 0 {
			a.platform.RequestClose()
		}
	case glfw.KeyP:
		if action == glfw.Press {
			a.paused = !a.paused
		}
	case glfw.KeyLeft:
		a.orbit.Left()
	case glfw.KeyRight:
		a.orbit.Right()
	case glfw.KeyUp:
		a.orbit.Up()
	case glfw.KeyDown:
		a.orbit.Down()
	case glfw.KeyW:
		a.label(labels.KeyW)
	case glfw.KeyA:
		a.label(labels.KeyA)
	case glfw.KeyS:
		a.label(labels.KeyS)
	case glfw.KeyD:
		a.label(labels.KeyD)
	}
}

// OnMouseButton implements platform.InputHandler.
func (a *Application) OnMouseButton(button glfw.MouseButton, action glfw.Action) {
	if button != glfw.MouseButtonLeft {
		return
	}
	a.dragging = action == glfw.Press
	if !a.dragging {
		a.tracking = false
	}
}

// OnCursorMove implements platform.InputHandler.
func (a *Application) OnCursorMove(x, y float64) {
	if !a.dragging || a.paused {
		a.lastX, a.lastY = x, y
		return
	}

	if !a.tracking {
		// First sample of a drag; establish the reference point without
		// jerking the model.
		a.tracking = true
		a.lastX, a.lastY = x, y
		return
	}

	dx := float32(x - a.lastX)
	dy := float32(y - a.lastY)
	a.lastX, a.lastY = x, y

	a.orbit.MoveMouse(dx, dy)
}

// OnScroll implements platform.InputHandler.
func (a *Application) OnScroll(xoff, yoff float64) {
	a.flight.Scroll(float32(yoff))
}

// OnResize implements platform.InputHandler.
func (a *Application) OnResize(width, height int) {
	a.renderer.Resize(int32(width), int32(height))
	a.renderer.Clear()
}
