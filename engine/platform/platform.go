// Package platform owns the window and the input event loop. The GL context
// it creates is bound to the main OS thread; everything that talks to the
// renderer has to stay on it.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/meshview/meshview/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// InputHandler receives window and input events. Callbacks arrive on the
// main thread during PollEvents.
type InputHandler interface {
	OnKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	OnMouseButton(button glfw.MouseButton, action glfw.Action)
	OnCursorMove(x, y float64)
	OnScroll(xoff, yoff float64)
	OnResize(width, height int)
}

type Platform struct {
	Window *glfw.Window
}

func New() *Platform {
	return &Platform{}
}

// Startup initializes GLFW, creates the window with an OpenGL 4.1 core
// context and makes that context current on this thread.
func (p *Platform) Startup(title string, width, height, samples int, vsync bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, samples)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	p.Window = window
	core.LogDebug("window created: %dx%d, vsync=%t, samples=%d", width, height, vsync, samples)

	return nil
}

// SetHandler wires the window callbacks to h.
func (p *Platform) SetHandler(h InputHandler) {
	p.Window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		h.OnKey(key, action, mods)
	})
	p.Window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		h.OnMouseButton(button, action)
	})
	p.Window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		h.OnCursorMove(xpos, ypos)
	})
	p.Window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		h.OnScroll(xoff, yoff)
	})
	p.Window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		h.OnResize(width, height)
	})
}

// FramebufferSize returns the drawable surface size in pixels.
func (p *Platform) FramebufferSize() (int, int) {
	return p.Window.GetFramebufferSize()
}

func (p *Platform) ShouldClose() bool {
	return p.Window.ShouldClose()
}

func (p *Platform) RequestClose() {
	p.Window.SetShouldClose(true)
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

func (p *Platform) Shutdown() {
	glfw.Terminate()
}
