// Package renderer is a thin abstraction over an immediate-mode graphics
// context. It owns the lifetime of GPU objects (buffers, vertex arrays,
// programs, textures) and issues per-frame draw calls; everything it needs
// from the context itself comes through the Backend interface.
//
// The context's binding state is global and implicit, so nothing here tracks
// or restores it: operations rebind what they depend on immediately before
// using it. All calls must stay on the thread that owns the context.
package renderer

// Renderer clears the frame and issues indexed draw calls. It holds no state
// between calls; every draw is self-contained given its three arguments.
type Renderer struct {
	backend Backend
}

func NewRenderer(backend Backend) *Renderer {
	return &Renderer{backend: backend}
}

// Clear resets the color and depth buffers to the background color.
func (r *Renderer) Clear() {
	r.backend.Clear(0.0, 0.0, 0.0, 1.0)
}

// Resize updates the viewport to the new framebuffer dimensions.
func (r *Renderer) Resize(width, height int32) {
	r.backend.Viewport(width, height)
}

// Draw binds the material (shader + uniforms), the vertex array, and the
// index buffer, then issues one indexed triangle-list draw call covering the
// index buffer's full count.
func (r *Renderer) Draw(va *VertexArray, ib *IndexBuffer, material *Material) {
	material.Bind()

	va.Bind()
	ib.Bind()

	r.backend.DrawIndexedTriangles(ib.Count())
}
