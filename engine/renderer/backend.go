package renderer

import "github.com/go-gl/mathgl/mgl32"

// BufferTarget selects which slot of the context's implicit binding state a
// buffer operation acts on.
type BufferTarget uint8

const (
	// ArrayBuffer is the vertex attribute source slot.
	ArrayBuffer BufferTarget = iota
	// ElementArrayBuffer is the index source slot.
	ElementArrayBuffer
)

// ShaderStage identifies one compilation stage of a program.
type ShaderStage uint8

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Backend is the capability set this layer consumes from the graphics
// context. The opengl package implements it over a real GL context; tests
// substitute a recording fake. Every call is synchronous and must be made on
// the thread that owns the context. Handles returned by the Create* calls are
// owned by exactly one caller and are invalid after the matching Delete*.
type Backend interface {
	// Buffer objects.
	CreateBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target BufferTarget, id uint32)
	BufferDataFloat32(target BufferTarget, data []float32)
	BufferDataUint32(target BufferTarget, data []uint32)

	// Vertex array objects.
	CreateVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttrib(slot uint32)
	VertexAttribPointer(slot uint32, count int32, kind ElementKind, normalized bool, stride, offset int32)

	// Shader stages and programs.
	CreateProgram() uint32
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	CreateShader(stage ShaderStage) uint32
	DeleteShader(id uint32)
	CompileShader(id uint32, source string) (ok bool, infoLog string)
	AttachShader(program, shader uint32)
	LinkProgram(program uint32) (ok bool, infoLog string)

	// Uniforms.
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v0 int32)
	Uniform1f(location int32, v0 float32)
	Uniform2f(location int32, v0, v1 float32)
	Uniform3f(location int32, v0, v1, v2 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix3fv(location int32, m *mgl32.Mat3)
	UniformMatrix4fv(location int32, m *mgl32.Mat4)

	// Textures.
	CreateTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(id uint32)
	ActiveTexture(slot uint32)
	TexImageRGBA(width, height int32, pixels []uint8)

	// Frame operations.
	Viewport(width, height int32)
	Clear(r, g, b, a float32)
	DrawIndexedTriangles(count int32)
}
