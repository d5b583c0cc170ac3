// Package opengl implements the renderer backend over an OpenGL 4.1 core
// context loaded through go-gl. A context must be current on the calling
// thread before New is called, and every method must stay on that thread.
package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/meshview/meshview/engine/core"
	"github.com/meshview/meshview/engine/renderer"
)

type Backend struct{}

// New loads the GL function pointers from the current context.
func New() (*Backend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	core.LogInfo("OpenGL version '%s'", version)

	return &Backend{}, nil
}

// SetupState enables the fixed pipeline state the viewer renders with:
// alpha blending, depth testing and multisampling.
func (b *Backend) SetupState() {
	check(func() { gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA) })
	check(func() { gl.Enable(gl.BLEND) })
	check(func() { gl.Enable(gl.DEPTH_TEST) })
	check(func() { gl.Enable(gl.MULTISAMPLE) })
}

// bufferTarget maps the semantic target onto the GL constant. The mapping is
// explicit so the renderer's enums never depend on GL's numeric values.
func bufferTarget(target renderer.BufferTarget) uint32 {
	switch target {
	case renderer.ArrayBuffer:
		return gl.ARRAY_BUFFER
	case renderer.ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	}
	panic(fmt.Sprintf("opengl: unknown buffer target %d", target))
}

func elementType(kind renderer.ElementKind) uint32 {
	switch kind {
	case renderer.Float:
		return gl.FLOAT
	case renderer.UnsignedInt:
		return gl.UNSIGNED_INT
	}
	panic(fmt.Sprintf("opengl: unknown element kind %d", kind))
}

func stageType(stage renderer.ShaderStage) uint32 {
	switch stage {
	case renderer.VertexStage:
		return gl.VERTEX_SHADER
	case renderer.FragmentStage:
		return gl.FRAGMENT_SHADER
	}
	panic(fmt.Sprintf("opengl: unknown shader stage %d", stage))
}

func (b *Backend) CreateBuffer() uint32 {
	var id uint32
	check(func() { gl.GenBuffers(1, &id) })
	return id
}

func (b *Backend) DeleteBuffer(id uint32) {
	check(func() { gl.DeleteBuffers(1, &id) })
}

func (b *Backend) BindBuffer(target renderer.BufferTarget, id uint32) {
	check(func() { gl.BindBuffer(bufferTarget(target), id) })
}

func (b *Backend) BufferDataFloat32(target renderer.BufferTarget, data []float32) {
	check(func() { gl.BufferData(bufferTarget(target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW) })
}

func (b *Backend) BufferDataUint32(target renderer.BufferTarget, data []uint32) {
	check(func() { gl.BufferData(bufferTarget(target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW) })
}

func (b *Backend) CreateVertexArray() uint32 {
	var id uint32
	check(func() { gl.GenVertexArrays(1, &id) })
	return id
}

func (b *Backend) DeleteVertexArray(id uint32) {
	check(func() { gl.DeleteVertexArrays(1, &id) })
}

func (b *Backend) BindVertexArray(id uint32) {
	check(func() { gl.BindVertexArray(id) })
}

func (b *Backend) EnableVertexAttrib(slot uint32) {
	check(func() { gl.EnableVertexAttribArray(slot) })
}

func (b *Backend) VertexAttribPointer(slot uint32, count int32, kind renderer.ElementKind, normalized bool, stride, offset int32) {
	check(func() {
		gl.VertexAttribPointerWithOffset(slot, count, elementType(kind), normalized, stride, uintptr(offset))
	})
}

func (b *Backend) CreateProgram() uint32 {
	var id uint32
	check(func() { id = gl.CreateProgram() })
	return id
}

func (b *Backend) DeleteProgram(id uint32) {
	check(func() { gl.DeleteProgram(id) })
}

func (b *Backend) UseProgram(id uint32) {
	check(func() { gl.UseProgram(id) })
}

func (b *Backend) CreateShader(stage renderer.ShaderStage) uint32 {
	var id uint32
	check(func() { id = gl.CreateShader(stageType(stage)) })
	return id
}

func (b *Backend) DeleteShader(id uint32) {
	check(func() { gl.DeleteShader(id) })
}

func (b *Backend) CompileShader(id uint32, source string) (bool, string) {
	csources, free := gl.Strs(source + "\x00")
	check(func() { gl.ShaderSource(id, 1, csources, nil) })
	free()

	check(func() { gl.CompileShader(id) })

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return false, shaderInfoLog(id)
	}
	return true, ""
}

func (b *Backend) AttachShader(program, shader uint32) {
	check(func() { gl.AttachShader(program, shader) })
}

func (b *Backend) LinkProgram(program uint32) (bool, string) {
	check(func() { gl.LinkProgram(program) })
	check(func() { gl.ValidateProgram(program) })

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return false, programInfoLog(program)
	}
	return true, ""
}

func shaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(id, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (b *Backend) GetUniformLocation(program uint32, name string) int32 {
	var location int32
	check(func() { location = gl.GetUniformLocation(program, gl.Str(name+"\x00")) })
	return location
}

func (b *Backend) Uniform1i(location, v0 int32) {
	check(func() { gl.Uniform1i(location, v0) })
}

func (b *Backend) Uniform1f(location int32, v0 float32) {
	check(func() { gl.Uniform1f(location, v0) })
}

func (b *Backend) Uniform2f(location int32, v0, v1 float32) {
	check(func() { gl.Uniform2f(location, v0, v1) })
}

func (b *Backend) Uniform3f(location int32, v0, v1, v2 float32) {
	check(func() { gl.Uniform3f(location, v0, v1, v2) })
}

func (b *Backend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	check(func() { gl.Uniform4f(location, v0, v1, v2, v3) })
}

func (b *Backend) UniformMatrix3fv(location int32, m *mgl32.Mat3) {
	check(func() { gl.UniformMatrix3fv(location, 1, false, &m[0]) })
}

func (b *Backend) UniformMatrix4fv(location int32, m *mgl32.Mat4) {
	check(func() { gl.UniformMatrix4fv(location, 1, false, &m[0]) })
}

func (b *Backend) CreateTexture() uint32 {
	var id uint32
	check(func() { gl.GenTextures(1, &id) })
	return id
}

func (b *Backend) DeleteTexture(id uint32) {
	check(func() { gl.DeleteTextures(1, &id) })
}

func (b *Backend) BindTexture(id uint32) {
	check(func() { gl.BindTexture(gl.TEXTURE_2D, id) })
}

func (b *Backend) ActiveTexture(slot uint32) {
	check(func() { gl.ActiveTexture(gl.TEXTURE0 + slot) })
}

func (b *Backend) TexImageRGBA(width, height int32, pixels []uint8) {
	check(func() { gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR) })
	check(func() { gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR) })
	check(func() { gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE) })
	check(func() { gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE) })
	check(func() {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	})
}

func (b *Backend) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (b *Backend) Clear(r, g, bl, a float32) {
	gl.ClearColor(r, g, bl, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *Backend) DrawIndexedTriangles(count int32) {
	check(func() { gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0)) })
}
