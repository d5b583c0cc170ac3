package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeBackend records every capability call so tests can assert on the exact
// sequence of work the core hands to the graphics context.
type fakeBackend struct {
	nextID uint32

	boundBuffers      map[BufferTarget][]uint32
	deletedBuffers    []uint32
	floatUploads      map[BufferTarget][][]float32
	uintUploads       map[BufferTarget][][]uint32
	boundVertexArrays []uint32
	deletedArrays     []uint32
	enabledSlots      []uint32
	attribPointers    []attribPointer

	shaderStages    map[uint32]ShaderStage
	compiledSources map[uint32]string
	failCompile     map[ShaderStage]bool
	failLink        bool
	deletedShaders  []uint32
	deletedPrograms []uint32
	attached        map[uint32][]uint32
	usedPrograms    []uint32
	linkCalls       int

	uniformLocations map[string]int32
	locationLookups  map[string]int
	uniformWrites    []string

	boundTextures   []uint32
	deletedTextures []uint32
	activeSlots     []uint32
	texUploads      int

	viewports [][2]int32
	clears    [][4]float32
	draws     []int32
}

type attribPointer struct {
	slot       uint32
	count      int32
	kind       ElementKind
	normalized bool
	stride     int32
	offset     int32
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		boundBuffers:     make(map[BufferTarget][]uint32),
		floatUploads:     make(map[BufferTarget][][]float32),
		uintUploads:      make(map[BufferTarget][][]uint32),
		shaderStages:     make(map[uint32]ShaderStage),
		compiledSources:  make(map[uint32]string),
		failCompile:      make(map[ShaderStage]bool),
		attached:         make(map[uint32][]uint32),
		uniformLocations: make(map[string]int32),
		locationLookups:  make(map[string]int),
	}
}

func (f *fakeBackend) allocID() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) CreateBuffer() uint32 { return f.allocID() }
func (f *fakeBackend) DeleteBuffer(id uint32) { f.deletedBuffers = append(f.deletedBuffers, id) }

func (f *fakeBackend) BindBuffer(target BufferTarget, id uint32) {
	f.boundBuffers[target] = append(f.boundBuffers[target], id)
}

func (f *fakeBackend) BufferDataFloat32(target BufferTarget, data []float32) {
	f.floatUploads[target] = append(f.floatUploads[target], data)
}

func (f *fakeBackend) BufferDataUint32(target BufferTarget, data []uint32) {
	f.uintUploads[target] = append(f.uintUploads[target], data)
}

func (f *fakeBackend) CreateVertexArray() uint32 { return f.allocID() }
func (f *fakeBackend) DeleteVertexArray(id uint32) { f.deletedArrays = append(f.deletedArrays, id) }

func (f *fakeBackend) BindVertexArray(id uint32) {
	f.boundVertexArrays = append(f.boundVertexArrays, id)
}

func (f *fakeBackend) EnableVertexAttrib(slot uint32) {
	f.enabledSlots = append(f.enabledSlots, slot)
}

func (f *fakeBackend) VertexAttribPointer(slot uint32, count int32, kind ElementKind, normalized bool, stride, offset int32) {
	f.attribPointers = append(f.attribPointers, attribPointer{
		slot:       slot,
		count:      count,
		kind:       kind,
		normalized: normalized,
		stride:     stride,
		offset:     offset,
	})
}

func (f *fakeBackend) CreateProgram() uint32 { return f.allocID() }
func (f *fakeBackend) DeleteProgram(id uint32) { f.deletedPrograms = append(f.deletedPrograms, id) }
func (f *fakeBackend) UseProgram(id uint32) { f.usedPrograms = append(f.usedPrograms, id) }

func (f *fakeBackend) CreateShader(stage ShaderStage) uint32 {
	id := f.allocID()
	f.shaderStages[id] = stage
	return id
}

func (f *fakeBackend) DeleteShader(id uint32) {
	f.deletedShaders = append(f.deletedShaders, id)
}

func (f *fakeBackend) CompileShader(id uint32, source string) (bool, string) {
	f.compiledSources[id] = source
	if f.failCompile[f.shaderStages[id]] {
		return false, fmt.Sprintf("0:1(1): error: syntax error in %s stage", f.shaderStages[id])
	}
	return true, ""
}

func (f *fakeBackend) AttachShader(program, shader uint32) {
	f.attached[program] = append(f.attached[program], shader)
}

func (f *fakeBackend) LinkProgram(program uint32) (bool, string) {
	f.linkCalls++
	if f.failLink {
		return false, "error: vertex and fragment interfaces do not match"
	}
	return true, ""
}

func (f *fakeBackend) GetUniformLocation(program uint32, name string) int32 {
	f.locationLookups[name]++
	if location, ok := f.uniformLocations[name]; ok {
		return location
	}
	return -1
}

func (f *fakeBackend) Uniform1i(location, v0 int32) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("1i@%d %d", location, v0))
}

func (f *fakeBackend) Uniform1f(location int32, v0 float32) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("1f@%d %g", location, v0))
}

func (f *fakeBackend) Uniform2f(location int32, v0, v1 float32) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("2f@%d %g %g", location, v0, v1))
}

func (f *fakeBackend) Uniform3f(location int32, v0, v1, v2 float32) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("3f@%d %g %g %g", location, v0, v1, v2))
}

func (f *fakeBackend) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("4f@%d %g %g %g %g", location, v0, v1, v2, v3))
}

func (f *fakeBackend) UniformMatrix3fv(location int32, m *mgl32.Mat3) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("mat3@%d", location))
}

func (f *fakeBackend) UniformMatrix4fv(location int32, m *mgl32.Mat4) {
	f.uniformWrites = append(f.uniformWrites, fmt.Sprintf("mat4@%d", location))
}

func (f *fakeBackend) CreateTexture() uint32 { return f.allocID() }
func (f *fakeBackend) DeleteTexture(id uint32) { f.deletedTextures = append(f.deletedTextures, id) }
func (f *fakeBackend) BindTexture(id uint32) { f.boundTextures = append(f.boundTextures, id) }
func (f *fakeBackend) ActiveTexture(slot uint32) {
	f.activeSlots = append(f.activeSlots, slot)
}
func (f *fakeBackend) TexImageRGBA(width, height int32, pixels []uint8) { f.texUploads++ }

func (f *fakeBackend) Viewport(width, height int32) {
	f.viewports = append(f.viewports, [2]int32{width, height})
}

func (f *fakeBackend) Clear(r, g, b, a float32) {
	f.clears = append(f.clears, [4]float32{r, g, b, a})
}

func (f *fakeBackend) DrawIndexedTriangles(count int32) {
	f.draws = append(f.draws, count)
}
