package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearResetsToBackgroundColor(t *testing.T) {
	backend := newFakeBackend()
	r := NewRenderer(backend)

	r.Clear()

	require.Len(t, backend.clears, 1)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, backend.clears[0])
}

func TestResizeUpdatesViewport(t *testing.T) {
	backend := newFakeBackend()
	r := NewRenderer(backend)

	r.Resize(1280, 720)

	assert.Equal(t, [][2]int32{{1280, 720}}, backend.viewports)
}

// A cube of 8 position+normal vertices and 12 triangles drawn end to end:
// the layout packs to a 24 byte stride with slots at offsets 0 and 12, and
// the draw covers all 36 indices in a single call.
func TestDrawCubeEndToEnd(t *testing.T) {
	backend := newFakeBackend()

	vertices := make([]float32, 8*6)
	indices := make([]uint32, 36)

	layout := NewBufferLayout()
	layout.Push(Float, 3, false)
	layout.Push(Float, 3, false)
	assert.Equal(t, int32(24), layout.Stride())

	vb := NewVertexBuffer(backend, vertices)
	va := NewVertexArray(backend)
	va.AddBuffer(vb, layout)
	ib := NewIndexBuffer(backend, indices)

	require.Len(t, backend.attribPointers, 2)
	assert.Equal(t, int32(0), backend.attribPointers[0].offset)
	assert.Equal(t, int32(12), backend.attribPointers[1].offset)

	vertexPath, fragmentPath := writeShaderSources(t)
	shader := NewShader(backend, vertexPath, fragmentPath)
	backend.uniformLocations["model"] = 3

	model := mgl32.Ident4()
	material := NewMaterial(shader, []Uniform{UniformMatrix4("model", &model)})

	r := NewRenderer(backend)
	r.Draw(va, ib, material)

	assert.Equal(t, []int32{36}, backend.draws)
	assert.Equal(t, []string{"mat4@3"}, backend.uniformWrites)
}

func TestDrawRebindsEverythingItNeeds(t *testing.T) {
	backend := newFakeBackend()

	vb := NewVertexBuffer(backend, make([]float32, 6))
	layout := NewBufferLayout()
	layout.Push(Float, 3, false)
	va := NewVertexArray(backend)
	va.AddBuffer(vb, layout)
	ib := NewIndexBuffer(backend, []uint32{0, 1, 2})

	vertexPath, fragmentPath := writeShaderSources(t)
	shader := NewShader(backend, vertexPath, fragmentPath)
	material := NewMaterial(shader, nil)

	arrayBindsBefore := len(backend.boundVertexArrays)
	indexBindsBefore := len(backend.boundBuffers[ElementArrayBuffer])
	programUsesBefore := len(backend.usedPrograms)

	r := NewRenderer(backend)
	r.Draw(va, ib, material)

	assert.Equal(t, arrayBindsBefore+1, len(backend.boundVertexArrays))
	assert.Equal(t, indexBindsBefore+1, len(backend.boundBuffers[ElementArrayBuffer]))
	assert.Equal(t, programUsesBefore+1, len(backend.usedPrograms))
}

func TestMaterialAppliesUniformsInOrder(t *testing.T) {
	backend := newFakeBackend()
	backend.uniformLocations["a"] = 1
	backend.uniformLocations["b"] = 2

	vertexPath, fragmentPath := writeShaderSources(t)
	shader := NewShader(backend, vertexPath, fragmentPath)

	material := NewMaterial(shader, []Uniform{
		Uniform1f("a", 1),
		Uniform1f("b", 2),
		Uniform1f("a", 3),
	})
	material.Bind()

	assert.Equal(t, []string{"1f@1 1", "1f@2 2", "1f@1 3"}, backend.uniformWrites)
}

func TestTextureLifecycle(t *testing.T) {
	backend := newFakeBackend()

	assert.Panics(t, func() { NewTexture(backend, 0, 0, nil) })

	tex := NewTexture(backend, 2, 2, make([]uint8, 16))
	assert.Equal(t, 1, backend.texUploads)

	tex.Bind(0)
	assert.Equal(t, []uint32{0}, backend.activeSlots)

	tex.Destroy()
	tex.Destroy()
	assert.Len(t, backend.deletedTextures, 1)
}
