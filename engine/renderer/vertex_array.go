package renderer

// VertexArray owns one GPU vertex array object. The attribute pointer state
// registered by AddBuffer lives in the GPU object; the array keeps no
// reference to the buffer or layout it was built from.
type VertexArray struct {
	backend Backend
	id      uint32
}

func NewVertexArray(backend Backend) *VertexArray {
	return &VertexArray{backend: backend, id: backend.CreateVertexArray()}
}

// AddBuffer binds vb and this array as current, then registers one attribute
// slot per layout element. Slot i's byte offset is the sum of the sizes of
// elements 0..i-1 and every slot uses the layout's full stride, so the
// registered state agrees exactly with how the producer packed the
// interleaved vertex data.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *BufferLayout) {
	vb.Bind()
	va.Bind()

	var offset int32
	for i, element := range layout.Elements() {
		va.backend.EnableVertexAttrib(uint32(i))
		va.backend.VertexAttribPointer(uint32(i), element.Count, element.Kind, element.Normalized, layout.Stride(), offset)
		offset += element.ByteSize()
	}
}

func (va *VertexArray) Bind() {
	va.backend.BindVertexArray(va.id)
}

func (va *VertexArray) Unbind() {
	va.backend.BindVertexArray(0)
}

func (va *VertexArray) Destroy() {
	if va.id != 0 {
		va.backend.DeleteVertexArray(va.id)
		va.id = 0
	}
}
