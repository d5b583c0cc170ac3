package renderer

import "fmt"

// ElementKind is the scalar type of one vertex attribute element. The opengl
// package maps it onto the backend's numeric constant; nothing in this
// package depends on those values.
type ElementKind uint8

const (
	Float ElementKind = iota
	UnsignedInt
)

// SizeOf returns the byte size of one scalar of this kind.
func (k ElementKind) SizeOf() int32 {
	switch k {
	case Float:
		return 4
	case UnsignedInt:
		return 4
	}
	panic(fmt.Sprintf("renderer: unknown element kind %d", k))
}

func (k ElementKind) String() string {
	switch k {
	case Float:
		return "float"
	case UnsignedInt:
		return "uint"
	}
	return "unknown"
}

// LayoutElement describes one attribute of an interleaved vertex record.
type LayoutElement struct {
	Count      int32
	Kind       ElementKind
	Normalized bool
}

// ByteSize returns the total byte size this element occupies in one vertex.
func (e LayoutElement) ByteSize() int32 {
	return e.Count * e.Kind.SizeOf()
}

// BufferLayout is an ordered description of the attributes packed into one
// vertex record. The stride accumulates as elements are pushed and is only
// meaningful once every attribute of the record has been added. There is no
// way to remove an element.
type BufferLayout struct {
	elements []LayoutElement
	stride   int32
}

func NewBufferLayout() *BufferLayout {
	return &BufferLayout{}
}

// Push appends one attribute and advances the stride by count scalars of the
// given kind.
func (l *BufferLayout) Push(kind ElementKind, count int32, normalized bool) {
	l.stride += count * kind.SizeOf()
	l.elements = append(l.elements, LayoutElement{
		Count:      count,
		Kind:       kind,
		Normalized: normalized,
	})
}

// Elements returns the attributes in push order.
func (l *BufferLayout) Elements() []LayoutElement {
	return l.elements
}

// Stride is the byte size of one complete vertex record.
func (l *BufferLayout) Stride() int32 {
	return l.stride
}

// VertexBuffer owns one GPU buffer holding raw interleaved vertex floats,
// uploaded once at construction.
type VertexBuffer struct {
	backend Backend
	id      uint32
}

// NewVertexBuffer allocates a GPU buffer and uploads data as a static buffer.
// Empty data is a precondition violation and panics.
func NewVertexBuffer(backend Backend, data []float32) *VertexBuffer {
	if len(data) == 0 {
		panic("renderer: vertex buffer created with no data")
	}
	id := backend.CreateBuffer()
	backend.BindBuffer(ArrayBuffer, id)
	backend.BufferDataFloat32(ArrayBuffer, data)
	return &VertexBuffer{backend: backend, id: id}
}

func (vb *VertexBuffer) Bind() {
	vb.backend.BindBuffer(ArrayBuffer, vb.id)
}

func (vb *VertexBuffer) Unbind() {
	vb.backend.BindBuffer(ArrayBuffer, 0)
}

// Destroy deletes the GPU buffer. The first call releases the handle; later
// calls do nothing.
func (vb *VertexBuffer) Destroy() {
	if vb.id != 0 {
		vb.backend.DeleteBuffer(vb.id)
		vb.id = 0
	}
}

// IndexBuffer owns one GPU buffer holding triangle indices plus the index
// count, fixed at construction.
type IndexBuffer struct {
	backend Backend
	id      uint32
	count   int32
}

// NewIndexBuffer allocates a GPU buffer and uploads indices as a static
// buffer. Empty indices are a precondition violation and panic.
func NewIndexBuffer(backend Backend, indices []uint32) *IndexBuffer {
	if len(indices) == 0 {
		panic("renderer: index buffer created with no indices")
	}
	id := backend.CreateBuffer()
	backend.BindBuffer(ElementArrayBuffer, id)
	backend.BufferDataUint32(ElementArrayBuffer, indices)
	return &IndexBuffer{backend: backend, id: id, count: int32(len(indices))}
}

// Count is the number of indices uploaded at construction.
func (ib *IndexBuffer) Count() int32 {
	return ib.count
}

func (ib *IndexBuffer) Bind() {
	ib.backend.BindBuffer(ElementArrayBuffer, ib.id)
}

func (ib *IndexBuffer) Unbind() {
	ib.backend.BindBuffer(ElementArrayBuffer, 0)
}

func (ib *IndexBuffer) Destroy() {
	if ib.id != 0 {
		ib.backend.DeleteBuffer(ib.id)
		ib.id = 0
	}
}
