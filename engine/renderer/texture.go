package renderer

// Texture owns one GPU texture object holding decoded RGBA pixels. Decoding
// image files into pixels is the caller's business (see the assets package);
// this type only uploads and binds.
type Texture struct {
	backend Backend
	id      uint32
}

// NewTexture uploads width*height RGBA pixels into a new texture object.
// Empty pixel data is a precondition violation and panics.
func NewTexture(backend Backend, width, height int32, pixels []uint8) *Texture {
	if len(pixels) == 0 {
		panic("renderer: texture created with no pixel data")
	}
	id := backend.CreateTexture()
	backend.BindTexture(id)
	backend.TexImageRGBA(width, height, pixels)
	backend.BindTexture(0)
	return &Texture{backend: backend, id: id}
}

// Bind makes the texture current on the given texture unit.
func (t *Texture) Bind(slot uint32) {
	t.backend.ActiveTexture(slot)
	t.backend.BindTexture(t.id)
}

func (t *Texture) Unbind() {
	t.backend.BindTexture(0)
}

func (t *Texture) Destroy() {
	if t.id != 0 {
		t.backend.DeleteTexture(t.id)
		t.id = 0
	}
}
