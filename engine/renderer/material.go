package renderer

// Material pairs a shader with the uniform values to apply before one draw.
// It owns neither; build one fresh per draw call. Uniforms are applied in
// slice order, so anything a uniform depends on (a texture slot, say) must
// already be bound by the caller.
type Material struct {
	shader   *Shader
	uniforms []Uniform
}

func NewMaterial(shader *Shader, uniforms []Uniform) *Material {
	return &Material{shader: shader, uniforms: uniforms}
}

// Bind makes the shader current and applies every uniform in order.
func (m *Material) Bind() {
	m.shader.Bind()

	for _, uniform := range m.uniforms {
		m.shader.SetUniform(uniform)
	}
}
