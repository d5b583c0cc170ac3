package renderer

import "github.com/go-gl/mathgl/mgl32"

type uniformKind uint8

const (
	uniformInt1 uniformKind = iota
	uniformFloat1
	uniformFloat2
	uniformFloat3
	uniformFloat4
	uniformMatrix3
	uniformMatrix4
)

// Uniform is a named shader input value for one draw call. Build them fresh
// each frame with the constructors below; matrices are referenced, not
// copied, and must outlive the draw they are applied to.
type Uniform struct {
	Name string
	kind uniformKind
	i0   int32
	f    [4]float32
	mat3 *mgl32.Mat3
	mat4 *mgl32.Mat4
}

func Uniform1i(name string, v0 int32) Uniform {
	return Uniform{Name: name, kind: uniformInt1, i0: v0}
}

func Uniform1f(name string, v0 float32) Uniform {
	return Uniform{Name: name, kind: uniformFloat1, f: [4]float32{v0}}
}

func Uniform2f(name string, v0, v1 float32) Uniform {
	return Uniform{Name: name, kind: uniformFloat2, f: [4]float32{v0, v1}}
}

func Uniform3f(name string, v0, v1, v2 float32) Uniform {
	return Uniform{Name: name, kind: uniformFloat3, f: [4]float32{v0, v1, v2}}
}

func Uniform4f(name string, v0, v1, v2, v3 float32) Uniform {
	return Uniform{Name: name, kind: uniformFloat4, f: [4]float32{v0, v1, v2, v3}}
}

func UniformMatrix3(name string, m *mgl32.Mat3) Uniform {
	return Uniform{Name: name, kind: uniformMatrix3, mat3: m}
}

func UniformMatrix4(name string, m *mgl32.Mat4) Uniform {
	return Uniform{Name: name, kind: uniformMatrix4, mat4: m}
}
