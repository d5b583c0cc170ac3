package renderer

import (
	"fmt"
	"os"

	"github.com/meshview/meshview/engine/core"
)

// Shader owns one GPU program object built from a vertex and a fragment
// stage, plus a cache of resolved uniform locations. A program handle of 0
// means a stage failed to compile; the shader is then a valid Go value that
// renders nothing (see NewShader).
type Shader struct {
	backend      Backend
	program      uint32
	uniformCache map[string]int32
}

// NewShader reads both stage sources from disk, compiles and links them, and
// leaves the program bound as current. Unreadable source files panic. A stage
// that fails to compile has its diagnostic logged and yields the 0 sentinel
// program instead of aborting, so a broken shader can be iterated on without
// killing the process; a link failure panics.
func NewShader(backend Backend, vertexPath, fragmentPath string) *Shader {
	vertexSrc, err := os.ReadFile(vertexPath)
	if err != nil {
		panic(fmt.Sprintf("renderer: reading vertex shader %s: %v", vertexPath, err))
	}
	fragmentSrc, err := os.ReadFile(fragmentPath)
	if err != nil {
		panic(fmt.Sprintf("renderer: reading fragment shader %s: %v", fragmentPath, err))
	}

	program := createProgram(backend, string(vertexSrc), string(fragmentSrc))
	backend.UseProgram(program)

	return &Shader{
		backend:      backend,
		program:      program,
		uniformCache: make(map[string]int32),
	}
}

func compileStage(backend Backend, stage ShaderStage, source string) uint32 {
	id := backend.CreateShader(stage)
	ok, infoLog := backend.CompileShader(id, source)
	if !ok {
		core.LogError("%s shader failed to compile:\n%s", stage, infoLog)
		backend.DeleteShader(id)
		return 0
	}
	return id
}

func createProgram(backend Backend, vertexSrc, fragmentSrc string) uint32 {
	program := backend.CreateProgram()
	vs := compileStage(backend, VertexStage, vertexSrc)
	fs := compileStage(backend, FragmentStage, fragmentSrc)

	if vs == 0 || fs == 0 {
		// A failed stage leaves nothing worth linking. Hand back the zero
		// sentinel; callers are expected to keep going with a program that
		// renders nothing.
		if vs != 0 {
			backend.DeleteShader(vs)
		}
		if fs != 0 {
			backend.DeleteShader(fs)
		}
		backend.DeleteProgram(program)
		return 0
	}

	backend.AttachShader(program, vs)
	backend.AttachShader(program, fs)

	ok, infoLog := backend.LinkProgram(program)
	if !ok {
		panic(fmt.Sprintf("renderer: program link failed:\n%s", infoLog))
	}

	backend.DeleteShader(vs)
	backend.DeleteShader(fs)

	return program
}

// SetUniform resolves the uniform's location (cached per name for the
// program's lifetime) and uploads the value. Names the compiler discarded
// resolve to -1, which is logged once and then written as a no-op.
func (s *Shader) SetUniform(u Uniform) {
	location := s.uniformLocation(u.Name)

	switch u.kind {
	case uniformInt1:
		s.backend.Uniform1i(location, u.i0)
	case uniformFloat1:
		s.backend.Uniform1f(location, u.f[0])
	case uniformFloat2:
		s.backend.Uniform2f(location, u.f[0], u.f[1])
	case uniformFloat3:
		s.backend.Uniform3f(location, u.f[0], u.f[1], u.f[2])
	case uniformFloat4:
		s.backend.Uniform4f(location, u.f[0], u.f[1], u.f[2], u.f[3])
	case uniformMatrix3:
		s.backend.UniformMatrix3fv(location, u.mat3)
	case uniformMatrix4:
		s.backend.UniformMatrix4fv(location, u.mat4)
	}
}

// uniformLocation memoizes backend lookups, including failed ones, so the
// backend is queried at most once per name for this program.
func (s *Shader) uniformLocation(name string) int32 {
	if location, ok := s.uniformCache[name]; ok {
		return location
	}

	location := s.backend.GetUniformLocation(s.program, name)
	if location == -1 {
		core.LogWarn("could not find location for uniform %q", name)
	}
	s.uniformCache[name] = location

	return location
}

func (s *Shader) Bind() {
	s.backend.UseProgram(s.program)
}

func (s *Shader) Unbind() {
	s.backend.UseProgram(0)
}

// Valid reports whether both stages compiled. An invalid shader still binds
// and accepts uniforms; the writes go nowhere.
func (s *Shader) Valid() bool {
	return s.program != 0
}

// Destroy deletes the GPU program. Safe to call more than once; only the
// first call deletes.
func (s *Shader) Destroy() {
	if s.program != 0 {
		s.backend.DeleteProgram(s.program)
		s.program = 0
	}
}
