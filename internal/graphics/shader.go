package graphics

import (
	"bytes"
	"fmt"
	"strings"

	"mini-tri/internal/shader"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID      uint32
	version shader.Version
}

// NewShader compiles and links src into a program.
// Every uniform src declares must be active in the linked program.
func NewShader(src shader.Source) (*Shader, error) {
	stages := []stage{
		{kind: gl.VERTEX_SHADER, name: "vertex", text: src.Vertex},
		{kind: gl.FRAGMENT_SHADER, name: "fragment", text: src.Fragment},
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		id, log, ok := st.compile()
		if !ok {
			gl.DeleteProgram(program)
			return nil, &BuildError{Version: src.Version, Step: st.name, Log: log}
		}
		// the object lives on until the program is deleted
		gl.AttachShader(program, id)
		gl.DeleteShader(id)
	}

	gl.LinkProgram(program)
	var linked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	if linked != gl.TRUE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := readLog(length, func(n int32, buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
		gl.DeleteProgram(program)
		return nil, &BuildError{Version: src.Version, Step: "link", Log: log}
	}

	s := &Shader{ID: program, version: src.Version}
	if missing := inactiveUniforms(src.Uniforms, s.location); len(missing) > 0 {
		s.Release()
		return nil, &BuildError{
			Version: src.Version,
			Step:    "uniforms",
			Log:     "not active: " + strings.Join(missing, ", "),
		}
	}
	return s, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

func (s *Shader) Version() shader.Version {
	return s.version
}

// Release deletes the GL program
func (s *Shader) Release() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

// SetVector3 sets a vector3 uniform
func (s *Shader) SetVector3(name string, v mgl32.Vec3) {
	gl.Uniform3f(s.location(name), v[0], v[1], v[2])
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &m[0])
}

// Set binds value to the named uniform. The program must be in use.
func (s *Shader) Set(name string, value any) error {
	switch v := value.(type) {
	case mgl32.Mat4:
		s.SetMatrix4(name, v)
	case mgl32.Vec3:
		s.SetVector3(name, v)
	case float32:
		s.SetFloat(name, v)
	default:
		return fmt.Errorf("uniform %q: unsupported type %T", name, value)
	}
	return nil
}

// BuildError is a failed compile, link or uniform check for one GLSL program
type BuildError struct {
	Version shader.Version
	Step    string // vertex, fragment, link or uniforms
	Log     string
}

func (e *BuildError) Error() string {
	log := e.Log
	if log == "" {
		log = "no info log"
	}
	return fmt.Sprintf("glsl %d %s: %s", e.Version, e.Step, log)
}

type stage struct {
	kind uint32
	name string
	text string
}

// compile returns the shader object, or the driver's info log when compilation fails
func (st stage) compile() (uint32, string, bool) {
	id := gl.CreateShader(st.kind)
	text, free := gl.Strs(st.text + "\x00")
	gl.ShaderSource(id, 1, text, nil)
	free()
	gl.CompileShader(id)

	var compiled int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &compiled)
	if compiled == gl.TRUE {
		return id, "", true
	}

	var length int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &length)
	log := readLog(length, func(n int32, buf *uint8) { gl.GetShaderInfoLog(id, n, nil, buf) })
	gl.DeleteShader(id)
	return 0, log, false
}

func readLog(length int32, read func(n int32, buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	read(length, &buf[0])
	return trimLog(buf)
}

// trimLog drops the NUL terminator and trailing newlines drivers append
func trimLog(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.TrimSpace(string(buf))
}

// inactiveUniforms lists declared names the linker dropped or never saw
func inactiveUniforms(names []string, locate func(string) int32) []string {
	var missing []string
	for _, name := range names {
		if locate(name) < 0 {
			missing = append(missing, name)
		}
	}
	return missing
}
