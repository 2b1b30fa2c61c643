package graphics

import (
	"errors"
	"fmt"

	"mini-tri/internal/config"
	"mini-tri/internal/geometry"
	"mini-tri/internal/render"
	"mini-tri/internal/shader"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Surface presents rendered frames
type Surface interface {
	SwapBuffers()
}

// Info describes the current GL context
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Device is the OpenGL implementation of render.Device.
// The GL context must be current on the calling thread.
type Device struct {
	surface Surface
	vao     uint32
	clear   [4]float32
	info    Info
}

// NewDevice loads GL entry points for the current context
func NewDevice(surface Surface, s config.Settings) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	d := &Device{surface: surface, info: QueryInfo()}
	d.clear[0], d.clear[1], d.clear[2], d.clear[3] = s.ClearRGBA()

	// Core profile requires a bound VAO for attribute and element state
	gl.GenVertexArrays(1, &d.vao)
	return d, nil
}

// QueryInfo reads the identification strings of the current context
func QueryInfo() Info {
	return Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

func (d *Device) Info() Info {
	return d.info
}

func (d *Device) NewVertexBuffer(vertices []geometry.Vertex) (render.VertexBuffer, error) {
	data := geometry.Interleave(vertices)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := glError(); err != nil {
		gl.DeleteBuffers(1, &vbo)
		return nil, err
	}
	return &vertexBuffer{id: vbo, count: len(vertices)}, nil
}

func (d *Device) NewIndexBuffer(prim geometry.Primitive, indices []uint16) (render.IndexBuffer, error) {
	if n := prim.VerticesPerPrimitive(); n == 0 || len(indices)%n != 0 {
		return nil, fmt.Errorf("%d indices do not form whole %s", len(indices), prim)
	}

	gl.BindVertexArray(d.vao)
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	if err := glError(); err != nil {
		gl.DeleteBuffers(1, &ebo)
		return nil, err
	}
	return &indexBuffer{id: ebo, count: len(indices), prim: prim}, nil
}

func (d *Device) NewProgram(src shader.Source) (render.Program, error) {
	if !src.Version.SupportedBy(d.info.GLSL) {
		return nil, fmt.Errorf("glsl %d on context %q: %w", src.Version, d.info.GLSL, shader.ErrUnsupportedVersion)
	}
	s, err := NewShader(src)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Draw clears the back buffer and returns it as the next frame
func (d *Device) Draw() (render.Frame, error) {
	if err := glError(); err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}
	gl.ClearColor(d.clear[0], d.clear[1], d.clear[2], d.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return &frame{dev: d}, nil
}

// Release deletes the shared vertex array
func (d *Device) Release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

type frame struct {
	dev      *Device
	finished bool
}

// Draw renders ib as indexed primitives with depth test, blending and culling off
func (f *frame) Draw(vb render.VertexBuffer, ib render.IndexBuffer, p render.Program, u render.Uniforms) error {
	if f.finished {
		return errors.New("draw on finished frame")
	}
	if vb.Len() == 0 || ib.Len() == 0 {
		return fmt.Errorf("empty draw: %d vertices, %d indices", vb.Len(), ib.Len())
	}
	mode, ok := primitiveMode(ib.Primitive())
	if !ok {
		return fmt.Errorf("unsupported primitive %s", ib.Primitive())
	}
	v, ok := vb.(*vertexBuffer)
	if !ok {
		return fmt.Errorf("foreign vertex buffer %T", vb)
	}
	i, ok := ib.(*indexBuffer)
	if !ok {
		return fmt.Errorf("foreign index buffer %T", ib)
	}
	s, ok := p.(*Shader)
	if !ok {
		return fmt.Errorf("foreign program %T", p)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)

	s.Use()
	for _, uniform := range u {
		if err := s.Set(uniform.Name, uniform.Value); err != nil {
			return err
		}
	}

	gl.BindVertexArray(f.dev.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.id)
	for _, a := range geometry.Layout.Attributes {
		loc := gl.GetAttribLocation(s.ID, gl.Str(a.Name+"\x00"))
		if loc < 0 {
			// unused by this program
			continue
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), a.Components, gl.FLOAT, false, geometry.Layout.Stride, uintptr(a.Offset))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, i.id)

	gl.DrawElements(mode, int32(ib.Len()), gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)

	return glError()
}

func (f *frame) Finish() error {
	if f.finished {
		return errors.New("frame finished twice")
	}
	f.finished = true
	f.dev.surface.SwapBuffers()
	return glError()
}

func primitiveMode(p geometry.Primitive) (uint32, bool) {
	if p == geometry.TrianglesList {
		return gl.TRIANGLES, true
	}
	return 0, false
}

func glError() error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x (%s)", code, errorName(code))
	}
	return nil
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	default:
		return "unknown"
	}
}

type vertexBuffer struct {
	id    uint32
	count int
}

func (b *vertexBuffer) Len() int { return b.count }

func (b *vertexBuffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

type indexBuffer struct {
	id    uint32
	count int
	prim  geometry.Primitive
}

func (b *indexBuffer) Len() int                      { return b.count }
func (b *indexBuffer) Primitive() geometry.Primitive { return b.prim }

func (b *indexBuffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}
