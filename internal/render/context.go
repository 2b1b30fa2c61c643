package render

import (
	"errors"
	"fmt"

	"mini-tri/internal/geometry"
	"mini-tri/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrBufferAlloc   = errors.New("buffer allocation failed")
	ErrShaderCompile = errors.New("shader compilation failed")
	ErrFrame         = errors.New("frame rendering failed")
)

// Context owns the device, the triangle buffers and the compiled program
// for the lifetime of the window.
type Context struct {
	device   Device
	program  Program
	vertices VertexBuffer
	indices  IndexBuffer
	matrix   mgl32.Mat4
}

// NewContext uploads the fixed triangle and compiles src.
// Nothing is left allocated when it fails.
func NewContext(dev Device, src shader.Source) (*Context, error) {
	vb, err := dev.NewVertexBuffer(geometry.TriangleVertices())
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w: %w", ErrBufferAlloc, err)
	}

	ib, err := dev.NewIndexBuffer(geometry.TrianglesList, geometry.TriangleIndices())
	if err != nil {
		vb.Release()
		return nil, fmt.Errorf("index buffer: %w: %w", ErrBufferAlloc, err)
	}

	prog, err := dev.NewProgram(src)
	if err != nil {
		ib.Release()
		vb.Release()
		return nil, fmt.Errorf("glsl %d: %w: %w", src.Version, ErrShaderCompile, err)
	}

	return &Context{
		device:   dev,
		program:  prog,
		vertices: vb,
		indices:  ib,
		matrix:   mgl32.Ident4(),
	}, nil
}

// Matrix returns the transform supplied to every draw
func (c *Context) Matrix() mgl32.Mat4 {
	return c.matrix
}

func (c *Context) Program() Program {
	return c.program
}

// Release frees GPU objects in reverse creation order
func (c *Context) Release() {
	c.program.Release()
	c.indices.Release()
	c.vertices.Release()
}
