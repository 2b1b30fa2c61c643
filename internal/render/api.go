package render

import (
	"mini-tri/internal/geometry"
	"mini-tri/internal/shader"
)

// Device is the GPU connection behind a window surface
type Device interface {
	NewVertexBuffer(vertices []geometry.Vertex) (VertexBuffer, error)
	NewIndexBuffer(prim geometry.Primitive, indices []uint16) (IndexBuffer, error)
	NewProgram(src shader.Source) (Program, error)

	// Draw acquires the drawable target for the next frame
	Draw() (Frame, error)
}

// Frame is a drawable target that must be finished to be presented
type Frame interface {
	// Draw issues one indexed draw with the backend's default raster and blend state
	Draw(vb VertexBuffer, ib IndexBuffer, p Program, u Uniforms) error
	Finish() error
}

type VertexBuffer interface {
	// Len is the number of vertices uploaded
	Len() int
	Release()
}

type IndexBuffer interface {
	// Len is the number of indices uploaded
	Len() int
	Primitive() geometry.Primitive
	Release()
}

type Program interface {
	Version() shader.Version
	Release()
}
