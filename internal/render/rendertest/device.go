// Package rendertest provides a recording render.Device for tests.
package rendertest

import (
	"errors"

	"mini-tri/internal/geometry"
	"mini-tri/internal/render"
	"mini-tri/internal/shader"
)

// ErrInjected is the default error returned by failure hooks
var ErrInjected = errors.New("injected failure")

// DrawCall is one recorded Frame.Draw
type DrawCall struct {
	Vertices  int
	Indices   int
	Primitive geometry.Primitive
	Version   shader.Version
	Uniforms  render.Uniforms
}

// Device records every call made against it.
// Set a Fail* field to make the matching call return that error.
type Device struct {
	FailVertexBuffer error
	FailIndexBuffer  error
	FailProgram      error
	FailAcquire      error
	FailDraw         error
	FailFinish       error

	// Calls lists "vertex", "index", "program", "acquire", "draw" and "finish" in order
	Calls    []string
	Buffers  []*VertexBuffer
	Indices  []*IndexBuffer
	Programs []*Program
	Draws    []DrawCall
	Presents int
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) NewVertexBuffer(vertices []geometry.Vertex) (render.VertexBuffer, error) {
	d.Calls = append(d.Calls, "vertex")
	if d.FailVertexBuffer != nil {
		return nil, d.FailVertexBuffer
	}
	vb := &VertexBuffer{Data: append([]geometry.Vertex(nil), vertices...)}
	d.Buffers = append(d.Buffers, vb)
	return vb, nil
}

func (d *Device) NewIndexBuffer(prim geometry.Primitive, indices []uint16) (render.IndexBuffer, error) {
	d.Calls = append(d.Calls, "index")
	if d.FailIndexBuffer != nil {
		return nil, d.FailIndexBuffer
	}
	ib := &IndexBuffer{Data: append([]uint16(nil), indices...), Prim: prim}
	d.Indices = append(d.Indices, ib)
	return ib, nil
}

func (d *Device) NewProgram(src shader.Source) (render.Program, error) {
	d.Calls = append(d.Calls, "program")
	if d.FailProgram != nil {
		return nil, d.FailProgram
	}
	p := &Program{Source: src}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) Draw() (render.Frame, error) {
	d.Calls = append(d.Calls, "acquire")
	if d.FailAcquire != nil {
		return nil, d.FailAcquire
	}
	return &Frame{dev: d}, nil
}

// Frames returns the number of frames acquired
func (d *Device) Frames() int {
	n := 0
	for _, c := range d.Calls {
		if c == "acquire" {
			n++
		}
	}
	return n
}

// Frame records draws into its device
type Frame struct {
	dev      *Device
	finished bool
}

func (f *Frame) Draw(vb render.VertexBuffer, ib render.IndexBuffer, p render.Program, u render.Uniforms) error {
	f.dev.Calls = append(f.dev.Calls, "draw")
	if f.dev.FailDraw != nil {
		return f.dev.FailDraw
	}
	if f.finished {
		return errors.New("draw on finished frame")
	}
	f.dev.Draws = append(f.dev.Draws, DrawCall{
		Vertices:  vb.Len(),
		Indices:   ib.Len(),
		Primitive: ib.Primitive(),
		Version:   p.Version(),
		Uniforms:  append(render.Uniforms(nil), u...),
	})
	return nil
}

func (f *Frame) Finish() error {
	f.dev.Calls = append(f.dev.Calls, "finish")
	if f.dev.FailFinish != nil {
		return f.dev.FailFinish
	}
	if f.finished {
		return errors.New("frame finished twice")
	}
	f.finished = true
	f.dev.Presents++
	return nil
}

type VertexBuffer struct {
	Data     []geometry.Vertex
	Released bool
}

func (b *VertexBuffer) Len() int { return len(b.Data) }
func (b *VertexBuffer) Release() { b.Released = true }

type IndexBuffer struct {
	Data     []uint16
	Prim     geometry.Primitive
	Released bool
}

func (b *IndexBuffer) Len() int                      { return len(b.Data) }
func (b *IndexBuffer) Primitive() geometry.Primitive { return b.Prim }
func (b *IndexBuffer) Release()                      { b.Released = true }

type Program struct {
	Source   shader.Source
	Released bool
}

func (p *Program) Version() shader.Version { return p.Source.Version }
func (p *Program) Release()                { p.Released = true }
