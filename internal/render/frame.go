package render

import (
	"fmt"

	"mini-tri/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorStep is added to the offset's second component every frame
const ColorStep = 0.001

// ColorOffset is the animated uColor uniform.
// It grows without bound; nothing clamps or wraps it.
type ColorOffset struct {
	value mgl32.Vec3
}

// NewColorOffset starts at (1, 0, 0)
func NewColorOffset() *ColorOffset {
	return &ColorOffset{value: mgl32.Vec3{1, 0, 0}}
}

// Advance steps the animation by one frame and returns the new value
func (c *ColorOffset) Advance() mgl32.Vec3 {
	c.value[1] += ColorStep
	return c.value
}

func (c *ColorOffset) Value() mgl32.Vec3 {
	return c.value
}

// FrameRenderer draws the triangle once per call
type FrameRenderer struct {
	ctx    *Context
	color  *ColorOffset // nil for static variants
	prof   *profiling.Frame
	frames uint64
}

// NewFrameRenderer creates a renderer over ctx. A nil color disables the uColor uniform.
func NewFrameRenderer(ctx *Context, color *ColorOffset, prof *profiling.Frame) *FrameRenderer {
	if prof == nil {
		prof = profiling.NewFrame()
	}
	return &FrameRenderer{
		ctx:   ctx,
		color: color,
		prof:  prof,
	}
}

// RenderFrame acquires a frame, issues one indexed draw and presents it
func (r *FrameRenderer) RenderFrame() error {
	defer r.prof.Track("render.Frame")()

	stop := r.prof.Track("render.Acquire")
	frame, err := r.ctx.device.Draw()
	stop()
	if err != nil {
		return fmt.Errorf("acquire: %w: %w", ErrFrame, err)
	}

	uniforms := Uniforms{{Name: "matrix", Value: r.ctx.matrix}}
	if r.color != nil {
		uniforms = append(uniforms, Uniform{Name: "uColor", Value: r.color.Advance()})
	}

	stop = r.prof.Track("render.Draw")
	err = frame.Draw(r.ctx.vertices, r.ctx.indices, r.ctx.program, uniforms)
	stop()
	if err != nil {
		return fmt.Errorf("draw: %w: %w", ErrFrame, err)
	}

	stop = r.prof.Track("render.Finish")
	err = frame.Finish()
	stop()
	if err != nil {
		return fmt.Errorf("present: %w: %w", ErrFrame, err)
	}

	r.frames++
	return nil
}

// Frames returns how many frames were presented
func (r *FrameRenderer) Frames() uint64 {
	return r.frames
}

// Profile returns the stage timings recorded by RenderFrame
func (r *FrameRenderer) Profile() *profiling.Frame {
	return r.prof
}
