package app

import (
	"fmt"

	"mini-tri/internal/profiling"
	"mini-tri/internal/render"
	"mini-tri/internal/shader"
)

// Build creates the render context for p on dev and a handler that draws it.
// Nothing is drawn until the first redraw event.
func Build(dev render.Device, p Profile, prof *profiling.Frame) (*Handler, *render.Context, error) {
	src, err := shader.Triangle(p.Version)
	if err != nil {
		return nil, nil, err
	}
	if p.Animated && !src.HasUniform("uColor") {
		return nil, nil, fmt.Errorf("profile %s: glsl %d has no uColor uniform: %w", p.Name, p.Version, render.ErrShaderCompile)
	}

	rc, err := render.NewContext(dev, src)
	if err != nil {
		return nil, nil, err
	}

	var color *render.ColorOffset
	if p.Animated {
		color = render.NewColorOffset()
	}
	return NewHandler(render.NewFrameRenderer(rc, color, prof)), rc, nil
}
