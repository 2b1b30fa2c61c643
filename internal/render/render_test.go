package render_test

import (
	"testing"

	"mini-tri/internal/geometry"
	"mini-tri/internal/render"
	"mini-tri/internal/render/rendertest"
	"mini-tri/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T, dev *rendertest.Device, v shader.Version) *render.Context {
	t.Helper()
	src, err := shader.Triangle(v)
	require.NoError(t, err)
	ctx, err := render.NewContext(dev, src)
	require.NoError(t, err)
	return ctx
}

func TestNewContextUploadsTriangle(t *testing.T) {
	for _, v := range []shader.Version{shader.GLSL450, shader.GLSL100} {
		dev := rendertest.NewDevice()
		ctx := newContext(t, dev, v)

		require.Len(t, dev.Buffers, 1)
		require.Len(t, dev.Indices, 1)
		require.Len(t, dev.Programs, 1)

		vb := dev.Buffers[0].Data
		require.Len(t, vb, 3)
		assert.Equal(t, mgl32.Vec2{-0.5, -0.5}, vb[0].Position)
		assert.Equal(t, mgl32.Vec2{0, 0.5}, vb[1].Position)
		assert.Equal(t, mgl32.Vec2{0.5, -0.5}, vb[2].Position)
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, vb[0].Color)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, vb[1].Color)
		assert.Equal(t, mgl32.Vec3{1, 0, 0}, vb[2].Color)

		assert.Equal(t, []uint16{0, 1, 2}, dev.Indices[0].Data)
		assert.Equal(t, geometry.TrianglesList, dev.Indices[0].Prim)
		assert.Equal(t, v, ctx.Program().Version())
		assert.Equal(t, mgl32.Ident4(), ctx.Matrix())
		assert.Empty(t, dev.Draws, "no frame before the first redraw")
	}
}

func TestNewContextShaderFailure(t *testing.T) {
	dev := rendertest.NewDevice()
	dev.FailProgram = rendertest.ErrInjected

	src, err := shader.Triangle(shader.GLSL450)
	require.NoError(t, err)
	ctx, err := render.NewContext(dev, src)

	require.Error(t, err)
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, render.ErrShaderCompile)
	assert.ErrorIs(t, err, rendertest.ErrInjected)
	assert.Zero(t, dev.Frames())

	// buffers created before the failure are released
	assert.True(t, dev.Buffers[0].Released)
	assert.True(t, dev.Indices[0].Released)
}

func TestNewContextBufferFailure(t *testing.T) {
	dev := rendertest.NewDevice()
	dev.FailIndexBuffer = rendertest.ErrInjected

	src, err := shader.Triangle(shader.GLSL100)
	require.NoError(t, err)
	_, err = render.NewContext(dev, src)

	assert.ErrorIs(t, err, render.ErrBufferAlloc)
	assert.True(t, dev.Buffers[0].Released)
	assert.Equal(t, []string{"vertex", "index"}, dev.Calls)

	dev = rendertest.NewDevice()
	dev.FailVertexBuffer = rendertest.ErrInjected
	_, err = render.NewContext(dev, src)
	assert.ErrorIs(t, err, render.ErrBufferAlloc)
	assert.Equal(t, []string{"vertex"}, dev.Calls)
}

func TestRenderFrameSequence(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := newContext(t, dev, shader.GLSL100)
	r := render.NewFrameRenderer(ctx, nil, nil)
	dev.Calls = nil

	for i := 0; i < 3; i++ {
		require.NoError(t, r.RenderFrame())
	}

	assert.Equal(t, []string{
		"acquire", "draw", "finish",
		"acquire", "draw", "finish",
		"acquire", "draw", "finish",
	}, dev.Calls)
	assert.Equal(t, 3, dev.Presents)
	assert.Equal(t, uint64(3), r.Frames())

	for _, d := range dev.Draws {
		assert.Equal(t, geometry.TrianglesList, d.Primitive)
		assert.Equal(t, 3, d.Vertices)
		assert.Equal(t, 3, d.Indices)

		m, ok := d.Uniforms.Get("matrix")
		require.True(t, ok)
		assert.Equal(t, mgl32.Ident4(), m)

		_, ok = d.Uniforms.Get("uColor")
		assert.False(t, ok)
	}
}

func TestRenderFrameAnimatesColor(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := newContext(t, dev, shader.GLSL450)
	color := render.NewColorOffset()
	r := render.NewFrameRenderer(ctx, color, nil)

	const n = 2500
	for i := 0; i < n; i++ {
		require.NoError(t, r.RenderFrame())
	}
	require.Len(t, dev.Draws, n)

	// every draw carries exactly one more step than the previous, starting at one step
	want := float32(0)
	for i, d := range dev.Draws {
		want += render.ColorStep
		v, ok := d.Uniforms.Get("uColor")
		require.True(t, ok)
		require.Equal(t, mgl32.Vec3{1, want, 0}, v, "frame %d", i)

		m, _ := d.Uniforms.Get("matrix")
		assert.Equal(t, mgl32.Ident4(), m)
	}

	// past 1.0 and still growing: nothing clamps the offset
	assert.Equal(t, mgl32.Vec3{1, want, 0}, color.Value())
	assert.Greater(t, color.Value()[1], float32(1))
}

func TestRenderFrameFailures(t *testing.T) {
	cases := []struct {
		name  string
		setup func(d *rendertest.Device)
		calls []string
	}{
		{"acquire", func(d *rendertest.Device) { d.FailAcquire = rendertest.ErrInjected }, []string{"acquire"}},
		{"draw", func(d *rendertest.Device) { d.FailDraw = rendertest.ErrInjected }, []string{"acquire", "draw"}},
		{"finish", func(d *rendertest.Device) { d.FailFinish = rendertest.ErrInjected }, []string{"acquire", "draw", "finish"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dev := rendertest.NewDevice()
			r := render.NewFrameRenderer(newContext(t, dev, shader.GLSL100), nil, nil)
			dev.Calls = nil
			tc.setup(dev)

			err := r.RenderFrame()
			assert.ErrorIs(t, err, render.ErrFrame)
			assert.ErrorIs(t, err, rendertest.ErrInjected)
			assert.Equal(t, tc.calls, dev.Calls)
			assert.Zero(t, r.Frames())
		})
	}
}

func TestRenderFrameProfiles(t *testing.T) {
	dev := rendertest.NewDevice()
	r := render.NewFrameRenderer(newContext(t, dev, shader.GLSL100), nil, nil)
	require.NoError(t, r.RenderFrame())

	snap := r.Profile().Snapshot()
	for _, k := range []string{"render.Frame", "render.Acquire", "render.Draw", "render.Finish"} {
		assert.Contains(t, snap, k)
	}
}

func TestContextRelease(t *testing.T) {
	dev := rendertest.NewDevice()
	ctx := newContext(t, dev, shader.GLSL100)
	ctx.Release()

	assert.True(t, dev.Buffers[0].Released)
	assert.True(t, dev.Indices[0].Released)
	assert.True(t, dev.Programs[0].Released)
}
