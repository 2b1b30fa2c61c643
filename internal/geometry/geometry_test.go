package geometry

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangleData(t *testing.T) {
	vs := TriangleVertices()
	require.Len(t, vs, 3)

	assert.Equal(t, mgl32.Vec2{-0.5, -0.5}, vs[0].Position)
	assert.Equal(t, mgl32.Vec2{0, 0.5}, vs[1].Position)
	assert.Equal(t, mgl32.Vec2{0.5, -0.5}, vs[2].Position)

	assert.Equal(t, mgl32.Vec3{0, 1, 0}, vs[0].Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, vs[1].Color)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, vs[2].Color)

	assert.Equal(t, []uint16{0, 1, 2}, TriangleIndices())
}

func TestCopiesDoNotAlias(t *testing.T) {
	vs := TriangleVertices()
	vs[0].Position[0] = 42
	idx := TriangleIndices()
	idx[0] = 7

	assert.Equal(t, float32(-0.5), Triangle[0].Position[0])
	assert.Equal(t, uint16(0), Indices[0])
}

func TestInterleaveMatchesLayout(t *testing.T) {
	data := Interleave(TriangleVertices())
	require.Len(t, data, 3*Layout.FloatsPerVertex())

	pos, ok := Layout.Attribute("position")
	require.True(t, ok)
	col, ok := Layout.Attribute("color")
	require.True(t, ok)

	// second vertex
	base := 1 * Layout.FloatsPerVertex()
	assert.Equal(t, []float32{0, 0.5}, data[base+pos.Offset/4:base+pos.Offset/4+int(pos.Components)])
	assert.Equal(t, []float32{0, 0, 1}, data[base+col.Offset/4:base+col.Offset/4+int(col.Components)])

	_, ok = Layout.Attribute("normal")
	assert.False(t, ok)
}

func TestVertexMatchesStride(t *testing.T) {
	var v Vertex
	assert.Equal(t, uintptr(Layout.Stride), unsafe.Sizeof(v))

	col, ok := Layout.Attribute("color")
	require.True(t, ok)
	assert.Equal(t, uintptr(col.Offset), unsafe.Offsetof(v.Color))
}

func TestPrimitive(t *testing.T) {
	assert.Equal(t, 3, TrianglesList.VerticesPerPrimitive())
	assert.Equal(t, "triangles", TrianglesList.String())
	assert.Equal(t, 0, Primitive(7).VerticesPerPrimitive())
	assert.Equal(t, "unknown", Primitive(7).String())
}
