package geometry

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a 2D position with an RGB color
type Vertex struct {
	Position mgl32.Vec2
	Color    mgl32.Vec3
}

// Primitive describes how indices are assembled into primitives.
// Only triangle lists are drawn.
type Primitive int

const TrianglesList Primitive = 0

// VerticesPerPrimitive returns how many indices make up one primitive
func (p Primitive) VerticesPerPrimitive() int {
	if p == TrianglesList {
		return 3
	}
	return 0
}

func (p Primitive) String() string {
	if p == TrianglesList {
		return "triangles"
	}
	return "unknown"
}

// Triangle is the fixed triangle drawn every frame
var Triangle = [3]Vertex{
	{Position: mgl32.Vec2{-0.5, -0.5}, Color: mgl32.Vec3{0.0, 1.0, 0.0}},
	{Position: mgl32.Vec2{0.0, 0.5}, Color: mgl32.Vec3{0.0, 0.0, 1.0}},
	{Position: mgl32.Vec2{0.5, -0.5}, Color: mgl32.Vec3{1.0, 0.0, 0.0}},
}

// Indices connects the three triangle vertices
var Indices = [3]uint16{0, 1, 2}

// TriangleVertices returns a copy of the fixed triangle
func TriangleVertices() []Vertex {
	out := make([]Vertex, len(Triangle))
	copy(out, Triangle[:])
	return out
}

// TriangleIndices returns a copy of the fixed index list
func TriangleIndices() []uint16 {
	out := make([]uint16, len(Indices))
	copy(out, Indices[:])
	return out
}

// Interleave flattens vertices into position/color float runs matching Layout
func Interleave(vs []Vertex) []float32 {
	out := make([]float32, 0, len(vs)*Layout.FloatsPerVertex())
	for _, v := range vs {
		out = append(out, v.Position[:]...)
		out = append(out, v.Color[:]...)
	}
	return out
}
