package geometry

// Attribute is one named vertex input
type Attribute struct {
	Name       string
	Components int32
	Offset     int // in bytes
}

// VertexLayout describes the interleaved vertex format
type VertexLayout struct {
	Attributes []Attribute
	Stride     int32 // in bytes
}

// Layout is the format produced by Interleave
var Layout = VertexLayout{
	Attributes: []Attribute{
		{Name: "position", Components: 2, Offset: 0},
		{Name: "color", Components: 3, Offset: 2 * 4},
	},
	Stride: 5 * 4,
}

// FloatsPerVertex returns the number of float32 values per vertex
func (l VertexLayout) FloatsPerVertex() int {
	return int(l.Stride) / 4
}

// Attribute looks up an attribute by shader input name
func (l VertexLayout) Attribute(name string) (Attribute, bool) {
	for _, a := range l.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}
