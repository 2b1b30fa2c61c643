package render

// Uniform is one named shader constant.
// Value is a mgl32.Mat4, mgl32.Vec3 or float32.
type Uniform struct {
	Name  string
	Value any
}

// Uniforms is the ordered set supplied with one draw call
type Uniforms []Uniform

// Get returns the value bound to name
func (u Uniforms) Get(name string) (any, bool) {
	for _, v := range u {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}
