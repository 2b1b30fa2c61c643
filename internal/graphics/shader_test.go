package graphics

import (
	"errors"
	"testing"

	"mini-tri/internal/geometry"
	"mini-tri/internal/shader"

	"github.com/stretchr/testify/assert"
)

func TestBuildErrorNamesStageAndVersion(t *testing.T) {
	err := error(&BuildError{Version: shader.GLSL450, Step: "fragment", Log: "0:3(1): error: syntax error"})
	assert.EqualError(t, err, "glsl 450 fragment: 0:3(1): error: syntax error")

	err = &BuildError{Version: shader.GLSL100, Step: "link"}
	assert.EqualError(t, err, "glsl 100 link: no info log")

	var be *BuildError
	assert.True(t, errors.As(error(&BuildError{Step: "vertex"}), &be))
	assert.Equal(t, "vertex", be.Step)
}

func TestTrimLog(t *testing.T) {
	assert.Equal(t, "0:1: error", trimLog([]byte("0:1: error\n\x00\x00")))
	assert.Equal(t, "", trimLog([]byte{0}))
	assert.Equal(t, "", readLog(0, func(int32, *uint8) { t.Fatal("read with no log") }))

	got := readLog(4, func(n int32, buf *uint8) {
		assert.Equal(t, int32(4), n)
		*buf = 'x'
	})
	assert.Equal(t, "x", got)
}

func TestInactiveUniforms(t *testing.T) {
	locations := map[string]int32{"matrix": 0}
	locate := func(name string) int32 {
		if loc, ok := locations[name]; ok {
			return loc
		}
		return -1
	}

	assert.Empty(t, inactiveUniforms([]string{"matrix"}, locate))
	assert.Equal(t, []string{"uColor"}, inactiveUniforms([]string{"matrix", "uColor"}, locate))
}

func TestPrimitiveMode(t *testing.T) {
	_, ok := primitiveMode(geometry.TrianglesList)
	assert.True(t, ok)
	_, ok = primitiveMode(geometry.Primitive(9))
	assert.False(t, ok)
}
