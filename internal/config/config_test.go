package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, 800, s.Width)
	assert.Equal(t, 480, s.Height)
	assert.Equal(t, 0, s.FPSLimit)

	r, g, b, a := s.ClearRGBA()
	assert.Equal(t, [4]float32{0, 0, 0, 1}, [4]float32{r, g, b, a})
}

func TestValidateClamps(t *testing.T) {
	s := Settings{
		Width:        -1,
		FPSLimit:     5000,
		SwapInterval: -3,
		GLMajor:      1,
	}
	s.Validate()

	assert.Equal(t, DefaultWidth, s.Width)
	assert.Equal(t, DefaultHeight, s.Height)
	assert.Equal(t, DefaultTitle, s.Title)
	assert.Equal(t, 1000, s.FPSLimit)
	assert.Equal(t, 0, s.SwapInterval)
	assert.Equal(t, 4, s.GLMajor)
	assert.Equal(t, 1, s.GLMinor)
	assert.Equal(t, time.Second, s.StatsInterval)
	assert.Equal(t, colornames.Black, s.ClearColor)

	s.FPSLimit = -2
	s.Validate()
	assert.Equal(t, 0, s.FPSLimit)
}

func TestClearRGBA(t *testing.T) {
	s := Default()
	s.ClearColor = colornames.White
	r, g, b, a := s.ClearRGBA()
	assert.Equal(t, [4]float32{1, 1, 1, 1}, [4]float32{r, g, b, a})
}
