package config

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 480
	DefaultTitle  = "mini-tri"

	maxFPSLimit = 1000
)

// Settings holds window and loop configuration.
// Values are compiled in; there are no flags or environment overrides.
type Settings struct {
	Width  int
	Height int
	Title  string
	Hidden bool

	// OpenGL context version requested from the window system
	GLMajor int
	GLMinor int

	// SwapInterval 0 disables vsync, 1 waits for one vertical blank per present
	SwapInterval int

	// FPSLimit caps redraws per second; 0 means unlimited
	FPSLimit int

	ClearColor color.Color

	// Frames slower than this are logged with their slowest stages
	SlowFrame time.Duration
	// How often FPS is reported at debug level
	StatsInterval time.Duration
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Title:         DefaultTitle,
		GLMajor:       4,
		GLMinor:       1,
		SwapInterval:  0,
		FPSLimit:      0,
		ClearColor:    colornames.Black,
		SlowFrame:     16 * time.Millisecond,
		StatsInterval: time.Second,
	}
}

// Validate clamps out-of-range values to usable ones
func (s *Settings) Validate() {
	if s.Width < 1 {
		s.Width = DefaultWidth
	}
	if s.Height < 1 {
		s.Height = DefaultHeight
	}
	if s.Title == "" {
		s.Title = DefaultTitle
	}
	if s.GLMajor < 2 {
		s.GLMajor, s.GLMinor = 4, 1
	}
	if s.GLMinor < 0 {
		s.GLMinor = 0
	}
	if s.SwapInterval < 0 {
		s.SwapInterval = 0
	}

	// Clamp to reasonable values
	if s.FPSLimit < 0 {
		s.FPSLimit = 0
	}
	if s.FPSLimit > maxFPSLimit {
		s.FPSLimit = maxFPSLimit
	}

	if s.ClearColor == nil {
		s.ClearColor = colornames.Black
	}
	if s.StatsInterval <= 0 {
		s.StatsInterval = time.Second
	}
}

// ClearRGBA returns the clear color as normalized float components
func (s Settings) ClearRGBA() (r, g, b, a float32) {
	c := s.ClearColor
	if c == nil {
		c = colornames.Black
	}
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
