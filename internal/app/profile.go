package app

import (
	"mini-tri/internal/config"
	"mini-tri/internal/shader"
)

// Profile selects one of the triangle programs
type Profile struct {
	Name     string
	Title    string
	Version  shader.Version
	Animated bool

	GLMajor      int
	GLMinor      int
	SwapInterval int
}

var (
	// Animated draws with GLSL 450 and shifts uColor every frame
	Animated = Profile{
		Name:     "animated",
		Title:    "mini-tri",
		Version:  shader.GLSL450,
		Animated: true,
		GLMajor:  4,
		GLMinor:  5,
	}
	Static = Profile{
		Name:    "static",
		Title:   "mini-tri (GLSL 100)",
		Version: shader.GLSL100,
		GLMajor: 4,
		GLMinor: 1,
	}
	StaticVSync = Profile{
		Name:         "static-vsync",
		Title:        "mini-tri (GLSL 100, vsync)",
		Version:      shader.GLSL100,
		GLMajor:      4,
		GLMinor:      1,
		SwapInterval: 1,
	}
)

// Profiles lists every triangle program
func Profiles() []Profile {
	return []Profile{Animated, Static, StaticVSync}
}

// Apply overrides the window and context fields of s
func (p Profile) Apply(s config.Settings) config.Settings {
	s.Title = p.Title
	s.GLMajor = p.GLMajor
	s.GLMinor = p.GLMinor
	s.SwapInterval = p.SwapInterval
	s.Validate()
	return s
}
