package shader

import (
	"embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:embed glsl/*.vert glsl/*.frag
var files embed.FS

// ErrUnsupportedVersion is returned when the context cannot compile a source's GLSL version
var ErrUnsupportedVersion = errors.New("unsupported shading language version")

// Version is a GLSL #version number
type Version int

const (
	GLSL100 Version = 100 // GLSL ES 1.00
	GLSL450 Version = 450
)

// IsES reports whether the version belongs to the ES shading language
func (v Version) IsES() bool {
	return v == GLSL100 || v == 300 || v == 310 || v == 320
}

// SupportedBy reports whether a context advertising the given
// GL_SHADING_LANGUAGE_VERSION string can compile this version.
// Desktop contexts from 4.1 onwards accept GLSL ES 1.00 (ARB_ES2_compatibility).
func (v Version) SupportedBy(glslVersion string) bool {
	es := strings.Contains(glslVersion, "GLSL ES")
	ctx, ok := ParseVersion(glslVersion)
	if !ok {
		return false
	}
	if v.IsES() {
		if es {
			return v <= ctx
		}
		return ctx >= 410
	}
	if es {
		return false
	}
	return v <= ctx
}

// ParseVersion extracts the numeric version from a GL_SHADING_LANGUAGE_VERSION string,
// e.g. "4.50 NVIDIA" -> 450, "OpenGL ES GLSL ES 3.20" -> 320.
func ParseVersion(s string) (Version, bool) {
	for _, field := range strings.Fields(s) {
		major, minor, found := strings.Cut(field, ".")
		if !found {
			continue
		}
		mj, err := strconv.Atoi(major)
		if err != nil {
			continue
		}
		// minor may carry a vendor suffix ("50-build")
		end := 0
		for end < len(minor) && minor[end] >= '0' && minor[end] <= '9' {
			end++
		}
		if end == 0 {
			continue
		}
		mn, err := strconv.Atoi(minor[:end])
		if err != nil {
			continue
		}
		if end == 1 {
			mn *= 10
		}
		return Version(mj*100 + mn), true
	}
	return 0, false
}

// Source is a vertex/fragment pair for one GLSL version
type Source struct {
	Version  Version
	Vertex   string
	Fragment string
	Uniforms []string
}

// HasUniform reports whether the program declares the named uniform
func (s Source) HasUniform(name string) bool {
	for _, u := range s.Uniforms {
		if u == name {
			return true
		}
	}
	return false
}

// Triangle returns the embedded triangle program for the requested version.
// There is no fallback: an unknown version is an error.
func Triangle(v Version) (Source, error) {
	var uniforms []string
	switch v {
	case GLSL450:
		uniforms = []string{"matrix", "uColor"}
	case GLSL100:
		uniforms = []string{"matrix"}
	default:
		return Source{}, fmt.Errorf("triangle program %d: %w", v, ErrUnsupportedVersion)
	}

	vert, err := files.ReadFile(fmt.Sprintf("glsl/triangle_%d.vert", v))
	if err != nil {
		return Source{}, fmt.Errorf("could not read vertex shader: %w", err)
	}
	frag, err := files.ReadFile(fmt.Sprintf("glsl/triangle_%d.frag", v))
	if err != nil {
		return Source{}, fmt.Errorf("could not read fragment shader: %w", err)
	}

	return Source{
		Version:  v,
		Vertex:   string(vert),
		Fragment: string(frag),
		Uniforms: uniforms,
	}, nil
}
