package gpuinfo

import (
	"fmt"
	"io"
	"strings"

	"mini-tri/internal/graphics"
	"mini-tri/internal/shader"
)

// ProfileSupport records whether a triangle program compiles on the probed context
type ProfileSupport struct {
	Name      string
	Version   shader.Version
	Supported bool
}

// Report collects everything gpuinfo prints
type Report struct {
	GL       graphics.Info
	Profiles []ProfileSupport
	Vulkan   VulkanInfo
}

// CheckProfile fills in Supported from the GL context's GLSL version
func (r *Report) CheckProfile(name string, v shader.Version) {
	r.Profiles = append(r.Profiles, ProfileSupport{
		Name:      name,
		Version:   v,
		Supported: v.SupportedBy(r.GL.GLSL),
	})
}

// WriteTo prints the report in a plain key: value layout
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder

	fmt.Fprintln(&b, "OpenGL")
	fmt.Fprintf(&b, "  vendor:   %s\n", r.GL.Vendor)
	fmt.Fprintf(&b, "  renderer: %s\n", r.GL.Renderer)
	fmt.Fprintf(&b, "  version:  %s\n", r.GL.Version)
	fmt.Fprintf(&b, "  glsl:     %s\n", r.GL.GLSL)

	fmt.Fprintln(&b, "Profiles")
	for _, p := range r.Profiles {
		status := "ok"
		if !p.Supported {
			status = "unsupported"
		}
		fmt.Fprintf(&b, "  %-14s glsl %d: %s\n", p.Name, p.Version, status)
	}

	fmt.Fprintln(&b, "Vulkan")
	switch {
	case !r.Vulkan.Available && r.Vulkan.Err == nil:
		fmt.Fprintln(&b, "  not available")
	default:
		if r.Vulkan.Err != nil {
			fmt.Fprintf(&b, "  error: %v\n", r.Vulkan.Err)
		}
		if len(r.Vulkan.Extensions) > 0 {
			fmt.Fprintf(&b, "  extensions: %s\n", strings.Join(r.Vulkan.Extensions, ", "))
		}
		for i, d := range r.Vulkan.Devices {
			fmt.Fprintf(&b, "  device %d: %s (%s, api %s, driver %#x)\n", i, d.Name, d.Type, d.APIVersion, d.Driver)
		}
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}
