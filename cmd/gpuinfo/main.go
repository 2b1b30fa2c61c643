package main

import (
	"fmt"
	"os"
	"runtime"

	"mini-tri/internal/app"
	"mini-tri/internal/config"
	"mini-tri/internal/gpuinfo"
	"mini-tri/internal/graphics"
	"mini-tri/internal/platform"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	report, err := probe()
	if err != nil {
		closer.Fatalln(err)
	}
	if _, err := report.WriteTo(os.Stdout); err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

func probe() (gpuinfo.Report, error) {
	s := config.Default()
	s.Hidden = true
	s.Title = "gpuinfo"

	win, err := platform.Open(s)
	if err != nil {
		return gpuinfo.Report{}, err
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		return gpuinfo.Report{}, fmt.Errorf("gl init: %w", err)
	}

	report := gpuinfo.Report{GL: graphics.QueryInfo()}
	for _, p := range app.Profiles() {
		report.CheckProfile(p.Name, p.Version)
	}
	report.Vulkan = gpuinfo.ProbeVulkan(win.VulkanExtensions)
	return report, nil
}
