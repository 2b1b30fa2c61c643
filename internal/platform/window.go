package platform

import (
	"fmt"

	"mini-tri/internal/app"
	"mini-tri/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window with a current OpenGL context.
// All methods must be called from the main thread.
type Window struct {
	win   *glfw.Window
	queue []app.Event
}

// Open initializes glfw and creates the window described by s
func Open(s config.Settings) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, s.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, s.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if s.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(s.Width, s.Height, s.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create %dx%d window with GL %d.%d: %w", s.Width, s.Height, s.GLMajor, s.GLMinor, err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(s.SwapInterval)

	w := &Window{win: win}

	win.SetRefreshCallback(func(_ *glfw.Window) {
		w.push(app.Event{Kind: app.EventRedrawRequested})
	})
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(app.Event{Kind: app.EventResized, Width: width, Height: height})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(app.Event{Kind: app.EventCloseRequested})
	})
	win.SetFocusCallback(func(_ *glfw.Window, _ bool) {
		w.push(app.Event{Kind: app.EventFocusChanged})
	})

	return w, nil
}

func (w *Window) push(ev app.Event) {
	w.queue = append(w.queue, ev)
}

func (w *Window) drain() []app.Event {
	events := w.queue
	w.queue = nil
	return events
}

func (w *Window) Poll() []app.Event {
	glfw.PollEvents()
	return w.drain()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the back buffer
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// VulkanExtensions lists the instance extensions needed to present to this window
func (w *Window) VulkanExtensions() []string {
	return w.win.GetRequiredInstanceExtensions()
}

// Close destroys the window and terminates glfw
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
