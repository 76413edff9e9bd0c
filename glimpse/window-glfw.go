package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

type glfwWindow struct {
	win   *glfw.Window
	prof  interface{ Stop() }
	input InputState
}

func NewWindow(opts WindowOptions) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// rendering goes through webgpu, we do not want a gl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	centerWindow(window, opts.Width, opts.Height)

	w := &glfwWindow{win: window}

	if opts.Profile {
		w.prof = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	}

	window.SetCloseCallback(func(_win *glfw.Window) {
		w.input.requestClose()
	})

	// the clock starts with the window
	glfw.SetTime(0)

	slog.Info("Window created",
		slog.String("title", opts.Title),
		slog.Int("width", opts.Width),
		slog.Int("height", opts.Height),
	)

	return w, nil
}

func centerWindow(window *glfw.Window, width, height int) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}

	mode := monitor.GetVideoMode()
	if mode == nil {
		return
	}

	window.SetPos((mode.Width-width)/2, (mode.Height-height)/2)
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) PollEvents() InputState {
	g.input.nextTick()
	glfw.PollEvents()

	if g.win.ShouldClose() {
		g.input.requestClose()
	}

	return g.input
}

func (g *glfwWindow) Time() float64 {
	return glfw.GetTime()
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	g.win.Destroy()
	glfw.Terminate()
}
