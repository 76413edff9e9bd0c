package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

type Window interface {
	GetSize() (uint32, uint32)
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// PollEvents drains the platform event queue and returns the input
	// state accumulated so far.
	PollEvents() InputState

	// Time returns the number of seconds since the window was created.
	Time() float64

	Terminate()
}

type WindowOptions struct {
	Width  int
	Height int
	Title  string

	// Record a cpu profile into the working directory while the window is open
	Profile bool
}
