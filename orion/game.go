package orion

import (
	"github.com/oliverbestmann/raiders/glimpse"
	"github.com/oliverbestmann/raiders/pulse"
)

// Tick is handed to Game.Update once per frame.
type Tick struct {
	// seconds since the window was created
	Time float64

	// input state after the latest event poll
	Input glimpse.InputState
}

// Frame is handed to Game.Draw once per frame.
type Frame struct {
	Target *pulse.RenderTarget
}

type Game interface {
	// Initialize is called once after the window and the gpu
	// context were created
	Initialize(ctx *pulse.Context) error
	Update(tick Tick) error
	Draw(frame Frame) error
}
