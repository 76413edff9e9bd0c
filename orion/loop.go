package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/raiders/glimpse"
	"github.com/oliverbestmann/raiders/pulse"
)

// interval between two frame statistic log lines
const statsInterval = 5 * time.Second

// LoopState is the state the frame loop carries from one frame to the next.
type LoopState struct {
	Window glimpse.Window
	View   *pulse.View
	Game   Game

	SurfaceWidth  uint32
	SurfaceHeight uint32

	Times       FrameTimes
	lastStatsAt time.Time
}

type eventSource interface {
	PollEvents() glimpse.InputState
	Time() float64
}

// runLoop polls events, updates the game and renders until a close was
// requested. A close observed during a poll ends the loop before the
// next update.
func runLoop(events eventSource, game Game, render func() error) error {
	for {
		input := events.PollEvents()
		if input.CloseRequested {
			slog.Info("Stopping game loop", slog.Uint64("polls", input.Polls))
			return nil
		}

		err := game.Update(Tick{Time: events.Time(), Input: input})
		switch {
		case errors.Is(err, ExitApp):
			slog.Info("Game requested exit")
			return nil

		case err != nil:
			return fmt.Errorf("update game: %w", err)
		}

		if err := render(); err != nil {
			return err
		}
	}
}

func (ls *LoopState) renderOnce() error {
	ls.Times.Tick()
	ls.logStats()

	surfaceWidth, surfaceHeight := ls.Window.GetSize()

	// reconfigure surface if needed
	if ls.SurfaceWidth != surfaceWidth || ls.SurfaceHeight != surfaceHeight {
		slog.Debug("Configure surface",
			slog.Int("width", int(surfaceWidth)),
			slog.Int("height", int(surfaceHeight)),
		)

		ls.View.Configure(surfaceWidth, surfaceHeight)

		ls.SurfaceWidth = surfaceWidth
		ls.SurfaceHeight = surfaceHeight
	}

	frame, err := ls.View.CurrentTexture()
	if err != nil {
		return err
	}

	err = ls.Game.Draw(Frame{Target: frame.Target})

	if err != nil {
		frame.Discard()
		return fmt.Errorf("draw game: %w", err)
	}

	frame.Present()

	return nil
}

func (ls *LoopState) logStats() {
	now := time.Now()

	if ls.lastStatsAt.IsZero() {
		ls.lastStatsAt = now
		return
	}

	if now.Sub(ls.lastStatsAt) < statsInterval {
		return
	}

	ls.lastStatsAt = now

	slog.Info("Frame stats",
		slog.Uint64("frames", ls.Times.FrameCount),
		slog.String("fps", fmt.Sprintf("%1.2f", ls.Times.FPS())),
		slog.Duration("max", ls.Times.MaxDuration),
	)
}
