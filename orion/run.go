package orion

import (
	"fmt"

	"github.com/oliverbestmann/raiders/glimpse"
	"github.com/oliverbestmann/raiders/pulse"
)

type RunGameOptions struct {
	// game to run. This is the only field that is required
	Game Game

	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// Record a cpu profile while the game is running
	Profile bool
}

func (opts RunGameOptions) withDefaults() RunGameOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 640
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 480
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "Orion"
	}

	return opts
}

// RunGame creates the window and the gpu context, initializes the game and
// runs the frame loop until the window is closed or the game returns ExitApp.
func RunGame(opts RunGameOptions) error {
	if opts.Game == nil {
		Handle(ErrNoGame, "run game")
	}

	opts = opts.withDefaults()

	win, err := glimpse.NewWindow(glimpse.WindowOptions{
		Width:   opts.WindowWidth,
		Height:  opts.WindowHeight,
		Title:   opts.WindowTitle,
		Profile: opts.Profile,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	ctx, err := pulse.New(win.SurfaceDescriptor())
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	view, err := pulse.NewView(ctx)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	loopState := &LoopState{
		Window: win,
		View:   view,
		Game:   opts.Game,
	}

	if err := opts.Game.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	return runLoop(win, loopState.Game, loopState.renderOnce)
}
