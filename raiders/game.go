package raiders

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/raiders/orion"
	"github.com/oliverbestmann/raiders/pulse"
)

// Game implements orion.Game. All state of the demo lives here.
type Game struct {
	opts  Options
	scene *Scene

	// time of the previous update in seconds since window creation
	lastTime float64

	program *pulse.ShaderProgram
	clear   *pulse.ClearCommand
	quads   *pulse.QuadCommand

	boulderTexture *pulse.Texture
	playerTexture  *pulse.Texture
}

func NewGame(opts Options) *Game {
	return &Game{
		opts:  opts.WithDefaults(),
		scene: NewScene(),
	}
}

func (g *Game) Options() Options {
	return g.opts
}

func (g *Game) Scene() *Scene {
	return g.scene
}

func (g *Game) Initialize(ctx *pulse.Context) error {
	assets, err := LoadAssets(g.opts)
	if err != nil {
		return err
	}

	g.program, err = pulse.NewShaderProgram(ctx, assets.VertexShader, assets.FragmentShader)
	if err != nil {
		return fmt.Errorf("create shader program: %w", err)
	}

	g.program.SetProjectionMatrix(g.opts.Projection)
	g.program.SetViewMatrix(g.opts.View)

	g.clear = pulse.NewClear(ctx)

	g.quads, err = pulse.NewQuadCommand(ctx)
	if err != nil {
		return fmt.Errorf("create quad command: %w", err)
	}

	g.boulderTexture, err = pulse.NewTextureFromImage(ctx, assets.Boulder, g.opts.BoulderTexture)
	if err != nil {
		return fmt.Errorf("upload boulder texture: %w", err)
	}

	g.playerTexture, err = pulse.NewTextureFromImage(ctx, assets.Player, g.opts.PlayerTexture)
	if err != nil {
		return fmt.Errorf("upload player texture: %w", err)
	}

	slog.Info("Game initialized",
		slog.String("boulder", g.opts.BoulderTexture),
		slog.String("player", g.opts.PlayerTexture),
	)

	return nil
}

// Update advances the scene by the time passed since the previous update.
// The very first update measures from time zero. A tick older than the
// previous one is skipped and keeps the previous time.
func (g *Game) Update(tick orion.Tick) error {
	if !(tick.Time >= g.lastTime) {
		return nil
	}

	dt := float32(tick.Time - g.lastTime)
	g.lastTime = tick.Time

	g.scene.Advance(dt)

	return nil
}

func (g *Game) Draw(frame orion.Frame) error {
	if g.program == nil {
		return errors.New("game is not initialized")
	}

	if err := g.clear.Clear(frame.Target, g.opts.ClearColor); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}

	g.program.SetModelMatrix(g.scene.BoulderModel)
	err := g.quads.Draw(frame.Target, pulse.DrawQuadOptions{
		Program:  g.program,
		Texture:  g.boulderTexture,
		Vertices: pulse.UnitQuad,
	})
	if err != nil {
		return fmt.Errorf("draw boulder: %w", err)
	}

	g.program.SetModelMatrix(g.scene.PlayerModel)
	err = g.quads.Draw(frame.Target, pulse.DrawQuadOptions{
		Program:  g.program,
		Texture:  g.playerTexture,
		Vertices: pulse.UnitQuad,
	})
	if err != nil {
		return fmt.Errorf("draw player: %w", err)
	}

	return nil
}
