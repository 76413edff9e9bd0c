package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View owns the configuration of the window surface.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
}

func NewView(ctx *Context) (*View, error) {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	if len(caps.AlphaModes) == 0 {
		return nil, fmt.Errorf("surface reports no alpha modes")
	}

	view := &View{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:  wgpu.TextureUsageRenderAttachment,
			Format: wgpu.TextureFormatBGRA8Unorm,

			// fifo waits for vsync, this is the only frame limiter
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   caps.AlphaModes[0],

			DesiredMaximumFrameLatency: 1,
		},
	}

	return view, nil
}

func (vs *View) Configure(width, height uint32) {
	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)
}

// SurfaceFrame is a texture acquired from the surface for a single frame.
// Exactly one of Present or Discard must be called.
type SurfaceFrame struct {
	Target *RenderTarget

	surface     *wgpu.Surface
	texture     *wgpu.Texture
	textureView *wgpu.TextureView
}

// CurrentTexture acquires the next surface texture and wraps it as a render target.
func (vs *View) CurrentTexture() (*SurfaceFrame, error) {
	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	frame := &SurfaceFrame{
		Target: &RenderTarget{
			View:        textureView,
			Format:      texture.GetFormat(),
			Width:       texture.GetWidth(),
			Height:      texture.GetHeight(),
			SampleCount: 1,
		},
		surface:     vs.Surface,
		texture:     texture,
		textureView: textureView,
	}

	return frame, nil
}

// Present shows the frame on screen. The surface texture itself
// is owned by the surface after a successful present.
func (f *SurfaceFrame) Present() {
	f.textureView.Release()
	f.surface.Present()
}

// Discard releases the frame without presenting it.
func (f *SurfaceFrame) Discard() {
	f.textureView.Release()
	f.texture.Release()
}
