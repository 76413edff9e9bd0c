package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// This is normally either an offscreen Texture or the screen.
type RenderTarget struct {
	View *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat

	// Size of the target to render to
	Width  uint32
	Height uint32

	// The number of samples of the View texture
	SampleCount uint32
}
