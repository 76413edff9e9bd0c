package raiders

import (
	"fmt"
	"image"

	"github.com/oliverbestmann/raiders/pulse"
)

// Assets are the decoded files the demo needs, before anything is
// uploaded to the gpu.
type Assets struct {
	VertexShader   string
	FragmentShader string

	Boulder *image.NRGBA
	Player  *image.NRGBA
}

// LoadAssets reads both shader sources and decodes both sprite images.
// An image that can not be loaded yields an error wrapping pulse.ErrImageLoad.
func LoadAssets(opts Options) (*Assets, error) {
	vertex, err := pulse.ReadShaderSource(opts.VertexShader, pulse.VertexEntryPoint)
	if err != nil {
		return nil, fmt.Errorf("load vertex shader: %w", err)
	}

	fragment, err := pulse.ReadShaderSource(opts.FragmentShader, pulse.FragmentEntryPoint)
	if err != nil {
		return nil, fmt.Errorf("load fragment shader: %w", err)
	}

	boulder, err := pulse.LoadImageFile(opts.BoulderTexture)
	if err != nil {
		return nil, fmt.Errorf("load boulder texture: %w", err)
	}

	player, err := pulse.LoadImageFile(opts.PlayerTexture)
	if err != nil {
		return nil, fmt.Errorf("load player texture: %w", err)
	}

	assets := &Assets{
		VertexShader:   vertex,
		FragmentShader: fragment,
		Boulder:        boulder,
		Player:         player,
	}

	return assets, nil
}
