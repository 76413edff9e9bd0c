package pulse

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/oliverbestmann/raiders/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	region Rectangle2u
	label  string
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageRenderAttachment |
			wgpu.TextureUsageCopyDst,
	}

	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", opts.Label, err)
	}

	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create view of texture %q: %w", opts.Label, err)
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
		region:      RectangleFromSize(glm.Vec2u{}, glm.Vec2u{opts.Width, opts.Height}),
		label:       opts.Label,
	}

	return t, nil
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

func (t *Texture) Width() uint32 {
	return t.region.Width()
}

func (t *Texture) Height() uint32 {
	return t.region.Height()
}

// Release frees the gpu memory of this texture. You must not use the
// texture afterward.
func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}

type WritePixelsOptions struct {
	Pixels []byte
	Region Rectangle2u
	Stride uint32
}

func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: t.region,
	})
}

func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	if !t.region.Contains(opts.Region) {
		return fmt.Errorf("target rect %v not in region %v of texture %q", opts.Region, t.region, t.label)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	// send data to the gpu
	err := ctx.WriteTexture(dest, opts.Pixels, layout, size)
	if err != nil {
		return fmt.Errorf("copy image data to texture %q: %w", t.label, err)
	}

	return nil
}

// NewTextureFromImage uploads the straight alpha rgba pixels of the image
// into a new rgba8unorm texture.
func NewTextureFromImage(ctx *Context, src image.Image, label string) (*Texture, error) {
	nrgba := ToNRGBA(src)
	iw, ih := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	t, err := NewTexture(ctx, NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  uint32(iw),
		Height: uint32(ih),
		Label:  label,
	})
	if err != nil {
		return nil, err
	}

	err = t.WritePixels(ctx, nrgba.Pix)
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	slog.Info("Texture uploaded",
		slog.String("label", label),
		slog.Int("width", iw),
		slog.Int("height", ih),
	)

	return t, nil
}
