package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type ClearCommand struct {
	ctx *Context
}

func NewClear(ctx *Context) *ClearCommand {
	return &ClearCommand{ctx: ctx}
}

// Clear fills the whole target with the given color.
func (c *ClearCommand) Clear(target *RenderTarget, color Color) error {
	enc, err := c.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearTexture",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearTexture",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color.ToWGPU(),
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return fmt.Errorf("end clear pass: %w", err)
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearTexture"})
	if err != nil {
		return fmt.Errorf("finish clear pass: %w", err)
	}

	defer buf.Release()

	c.ctx.Submit(buf)

	return nil
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases the delegate at most once.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
