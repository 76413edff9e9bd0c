package pulse

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

const quadVertexCount = 6

// QuadVertices holds two triangles worth of 2d positions and texture coordinates.
type QuadVertices struct {
	Positions [quadVertexCount * 2]float32
	TexCoords [quadVertexCount * 2]float32
}

// UnitQuad is a quad of size 1x1 centered on the origin that shows the
// whole texture. Texture coordinate 0,0 is the top left of the image.
var UnitQuad = QuadVertices{
	Positions: [12]float32{-0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5},
	TexCoords: [12]float32{0.0, 1.0, 1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 1.0, 0.0, 0.0, 0.0},
}

type DrawQuadOptions struct {
	Program  *ShaderProgram
	Texture  *Texture
	Vertices QuadVertices

	// BlendState defines how to blend the quad with the existing
	// framebuffer. Defaults to straight alpha blending.
	BlendState wgpu.BlendState

	// Sampler to read the texture with. Defaults to NearestSampler.
	Sampler *wgpu.SamplerDescriptor
}

// QuadCommand draws one textured quad per call. Each draw is
// submitted on its own, so uniform changes between two draws are
// picked up.
type QuadCommand struct {
	ctx *Context

	pipelineCache *PipelineCache[quadPipelineConfig]

	bufPositions *wgpu.Buffer
	bufTexCoords *wgpu.Buffer
}

func NewQuadCommand(ctx *Context) (*QuadCommand, error) {
	size := uint64(len(UnitQuad.Positions)) * 4

	bufPositions, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad.Positions",
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	if err != nil {
		return nil, fmt.Errorf("create position buffer: %w", err)
	}

	bufTexCoords, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad.TexCoords",
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	if err != nil {
		bufPositions.Release()
		return nil, fmt.Errorf("create texcoord buffer: %w", err)
	}

	q := &QuadCommand{
		ctx:          ctx,
		bufPositions: bufPositions,
		bufTexCoords: bufTexCoords,
	}

	q.pipelineCache = NewPipelineCache[quadPipelineConfig](ctx)

	return q, nil
}

func (q *QuadCommand) Draw(target *RenderTarget, opts DrawQuadOptions) error {
	if opts.Program == nil || opts.Texture == nil {
		return fmt.Errorf("draw quad: program and texture are required")
	}

	if opts.BlendState == (wgpu.BlendState{}) {
		opts.BlendState = wgpu.BlendStateAlphaBlending
	}

	samplerDesc := NearestSampler()
	if opts.Sampler != nil {
		samplerDesc = *opts.Sampler
	}

	sampler, err := CachedSampler(q.ctx.Device, samplerDesc)
	if err != nil {
		return err
	}

	pipelineConfig := quadPipelineConfig{
		TargetFormat:      target.Format,
		TargetSampleCount: target.SampleCount,
		BlendState:        opts.BlendState,
		Vertex:            opts.Program.vertex,
		Fragment:          opts.Program.fragment,
	}

	pc, err := q.pipelineCache.Get(pipelineConfig)
	if err != nil {
		return fmt.Errorf("get quad pipeline: %w", err)
	}

	// stream the vertex data of this quad
	err = q.ctx.WriteBuffer(q.bufPositions, 0, wgpu.ToBytes(opts.Vertices.Positions[:]))
	if err != nil {
		return fmt.Errorf("update position buffer: %w", err)
	}

	err = q.ctx.WriteBuffer(q.bufTexCoords, 0, wgpu.ToBytes(opts.Vertices.TexCoords[:]))
	if err != nil {
		return fmt.Errorf("update texcoord buffer: %w", err)
	}

	if err := opts.Program.writeUniforms(); err != nil {
		return err
	}

	bindGroup, err := q.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Quad.BindGroup",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  opts.Program.bufUniforms,
				Size:    wgpu.WholeSize,
			},
			{
				Binding:     1,
				TextureView: opts.Texture.View(),
			},
			{
				Binding: 2,
				Sampler: sampler,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := q.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "Quad"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassQuad",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    target.View,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, q.bufPositions, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, q.bufTexCoords, 0, wgpu.WholeSize)
	pass.Draw(quadVertexCount, 1, 0, 0)

	if err := pass.End(); err != nil {
		return fmt.Errorf("end quad pass: %w", err)
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish quad pass: %w", err)
	}

	defer cmdBuffer.Release()

	q.ctx.Submit(cmdBuffer)

	return nil
}

type quadPipelineConfig struct {
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32
	BlendState        wgpu.BlendState
	Vertex            *wgpu.ShaderModule
	Fragment          *wgpu.ShaderModule
}

func (conf quadPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for textured quads",
		slog.Any("format", conf.TargetFormat),
		slog.Any("sampleCount", conf.TargetSampleCount),
	)

	vec2Layout := func(location uint32) wgpu.VertexBufferLayout {
		return wgpu.VertexBufferLayout{
			ArrayStride: 2 * 4,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: location,
				},
			},
		}
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Quad.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     conf.Vertex,
			EntryPoint: VertexEntryPoint,
			Buffers: []wgpu.VertexBufferLayout{
				// position
				vec2Layout(0),
				// texcoord
				vec2Layout(1),
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     conf.Fragment,
			EntryPoint: FragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &conf.BlendState,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  max(conf.TargetSampleCount, 1),
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build quad pipeline: %w", err)
	}

	return pipeline, nil
}
