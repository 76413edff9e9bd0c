package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oliverbestmann/raiders/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Entry points the vertex and fragment shader sources must define.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// programUniforms mirrors the uniform struct at @group(0) @binding(0).
type programUniforms struct {
	Projection glm.Mat4f
	View       glm.Mat4f
	Model      glm.Mat4f
}

// ShaderProgram is a compiled pair of vertex and fragment shader modules
// together with the uniform values they read.
type ShaderProgram struct {
	ctx *Context

	vertex   *wgpu.ShaderModule
	fragment *wgpu.ShaderModule

	uniforms    programUniforms
	bufUniforms *wgpu.Buffer
}

// ReadShaderSource reads the wgsl source at path and checks that it defines entryPoint.
func ReadShaderSource(path, entryPoint string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %q: %w", path, err)
	}

	source := string(buf)
	if !strings.Contains(source, "fn "+entryPoint) {
		return "", fmt.Errorf("shader %q does not define %s", path, entryPoint)
	}

	return source, nil
}

// NewShaderProgram compiles the vertex and fragment shader sources.
func NewShaderProgram(ctx *Context, vertexSource, fragmentSource string) (*ShaderProgram, error) {
	vertex, err := ctx.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "ShaderProgram.Vertex",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: vertexSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile vertex shader: %w", err)
	}

	vertexGuard := NewReleaseGuard(vertex)
	defer vertexGuard.Release()

	fragment, err := ctx.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "ShaderProgram.Fragment",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: fragmentSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile fragment shader: %w", err)
	}

	fragmentGuard := NewReleaseGuard(fragment)
	defer fragmentGuard.Release()

	bufUniforms, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ShaderProgram.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(len(AsByteSlice(&programUniforms{}))),
	})
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	vertexGuard.Keep()
	fragmentGuard.Keep()

	slog.Info("Shader program compiled")

	p := &ShaderProgram{
		ctx:         ctx,
		vertex:      vertex,
		fragment:    fragment,
		bufUniforms: bufUniforms,
		uniforms: programUniforms{
			Projection: glm.IdentityMat4[float32](),
			View:       glm.IdentityMat4[float32](),
			Model:      glm.IdentityMat4[float32](),
		},
	}

	return p, nil
}

func (p *ShaderProgram) SetProjectionMatrix(m glm.Mat4f) {
	p.uniforms.Projection = m
}

func (p *ShaderProgram) SetViewMatrix(m glm.Mat4f) {
	p.uniforms.View = m
}

// SetModelMatrix sets the model matrix used by the next draw.
func (p *ShaderProgram) SetModelMatrix(m glm.Mat4f) {
	p.uniforms.Model = m
}

// writeUniforms uploads the current uniform values. A write is only
// visible to command buffers submitted after it.
func (p *ShaderProgram) writeUniforms() error {
	if p.bufUniforms == nil {
		return errors.New("shader program was released")
	}

	err := p.ctx.WriteBuffer(p.bufUniforms, 0, AsByteSlice(&p.uniforms))
	if err != nil {
		return fmt.Errorf("update uniform buffer: %w", err)
	}

	return nil
}
