package pulse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadShaderSource(t *testing.T) {
	dir := t.TempDir()

	vertexPath := filepath.Join(dir, "vertex.wgsl")
	source := "@vertex\nfn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(); }\n"
	if err := os.WriteFile(vertexPath, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadShaderSource(vertexPath, VertexEntryPoint)
	if err != nil {
		t.Fatal(err)
	}

	if got != source {
		t.Errorf("source = %q, want %q", got, source)
	}

	if _, err := ReadShaderSource(vertexPath, FragmentEntryPoint); err == nil {
		t.Error("expected an error for a missing entry point")
	}
}

func TestReadShaderSourceMissingFile(t *testing.T) {
	_, err := ReadShaderSource(filepath.Join(t.TempDir(), "missing.wgsl"), VertexEntryPoint)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want a not-exist error", err)
	}
}

func TestUniformLayout(t *testing.T) {
	// three column-major mat4x4<f32>, no padding
	if n := len(AsByteSlice(&programUniforms{})); n != 3*16*4 {
		t.Errorf("uniform size = %d, want %d", n, 3*16*4)
	}
}
