package raiders

import (
	"github.com/oliverbestmann/raiders/glm"
	"github.com/oliverbestmann/raiders/pulse"
)

type Options struct {
	WindowTitle  string
	WindowWidth  int
	WindowHeight int

	// image files of the two sprites
	BoulderTexture string
	PlayerTexture  string

	// wgsl sources of the textured shader program
	VertexShader   string
	FragmentShader string

	ClearColor pulse.Color

	// visible area in world units
	Projection glm.Mat4f
	View       glm.Mat4f
}

// DefaultOptions returns the options the demo ships with. Paths are
// relative to the working directory.
func DefaultOptions() Options {
	return Options{
		WindowTitle:  "Raiders of the Lost Ark!",
		WindowWidth:  640,
		WindowHeight: 480,

		BoulderTexture: "boulder.png",
		PlayerTexture:  "indiana.png",

		VertexShader:   "shaders/vertex_textured.wgsl",
		FragmentShader: "shaders/fragment_textured.wgsl",

		ClearColor: pulse.ColorLinearRGBA(0.56, 0.50, 0.31, 1.0),

		Projection: glm.Ortho[float32](-5.0, 5.0, -3.75, 3.75, -1.0, 1.0),
		View:       glm.IdentityMat4[float32](),
	}
}

// WithDefaults fills every zero field with the value from DefaultOptions.
// ClearColor has no zero value to detect, its default is white.
func (o Options) WithDefaults() Options {
	def := DefaultOptions()

	if o.WindowTitle == "" {
		o.WindowTitle = def.WindowTitle
	}

	if o.WindowWidth == 0 {
		o.WindowWidth = def.WindowWidth
	}

	if o.WindowHeight == 0 {
		o.WindowHeight = def.WindowHeight
	}

	if o.BoulderTexture == "" {
		o.BoulderTexture = def.BoulderTexture
	}

	if o.PlayerTexture == "" {
		o.PlayerTexture = def.PlayerTexture
	}

	if o.VertexShader == "" {
		o.VertexShader = def.VertexShader
	}

	if o.FragmentShader == "" {
		o.FragmentShader = def.FragmentShader
	}

	if o.Projection.IsZero() {
		o.Projection = def.Projection
	}

	if o.View.IsZero() {
		o.View = def.View
	}

	return o
}
