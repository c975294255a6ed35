package style

// Style collects the visual knobs that shape how the grid is drawn, both in
// the live preview and in every exported artifact.
type Style struct {
	FillColor string `yaml:"fill_color"`

	Dots      bool    `yaml:"dots"`
	DotColor  string  `yaml:"dot_color"`
	DotRadius float64 `yaml:"dot_radius"`

	Stroke        bool    `yaml:"stroke"`
	StrokeColor   string  `yaml:"stroke_color"`
	StrokeWidth   float64 `yaml:"stroke_width"`
	StrokeOpacity float64 `yaml:"stroke_opacity"`

	BlendMode string `yaml:"blend_mode"`
	Animate   bool   `yaml:"animate"`
}

// BlendModes lists the supported background blend modes in cycle order.
var BlendModes = []string{
	"normal",
	"multiply",
	"screen",
	"overlay",
	"soft-light",
	"difference",
}

func Default() Style {
	return Style{
		FillColor:     "#ffffff",
		Dots:          true,
		DotColor:      "#ffffff",
		DotRadius:     1.5,
		Stroke:        false,
		StrokeColor:   "#000000",
		StrokeWidth:   1.0,
		StrokeOpacity: 0.5,
		BlendMode:     "overlay",
		Animate:       true,
	}
}

// NextBlendMode returns the mode following current in BlendModes, wrapping
// around; unknown modes restart the cycle.
func NextBlendMode(current string) string {
	for i, m := range BlendModes {
		if m == current {
			return BlendModes[(i+1)%len(BlendModes)]
		}
	}
	return BlendModes[0]
}
