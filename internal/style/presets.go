package style

import "sort"

// Presets carry valid stroke and dot values even when the feature is off,
// since the editor can toggle either on afterwards.
var Presets = map[string]Style{
	"ghost": {
		FillColor: "#ffffff",
		Dots:      true, DotColor: "#ffffff", DotRadius: 1.5,
		StrokeColor: "#ffffff", StrokeWidth: 0.5, StrokeOpacity: 0.4,
		BlendMode: "overlay", Animate: true,
	},
	"blueprint": {
		FillColor: "#4a90d9",
		Dots:      true, DotColor: "#9ec7f0", DotRadius: 1.0,
		Stroke: true, StrokeColor: "#1c3a5e", StrokeWidth: 0.5, StrokeOpacity: 0.6,
		BlendMode: "multiply", Animate: true,
	},
	"noir": {
		FillColor: "#000000",
		Dots:      false, DotColor: "#333333", DotRadius: 1.0,
		StrokeColor: "#1a1a1a", StrokeWidth: 1.0, StrokeOpacity: 0.5,
		BlendMode: "soft-light", Animate: true,
	},
	"ember": {
		FillColor: "#ff5a1f",
		Dots:      true, DotColor: "#ffd9a0", DotRadius: 2.0,
		StrokeColor: "#b33a0f", StrokeWidth: 0.8, StrokeOpacity: 0.5,
		BlendMode: "screen", Animate: true,
	},
	"static": {
		FillColor: "#ffffff",
		Dots:      true, DotColor: "#ffffff", DotRadius: 1.5,
		StrokeColor: "#ffffff", StrokeWidth: 0.5, StrokeOpacity: 0.4,
		BlendMode: "overlay", Animate: false,
	},
}

func GetPreset(name string) (Style, bool) {
	s, ok := Presets[name]
	return s, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
