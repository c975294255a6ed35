package style

import "testing"

func TestDefault(t *testing.T) {
	s := Default()

	if s.FillColor == "" {
		t.Error("default fill color should be set")
	}
	if !s.Animate {
		t.Error("animation should default to on")
	}
	if s.DotRadius <= 0 {
		t.Error("dot radius should be positive")
	}
}

func TestNextBlendMode(t *testing.T) {
	if got := NextBlendMode("normal"); got != "multiply" {
		t.Errorf("expected multiply after normal, got %s", got)
	}
	last := BlendModes[len(BlendModes)-1]
	if got := NextBlendMode(last); got != BlendModes[0] {
		t.Errorf("expected wrap to %s, got %s", BlendModes[0], got)
	}
	if got := NextBlendMode("bogus"); got != BlendModes[0] {
		t.Errorf("unknown mode should restart the cycle, got %s", got)
	}
}

func TestGetPreset(t *testing.T) {
	s, ok := GetPreset("blueprint")
	if !ok {
		t.Fatal("expected blueprint preset")
	}
	if !s.Stroke {
		t.Error("blueprint should enable the stroke")
	}

	if _, ok := GetPreset("nonexistent"); ok {
		t.Error("expected miss for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("preset names should be sorted")
		}
	}
}
