package export

import (
	"strings"
	"testing"
)

func TestComponentLiterals(t *testing.T) {
	o := testOverlay()
	o.Grid.Levels = 3
	o.Style.BlendMode = "multiply"
	o.Style.FillColor = "#abcdef"

	src := Component(o)

	for _, want := range []string{
		"const COLS = 10;",
		"const ROWS = 8;",
		"const OPACITY_RANGE = [0.2, 0.9];",
		"const LEVELS = 3;",
		"const DURATION_RANGE = [2, 6];",
		`const FILL = "#abcdef";`,
		`const BLEND = "multiply";`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("component missing literal %q", want)
		}
	}
}

func TestComponentMaskedList(t *testing.T) {
	o := testOverlay()
	o.Mask.Toggle(17)
	o.Mask.Toggle(3)
	o.Mask.Toggle(55)

	src := Component(o)
	if !strings.Contains(src, "const MASKED = new Set([3, 17, 55]);") {
		t.Error("masked indices should be emitted sorted")
	}

	o.Mask.Clear()
	if !strings.Contains(Component(o), "const MASKED = new Set([]);") {
		t.Error("empty mask should emit an empty set")
	}
}

func TestComponentIsFreshRandomNotSeeded(t *testing.T) {
	src := Component(testOverlay())

	if !strings.Contains(src, "Math.random()") {
		t.Error("component should regenerate its field with unseeded randomness")
	}
	if strings.Contains(src, "Seed") || strings.Contains(src, "SEED") {
		t.Error("the edited seed must not leak into the component")
	}
}

func TestComponentStructure(t *testing.T) {
	src := Component(testOverlay())

	for _, want := range []string{
		`import { motion } from "framer-motion";`,
		"export default function GridOverlay()",
		`<img src="./background.png"`,
		"MASKED.has(cell.index)",
		"repeat: Infinity",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("component missing %q", want)
		}
	}

	// Crude balance checks; the real contract is that the text parses as JSX.
	for _, pair := range [][2]string{{"{", "}"}, {"(", ")"}, {"[", "]"}} {
		if strings.Count(src, pair[0]) != strings.Count(src, pair[1]) {
			t.Errorf("unbalanced %s%s in emitted source", pair[0], pair[1])
		}
	}
}

func TestComponentDeterministicText(t *testing.T) {
	o := testOverlay()
	if Component(o) != Component(o) {
		t.Error("serialization itself must be deterministic")
	}
}
