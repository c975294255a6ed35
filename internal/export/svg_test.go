package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonbloom/bloominimg/internal/grid"
	"github.com/simonbloom/bloominimg/internal/style"
)

func testOverlay() Overlay {
	cfg := grid.Config{
		Cols:        10,
		AspectRatio: 800.0 / 600.0,
		OpacityMin:  0.2,
		OpacityMax:  0.9,
		DurationMin: 2.0,
		DurationMax: 6.0,
		Seed:        7,
	}
	return Overlay{
		Cells:  grid.Generate(cfg),
		Grid:   cfg,
		Style:  style.Default(),
		Mask:   grid.NewMaskSet(),
		Width:  800,
		Height: 600,
	}
}

func TestSVGRectPerUnmaskedCell(t *testing.T) {
	o := testOverlay()
	o.Mask.Toggle(0)
	o.Mask.Toggle(15)
	o.Mask.Toggle(42)

	doc := SVG(o)

	want := o.Grid.CellCount() - o.Mask.Len()
	if got := strings.Count(doc, "<rect"); got != want {
		t.Errorf("expected %d rects, got %d", want, got)
	}
}

func TestSVGDotLattice(t *testing.T) {
	o := testOverlay()
	o.Style.Dots = true
	o.Mask.Toggle(3) // mask state must not affect the lattice

	doc := SVG(o)

	want := (o.Grid.Rows() + 1) * (o.Grid.Cols + 1)
	if got := strings.Count(doc, "<circle"); got != want {
		t.Errorf("expected %d lattice dots, got %d", want, got)
	}

	o.Style.Dots = false
	if strings.Contains(SVG(o), "<circle") {
		t.Error("disabled dots should emit no circles")
	}
}

func TestSVGViewBox(t *testing.T) {
	o := testOverlay()
	doc := SVG(o)

	if !strings.Contains(doc, `viewBox="0 0 800 600"`) {
		t.Error("viewBox should match image pixel dimensions")
	}
	if !strings.Contains(doc, `width="800" height="600"`) {
		t.Error("document size should match image pixel dimensions")
	}
}

func TestSVGOpacityPrecision(t *testing.T) {
	o := testOverlay()
	doc := SVG(o)

	for _, line := range strings.Split(doc, "\n") {
		if !strings.Contains(line, "fill-opacity=") {
			continue
		}
		val := line[strings.Index(line, `fill-opacity="`)+len(`fill-opacity="`):]
		val = val[:strings.Index(val, `"`)]
		dot := strings.Index(val, ".")
		if dot < 0 || len(val)-dot-1 != 3 {
			t.Fatalf("fill-opacity %q not formatted to 3 decimal places", val)
		}
	}
}

func TestSVGStroke(t *testing.T) {
	o := testOverlay()
	o.Style.Stroke = true
	o.Style.StrokeColor = "#123456"

	doc := SVG(o)
	if !strings.Contains(doc, `stroke="#123456"`) {
		t.Error("stroke color missing")
	}

	o.Style.Stroke = false
	if strings.Contains(SVG(o), "stroke=") {
		t.Error("disabled stroke should emit no stroke attributes")
	}
}

func TestWriteSVG(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteSVG(dir, testOverlay())
	if err != nil {
		t.Fatalf("write svg: %v", err)
	}
	if filepath.Base(path) != SVGFileName {
		t.Errorf("expected fixed filename %s, got %s", SVGFileName, filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Error("output should be a self-contained XML document")
	}
}
