package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/simonbloom/bloominimg/internal/grid"
	"github.com/simonbloom/bloominimg/internal/style"
)

const (
	MinCols            = 5
	MaxCols            = 60
	DefaultCols        = 12
	DefaultOpacityMin  = 0.1
	DefaultOpacityMax  = 0.8
	DefaultDurationMin = 2.0
	DefaultDurationMax = 6.0
)

// Document is the full editor configuration: which image is loaded plus the
// grid and style settings. It round-trips through YAML so a tuned overlay can
// be reloaded later with --config.
type Document struct {
	Image string      `yaml:"image"`
	Grid  grid.Config `yaml:"grid"`
	Style style.Style `yaml:"style"`
}

func Default() *Document {
	return &Document{
		Grid: grid.Config{
			Cols:        DefaultCols,
			AspectRatio: 1.0,
			OpacityMin:  DefaultOpacityMin,
			OpacityMax:  DefaultOpacityMax,
			Levels:      0,
			DurationMin: DefaultDurationMin,
			DurationMax: DefaultDurationMax,
			Seed:        1,
		},
		Style: style.Default(),
	}
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := Default()
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the editor's own controls cannot produce.
func (d *Document) Validate() error {
	g := d.Grid
	if g.Cols < MinCols || g.Cols > MaxCols {
		return fmt.Errorf("cols must be in [%d, %d], got %d", MinCols, MaxCols, g.Cols)
	}
	if g.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %v", g.AspectRatio)
	}
	if g.OpacityMin < 0 || g.OpacityMax > 1 || g.OpacityMin > g.OpacityMax {
		return fmt.Errorf("opacity range [%v, %v] must satisfy 0 <= min <= max <= 1", g.OpacityMin, g.OpacityMax)
	}
	if g.Levels < 0 {
		return fmt.Errorf("quantization levels must be >= 0, got %d", g.Levels)
	}
	if g.DurationMin <= 0 || g.DurationMin > g.DurationMax {
		return fmt.Errorf("duration range [%v, %v] must satisfy 0 < min <= max", g.DurationMin, g.DurationMax)
	}
	if d.Style.DotRadius <= 0 {
		return fmt.Errorf("dot radius must be positive, got %v", d.Style.DotRadius)
	}
	if d.Style.StrokeWidth <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", d.Style.StrokeWidth)
	}
	if d.Style.StrokeOpacity < 0 || d.Style.StrokeOpacity > 1 {
		return fmt.Errorf("stroke opacity must be in [0, 1], got %v", d.Style.StrokeOpacity)
	}
	return nil
}
