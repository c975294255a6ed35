package grid

import "math"

// Config describes the overlay grid: geometry, opacity and timing ranges,
// quantization, and the seed driving the deterministic field.
type Config struct {
	Cols        int     `yaml:"cols"`
	AspectRatio float64 `yaml:"aspect_ratio"`
	OpacityMin  float64 `yaml:"opacity_min"`
	OpacityMax  float64 `yaml:"opacity_max"`
	Levels      int     `yaml:"levels"`
	DurationMin float64 `yaml:"duration_min"`
	DurationMax float64 `yaml:"duration_max"`
	Seed        int64   `yaml:"seed"`
}

// Cell is one grid division with its computed visual and timing parameters.
type Cell struct {
	Index    int
	Opacity  float64
	Duration float64
	Delay    float64
}

// Rows derives the row count from the column count and the image aspect
// ratio, never dropping below one row.
func (c Config) Rows() int {
	if c.AspectRatio <= 0 {
		return 1
	}
	rows := int(math.Round(float64(c.Cols) / c.AspectRatio))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// CellCount returns rows × cols for the current geometry.
func (c Config) CellCount() int {
	return c.Rows() * c.Cols
}

// Generate produces the full cell field for the configuration, in row-major
// order. It is pure: the same config (seed included) always yields the same
// sequence, which keeps the preview stable and exports reproducible.
//
// Each cell takes three independent draws from a counter-based hash of
// (seed, offset) at offsets i, i+10000 and i+20000, so opacity, duration
// and delay stay uncorrelated without separate generator streams.
func Generate(cfg Config) []Cell {
	n := cfg.CellCount()
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		opacity := cfg.OpacityMin + draw(cfg.Seed, int64(i))*(cfg.OpacityMax-cfg.OpacityMin)
		if cfg.Levels > 1 {
			opacity = quantize(opacity, cfg.OpacityMin, cfg.OpacityMax, cfg.Levels)
		}
		duration := cfg.DurationMin + draw(cfg.Seed, int64(i+10000))*(cfg.DurationMax-cfg.DurationMin)
		delay := draw(cfg.Seed, int64(i+20000)) * 2

		cells[i] = Cell{
			Index:    i,
			Opacity:  opacity,
			Duration: duration,
			Delay:    delay,
		}
	}
	return cells
}

// quantize snaps v onto one of `levels` evenly spaced values spanning
// [min, max] inclusive of both endpoints.
func quantize(v, min, max float64, levels int) float64 {
	step := (max - min) / float64(levels-1)
	if step == 0 {
		return min
	}
	k := math.Round((v - min) / step)
	return min + k*step
}

// draw maps (seed, offset) to a uniform value in [0, 1) via a splitmix64
// finalizer. Counter-based, so any offset can be sampled independently.
func draw(seed, offset int64) float64 {
	z := uint64(seed) + uint64(offset)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	return float64(z>>11) / float64(1<<53)
}
