package grid_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/simonbloom/bloominimg/internal/grid"
)

var _ = Describe("Generate", func() {
	base := grid.Config{
		Cols:        10,
		AspectRatio: 800.0 / 600.0,
		OpacityMin:  0.2,
		OpacityMax:  0.9,
		DurationMin: 2.0,
		DurationMax: 6.0,
		Seed:        42,
	}

	It("is deterministic for a fixed config and seed", func() {
		a := grid.Generate(base)
		b := grid.Generate(base)
		Expect(a).To(HaveLen(base.CellCount()))
		Expect(b).To(Equal(a))
	})

	It("produces a different field for a different seed", func() {
		reseeded := base
		reseeded.Seed = 43
		Expect(grid.Generate(reseeded)).NotTo(Equal(grid.Generate(base)))
	})

	It("derives rows from cols and aspect ratio", func() {
		Expect(base.Rows()).To(Equal(8))

		wide := base
		wide.AspectRatio = 100.0
		Expect(wide.Rows()).To(Equal(1), "row count floors at 1")

		square := base
		square.AspectRatio = 1.0
		Expect(square.Rows()).To(Equal(10))
	})

	It("indexes cells in row-major order", func() {
		cells := grid.Generate(base)
		for i, c := range cells {
			Expect(c.Index).To(Equal(i))
		}
	})

	It("keeps every value inside its configured range", func() {
		cells := grid.Generate(base)
		for _, c := range cells {
			Expect(c.Opacity).To(BeNumerically(">=", base.OpacityMin))
			Expect(c.Opacity).To(BeNumerically("<=", base.OpacityMax))
			Expect(c.Duration).To(BeNumerically(">=", base.DurationMin))
			Expect(c.Duration).To(BeNumerically("<=", base.DurationMax))
			Expect(c.Delay).To(BeNumerically(">=", 0.0))
			Expect(c.Delay).To(BeNumerically("<", 2.0))
		}
	})

	Describe("quantization", func() {
		It("snaps opacities onto three evenly spaced levels", func() {
			cfg := base
			cfg.Levels = 3
			lattice := []float64{0.2, 0.55, 0.9}

			for _, c := range grid.Generate(cfg) {
				onLattice := false
				for _, l := range lattice {
					if math.Abs(c.Opacity-l) < 1e-9 {
						onLattice = true
						break
					}
				}
				Expect(onLattice).To(BeTrue(), "opacity %v not on 3-level lattice", c.Opacity)
			}
		})

		It("hits every level of the lattice for L levels", func() {
			cfg := base
			cfg.Cols = 20
			cfg.Levels = 5
			step := (cfg.OpacityMax - cfg.OpacityMin) / float64(cfg.Levels-1)

			seen := map[int]bool{}
			for _, c := range grid.Generate(cfg) {
				k := int(math.Round((c.Opacity - cfg.OpacityMin) / step))
				Expect(k).To(BeNumerically(">=", 0))
				Expect(k).To(BeNumerically("<=", cfg.Levels-1))
				Expect(cfg.OpacityMin + float64(k)*step).To(BeNumerically("~", c.Opacity, 1e-9))
				seen[k] = true
			}
			Expect(seen).To(HaveLen(cfg.Levels))
		})

		It("treats levels 0 and 1 as continuous", func() {
			for _, levels := range []int{0, 1} {
				cfg := base
				cfg.Levels = levels
				continuous := base
				continuous.Levels = 0
				Expect(grid.Generate(cfg)).To(Equal(grid.Generate(continuous)))
			}
		})
	})
})
