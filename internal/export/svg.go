package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SVG serializes the overlay as a self-contained SVG document sized to the
// source image. Each unmasked cell becomes one <rect> with percent-based
// geometry; masked cells are absent from the output entirely. When dots are
// enabled a lattice of fixed-radius markers is placed at every grid vertex,
// outer border included.
func SVG(o Overlay) string {
	rows := o.Grid.Rows()
	cols := o.Grid.Cols
	cellW := 100.0 / float64(cols)
	cellH := 100.0 / float64(rows)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<g>
`, o.Width, o.Height, o.Width, o.Height))

	for _, cell := range o.Cells {
		if o.Mask.Contains(cell.Index) {
			continue
		}
		row := cell.Index / cols
		col := cell.Index % cols
		x := float64(col) * cellW
		y := float64(row) * cellH

		if o.Style.Stroke {
			sb.WriteString(fmt.Sprintf(`<rect x="%.3f%%" y="%.3f%%" width="%.3f%%" height="%.3f%%" fill="%s" fill-opacity="%.3f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.3f"/>
`,
				x, y, cellW, cellH, o.Style.FillColor, cell.Opacity,
				o.Style.StrokeColor, o.Style.StrokeWidth, cell.Opacity*o.Style.StrokeOpacity))
		} else {
			sb.WriteString(fmt.Sprintf(`<rect x="%.3f%%" y="%.3f%%" width="%.3f%%" height="%.3f%%" fill="%s" fill-opacity="%.3f"/>
`,
				x, y, cellW, cellH, o.Style.FillColor, cell.Opacity))
		}
	}
	sb.WriteString("</g>\n")

	if o.Style.Dots {
		sb.WriteString(fmt.Sprintf("<g fill=%q>\n", o.Style.DotColor))
		for row := 0; row <= rows; row++ {
			for col := 0; col <= cols; col++ {
				sb.WriteString(fmt.Sprintf(`<circle cx="%.3f%%" cy="%.3f%%" r="%.2f"/>
`,
					float64(col)*cellW, float64(row)*cellH, o.Style.DotRadius))
			}
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG writes the SVG document to its fixed filename under dir.
func WriteSVG(dir string, o Overlay) (string, error) {
	path := filepath.Join(dir, SVGFileName)
	if err := os.WriteFile(path, []byte(SVG(o)), 0644); err != nil {
		return "", fmt.Errorf("write svg: %w", err)
	}
	return path, nil
}
