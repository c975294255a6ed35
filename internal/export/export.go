// Package export turns a generated grid field into the three output
// artifacts: an SVG overlay document, the source of a standalone animated
// component, and a zip bundle of component + instructions + image.
package export

import (
	"github.com/simonbloom/bloominimg/internal/grid"
	"github.com/simonbloom/bloominimg/internal/style"
)

// Fixed output names. The editor always writes to these so repeated exports
// overwrite rather than accumulate.
const (
	SVGFileName    = "grid-overlay.svg"
	BundleFileName = "grid-overlay-bundle.zip"
)

// Overlay is the shared input of all serializers: the generated field, the
// configuration that produced it, the style, the mask, and the pixel
// dimensions of the underlying image. Serializers never mutate it.
type Overlay struct {
	Cells  []grid.Cell
	Grid   grid.Config
	Style  style.Style
	Mask   grid.MaskSet
	Width  int
	Height int
}
