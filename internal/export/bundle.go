package export

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Bundle entry names are fixed regardless of the source image's on-disk name
// so the instructions can reference them verbatim.
const (
	InstructionsEntryName = "INSTRUCTIONS.txt"
	ImageEntryName        = "background.png"
)

// Instructions renders the plain-text integration guide included in every
// bundle: where the files go, what the component needs, and a worked example.
func Instructions(o Overlay) string {
	var sb strings.Builder

	sb.WriteString("GRID OVERLAY BUNDLE\n")
	sb.WriteString("===================\n\n")
	sb.WriteString("This bundle contains:\n")
	fmt.Fprintf(&sb, "  %s   the overlay component\n", ComponentEntryName)
	fmt.Fprintf(&sb, "  %s  this guide\n", InstructionsEntryName)
	fmt.Fprintf(&sb, "  %s    the source image the overlay was tuned against\n\n", ImageEntryName)

	sb.WriteString("INSTALLATION\n")
	sb.WriteString("------------\n")
	fmt.Fprintf(&sb, "1. Copy %s into your components directory (e.g. src/components/).\n", ComponentEntryName)
	fmt.Fprintf(&sb, "2. Copy %s next to it, or adjust the img src inside the component.\n", ImageEntryName)
	sb.WriteString("3. Install the one required dependency:\n\n")
	sb.WriteString("     npm install framer-motion\n\n")

	sb.WriteString("POSITIONING\n")
	sb.WriteString("-----------\n")
	sb.WriteString("The component renders the image and positions the grid absolutely over\n")
	sb.WriteString("it (overlay at z-index 10, dot lattice at 11). Its parent needs no\n")
	sb.WriteString("special styling; to layer it over other content, wrap it in a\n")
	sb.WriteString("position: relative container and raise the z-index as needed.\n\n")

	sb.WriteString("USAGE\n")
	sb.WriteString("-----\n")
	sb.WriteString("  import GridOverlay from \"./components/GridOverlay\";\n\n")
	sb.WriteString("  export default function Hero() {\n")
	sb.WriteString("    return (\n")
	sb.WriteString("      <section>\n")
	sb.WriteString("        <GridOverlay />\n")
	sb.WriteString("      </section>\n")
	sb.WriteString("    );\n")
	sb.WriteString("  }\n\n")

	sb.WriteString("TUNED SETTINGS\n")
	sb.WriteString("--------------\n")
	fmt.Fprintf(&sb, "  grid      %d x %d cells\n", o.Grid.Rows(), o.Grid.Cols)
	fmt.Fprintf(&sb, "  opacity   %.2f - %.2f", o.Grid.OpacityMin, o.Grid.OpacityMax)
	if o.Grid.Levels > 1 {
		fmt.Fprintf(&sb, " (quantized to %d levels)", o.Grid.Levels)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  duration  %.1fs - %.1fs\n", o.Grid.DurationMin, o.Grid.DurationMax)
	fmt.Fprintf(&sb, "  blend     %s\n", o.Style.BlendMode)
	fmt.Fprintf(&sb, "  masked    %d of %d cells\n", o.Mask.Len(), o.Grid.CellCount())
	sb.WriteString("\nThe component rolls fresh random opacities and timings on every mount;\n")
	sb.WriteString("the ranges above shape the field, the exact pattern varies per render.\n")

	return sb.String()
}

// Bundle writes the zip archive to w. The component and instructions entries
// are always present; imageBytes may be nil, in which case the image entry is
// skipped (the caller reports that as a warning, not a failure).
func Bundle(w io.Writer, o Overlay, imageBytes []byte) error {
	zw := zip.NewWriter(w)

	entries := []struct {
		name string
		data []byte
	}{
		{ComponentEntryName, []byte(Component(o))},
		{InstructionsEntryName, []byte(Instructions(o))},
	}
	if imageBytes != nil {
		entries = append(entries, struct {
			name string
			data []byte
		}{ImageEntryName, imageBytes})
	}

	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("bundle: create %s: %w", e.name, err)
		}
		if _, err := f.Write(e.data); err != nil {
			return fmt.Errorf("bundle: write %s: %w", e.name, err)
		}
	}

	return zw.Close()
}

// WriteBundle assembles the bundle under dir at its fixed filename.
//
// Reading the image is the one fallible step that must not sink the export:
// when imagePath cannot be read the archive is still produced with the two
// generated entries and the returned warning describes what was left out.
func WriteBundle(dir string, o Overlay, imagePath string) (path string, warning string, err error) {
	var imageBytes []byte
	if imagePath != "" {
		raw, readErr := os.ReadFile(imagePath)
		if readErr != nil {
			warning = fmt.Sprintf("image not included: %v", readErr)
		} else {
			imageBytes = raw
		}
	} else {
		warning = "image not included: no image loaded"
	}

	path = filepath.Join(dir, BundleFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", warning, fmt.Errorf("write bundle: %w", err)
	}
	defer f.Close()

	if err := Bundle(f, o, imageBytes); err != nil {
		return "", warning, err
	}
	return path, warning, nil
}
