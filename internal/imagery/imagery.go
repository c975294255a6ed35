// Package imagery is the image input boundary. The editor only ever needs an
// image's pixel dimensions and its raw bytes; decoding is delegated to the
// registered stdlib and extension decoders.
package imagery

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	"github.com/ncruces/zenity"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Source is a loaded image: its on-disk location, decoded dimensions, and
// the undecoded bytes kept for bundle export.
type Source struct {
	Path   string
	Format string
	Width  int
	Height int
	Bytes  []byte
}

// AspectRatio returns width/height for row derivation.
func (s *Source) AspectRatio() float64 {
	if s.Height == 0 {
		return 1.0
	}
	return float64(s.Width) / float64(s.Height)
}

// SameGeometry reports whether other has identical pixel dimensions. A
// geometry change invalidates every mask index.
func (s *Source) SameGeometry(other *Source) bool {
	return other != nil && s.Width == other.Width && s.Height == other.Height
}

// Load reads and decodes the image at path.
func Load(path string) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagery: read %s: %w", path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imagery: decode %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("imagery: %s has degenerate dimensions %dx%d", path, cfg.Width, cfg.Height)
	}

	return &Source{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Bytes:  raw,
	}, nil
}

// ErrCanceled is returned by Pick when the user dismisses the dialog.
var ErrCanceled = errors.New("imagery: selection canceled")

// Pick opens a native file dialog and loads the chosen image.
func Pick() (*Source, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tiff", "*.webp", "*.tga"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil, ErrCanceled
		}
		return nil, err
	}
	return Load(path)
}
