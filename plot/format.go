package plot

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// ErrUnsupportedFormat is returned for output paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("plot: unsupported output format")

// Format selects the image encoding.
type Format int

const (
	FormatPNG Format = iota
	FormatSVG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatSVG:
		return "svg"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension (case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func (f Format) provider() (chart.RendererProvider, error) {
	switch f {
	case FormatPNG:
		return chart.PNG, nil
	case FormatSVG:
		return chart.SVG, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}
