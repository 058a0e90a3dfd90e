// Package fonts provides the TrueType faces used for raster text.
//
// The typeface is the Roboto font bundled with go-chart, so chart panels and
// the text drawn around them share one look. The parsed font is loaded once
// and shared; faces hold glyph caches and are created per caller.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
)

// DPI is the resolution faces are rasterized at. At 72 DPI a point equals
// one pixel.
const DPI = 72

var (
	defaultFont    *truetype.Font
	defaultFontErr error
	defaultOnce    sync.Once
)

// Default returns the parsed default typeface.
func Default() (*truetype.Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultFontErr = chart.GetDefaultFont()
		if defaultFontErr != nil {
			defaultFontErr = fmt.Errorf("load default font: %w", defaultFontErr)
		}
	})
	return defaultFont, defaultFontErr
}

// Face returns a new face of the default typeface at the given pixel size.
// A face is not safe for concurrent use.
func Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %g", size)
	}
	f, err := Default()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: DPI, Hinting: font.HintingFull}), nil
}
