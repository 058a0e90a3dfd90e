package render

import (
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// Palette is an ordered list of series colors.
type Palette []drawing.Color

var (
	colorBlack = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	colorRed   = drawing.Color{R: 255, G: 0, B: 0, A: 255}
	colorBlue  = drawing.Color{R: 0, G: 0, B: 255, A: 255}
	colorGreen = drawing.Color{R: 0, G: 255, B: 0, A: 255}
	colorCyan  = drawing.Color{R: 0, G: 255, B: 255, A: 255}
	colorMesh  = drawing.Color{R: 0, G: 0, B: 0, A: 26}
	colorWhite = drawing.Color{R: 255, G: 255, B: 255, A: 255}
)

// DefaultPalette returns the default series colors: black, red, blue,
// green, cyan. Each call returns a fresh slice.
func DefaultPalette() Palette {
	return Palette{colorBlack, colorRed, colorBlue, colorGreen, colorCyan}
}

// Color returns the color for series index i, wrapping around the palette.
// An empty palette yields black.
func (p Palette) Color(i int) drawing.Color {
	if len(p) == 0 {
		return colorBlack
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// ParsePalette parses hex colors such as "#ff0000", "00f" or "1f77b4".
func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, errs.New(errs.ErrCodeInvalidConfig, "palette is empty")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := parseHexColor(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

func parseHexColor(s string) (drawing.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return drawing.Color{}, errs.New(errs.ErrCodeInvalidConfig, "invalid color %q: want #rgb or #rrggbb", s)
	}
	// ColorFromHex maps bad digits to zero instead of failing.
	if _, err := strconv.ParseUint(h, 16, 32); err != nil {
		return drawing.Color{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "invalid color %q", s)
	}
	return drawing.ColorFromHex(h), nil
}
