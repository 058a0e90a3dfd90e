package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/csvplot/pkg/axis"
	errs "github.com/matzehuels/csvplot/pkg/errors"
	"github.com/matzehuels/csvplot/pkg/fonts"
	"github.com/matzehuels/csvplot/pkg/layout"
	"github.com/matzehuels/csvplot/pkg/table"
)

// DefaultTitleFontSize is the title height in pixels.
const DefaultTitleFontSize = 40

// MinPanelSize is the smallest width and height, in pixels, left for the
// panels once the title band is taken.
const MinPanelSize = 64

// Dimensions is the pixel size of the output image.
type Dimensions struct {
	Width, Height uint
}

// Validate rejects zero and oversized dimensions.
func (d Dimensions) Validate() error {
	return errs.ValidateDimensions(d.Width, d.Height)
}

// Option configures a Composer.
type Option func(*Composer)

// WithPalette sets the series colors used by combined charts. An empty
// palette is ignored.
func WithPalette(p Palette) Option {
	return func(c *Composer) {
		if len(p) > 0 {
			c.palette = p
		}
	}
}

// WithTitleFontSize sets the title height in pixels.
func WithTitleFontSize(size float64) Option {
	return func(c *Composer) {
		if size > 0 {
			c.titleSize = size
		}
	}
}

// WithLogger sets the logger for per-panel debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// Composer draws layout plans into images. A Composer is immutable after
// construction and may be shared between goroutines.
type Composer struct {
	palette   Palette
	titleSize float64
	logger    *log.Logger
}

// NewComposer returns a Composer with the default palette and title size.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		palette:   DefaultPalette(),
		titleSize: DefaultTitleFontSize,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RenderCombined draws every dependent column of t into a single panel.
func (c *Composer) RenderCombined(title string, t *table.Table, d Dimensions) (*image.RGBA, error) {
	return c.renderStrategy(title, t, layout.Combined, d)
}

// RenderSplit draws the overview panel above a row of per-column panels.
// Tables with fewer than three columns fail with INSUFFICIENT_COLUMNS before
// anything is drawn.
func (c *Composer) RenderSplit(title string, t *table.Table, d Dimensions) (*image.RGBA, error) {
	return c.renderStrategy(title, t, layout.Split, d)
}

func (c *Composer) renderStrategy(title string, t *table.Table, s layout.Strategy, d Dimensions) (*image.RGBA, error) {
	plan, err := layout.Build(t.ColumnCount(), s)
	if err != nil {
		return nil, err
	}
	scale, err := ComputeScale(t, plan)
	if err != nil {
		return nil, err
	}
	return c.Render(title, t, plan, scale, d)
}

// ComputeScale folds the plan's x column and range columns into the shared
// axis ranges. A range whose span overflows float64 fails with RENDER_ERROR.
func ComputeScale(t *table.Table, plan layout.Plan) (Scale, error) {
	x, err := axis.ColumnRange(t, plan.XColumn)
	if err != nil {
		return Scale{}, err
	}
	y, err := axis.GlobalRange(t, plan.RangeColumns)
	if err != nil {
		return Scale{}, err
	}
	for _, a := range []struct {
		name string
		r    axis.Range
	}{{"x", x}, {"y", y}} {
		if math.IsInf(a.r.Span(), 0) {
			return Scale{}, errs.New(errs.ErrCodeRender, "%s axis range %v is too wide to scale", a.name, a.r)
		}
	}
	return Scale{X: x, Y: y}, nil
}

// Render draws plan onto a white surface of size d with the title centred
// in a band across the top. Every panel is drawn against scale.
func (c *Composer) Render(title string, t *table.Table, plan layout.Plan, scale Scale, d Dimensions) (*image.RGBA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	band := c.titleBand(title)
	if int(d.Width) < MinPanelSize || int(d.Height)-band < MinPanelSize {
		return nil, errs.New(errs.ErrCodeInvalidInput,
			"image %dx%d is too small: panels need %dx%d below a %dpx title band",
			d.Width, d.Height, MinPanelSize, MinPanelSize, band)
	}

	surface := image.NewRGBA(image.Rect(0, 0, int(d.Width), int(d.Height)))
	draw.Draw(surface, surface.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if err := c.drawTitle(surface, title, band); err != nil {
		return nil, err
	}

	regions, err := plan.Regions(image.Rect(0, band, int(d.Width), int(d.Height)))
	if err != nil {
		return nil, err
	}

	chartFont, err := fonts.Default()
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeRender, err, "load chart font")
	}

	overviewKind := kindCombined
	if plan.Strategy == layout.Split {
		overviewKind = kindOverview
	}
	overview := c.panelSpecFor("overview", overviewKind, plan.Overview, t, plan.XColumn)
	if err := c.compose(surface, overview, scale, chartFont, regions.Overview); err != nil {
		return nil, err
	}

	for i, g := range plan.Grid {
		spec := c.panelSpecFor(fmt.Sprintf("grid panel %d", i), kindGrid, g, t, plan.XColumn)
		if err := c.compose(surface, spec, scale, chartFont, regions.Cells[i]); err != nil {
			return nil, err
		}
	}
	return surface, nil
}

// compose draws one panel and copies it into rect.
func (c *Composer) compose(dst draw.Image, spec panelSpec, scale Scale, f *truetype.Font, rect image.Rectangle) error {
	img, err := drawPanel(spec, scale, f, rect.Dx(), rect.Dy())
	if err != nil {
		if spec.caption != "" {
			return errs.Wrap(errs.ErrCodeRender, err, "draw %s (%s)", spec.name, spec.caption)
		}
		return errs.Wrap(errs.ErrCodeRender, err, "draw %s", spec.name)
	}
	draw.Draw(dst, rect, img, img.Bounds().Min, draw.Src)
	c.logger.Debug("drew panel", "panel", spec.name, "series", len(spec.series), "rect", rect)
	return nil
}

// titleBand returns the height of the band reserved for title. An empty
// title takes no space.
func (c *Composer) titleBand(title string) int {
	if title == "" {
		return 0
	}
	return int(math.Ceil(c.titleSize * 1.5))
}

// drawTitle writes title centred in the top band of dst.
func (c *Composer) drawTitle(dst *image.RGBA, title string, band int) error {
	if title == "" {
		return nil
	}
	face, err := fonts.Face(c.titleSize)
	if err != nil {
		return errs.Wrap(errs.ErrCodeRender, err, "load title font")
	}

	b := dst.Bounds()

	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(color.Black), Face: face}
	m := face.Metrics()
	x := b.Min.X + (b.Dx()-dr.MeasureString(title).Ceil())/2
	y := b.Min.Y + (band+m.Ascent.Ceil()-m.Descent.Ceil())/2
	dr.Dot = fixed.Point26_6{X: fixed.I(max(x, b.Min.X)), Y: fixed.I(y)}
	dr.DrawString(title)
	return nil
}
