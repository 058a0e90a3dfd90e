package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/csvplot/pkg/axis"
	"github.com/matzehuels/csvplot/pkg/fonts"
	"github.com/matzehuels/csvplot/pkg/layout"
	"github.com/matzehuels/csvplot/pkg/table"
)

// panelKind selects the per-panel styling.
type panelKind int

const (
	kindCombined panelKind = iota
	kindOverview
	kindGrid
)

// panelStyle holds the fixed decorations of one panel kind.
type panelStyle struct {
	labelArea int // left padding reserved for tick labels
	xTicks    int
	yTicks    int
	legend    bool
}

var panelStyles = map[panelKind]panelStyle{
	kindCombined: {labelArea: 60, xTicks: 10, yTicks: 10, legend: true},
	kindOverview: {labelArea: 50, xTicks: 20, yTicks: 10, legend: true},
	kindGrid:     {labelArea: 30, xTicks: 5, yTicks: 3},
}

const (
	panelMargin     = 5
	captionFontSize = 16
	annotationSize  = 12
	markerSize      = 3
	seriesWidth     = 1.5
)

// Scale holds the axis ranges every panel of one chart is drawn against.
type Scale struct {
	X axis.Range
	Y axis.Range
}

// panelSpec is everything needed to draw one panel with the chart backend.
type panelSpec struct {
	name    string
	kind    panelKind
	caption string
	series  []seriesSpec
}

type seriesSpec struct {
	name      string
	xs, ys    []float64
	color     drawing.Color
	annotated bool
}

// panelSpecFor resolves a planned panel against the table and palette.
func (c *Composer) panelSpecFor(name string, kind panelKind, p layout.Panel, t *table.Table, xCol int) panelSpec {
	spec := panelSpec{name: name, kind: kind}
	if p.CaptionColumn >= 0 {
		spec.caption = t.ColumnName(p.CaptionColumn)
	}
	xs := t.Column(xCol)
	for i, s := range p.Series {
		spec.series = append(spec.series, seriesSpec{
			name:      t.ColumnName(s.Column),
			xs:        xs,
			ys:        t.Column(s.Column),
			color:     c.seriesColor(kind, i, s.Column),
			annotated: s.Annotated,
		})
	}
	return spec
}

// seriesColor picks the line color. Combined charts index the palette by
// column; the split overview draws red then blue; grid panels are blue.
func (c *Composer) seriesColor(kind panelKind, position, column int) drawing.Color {
	switch kind {
	case kindOverview:
		if position == 0 {
			return colorRed
		}
		return colorBlue
	case kindGrid:
		return colorBlue
	default:
		return c.palette.Color(column)
	}
}

// drawPanel renders spec into a w×h image using go-chart.
func drawPanel(spec panelSpec, scale Scale, font *truetype.Font, w, h int) (image.Image, error) {
	st := panelStyles[spec.kind]
	x, y := scale.X.Padded(), scale.Y.Padded()

	ch := chart.Chart{
		Width:  w,
		Height: h,
		DPI:    fonts.DPI,
		Font:   font,
		Background: chart.Style{
			FillColor: colorWhite,
			Padding: chart.Box{
				Top:    panelMargin,
				Left:   panelMargin + st.labelArea/2,
				Right:  panelMargin,
				Bottom: panelMargin,
			},
		},
		XAxis: chart.XAxis{
			Range:          &chart.ContinuousRange{Min: x.Min, Max: x.Max},
			Ticks:          ticks(x, st.xTicks),
			GridMajorStyle: meshStyle(),
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: y.Min, Max: y.Max},
			Ticks:          ticks(y, st.yTicks),
			GridMajorStyle: meshStyle(),
		},
	}
	if spec.caption != "" {
		ch.Title = spec.caption
		ch.TitleStyle = chart.Style{FontSize: captionFontSize, FontColor: colorBlack}
		ch.Background.Padding.Top += captionFontSize + panelMargin
	}

	for _, s := range spec.series {
		if len(s.xs) == 0 {
			continue
		}
		line := chart.ContinuousSeries{
			Name:    s.name,
			XValues: s.xs,
			YValues: s.ys,
			Style:   chart.Style{StrokeColor: s.color, StrokeWidth: seriesWidth},
		}
		if s.annotated {
			line.Style.DotColor = colorRed
			line.Style.DotWidth = markerSize
		}
		ch.Series = append(ch.Series, line)
		if s.annotated {
			ch.Series = append(ch.Series, annotations(s))
		}
	}

	if len(ch.Series) == 0 {
		// A header-only table still gets its axes.
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Style:   chart.Style{Hidden: true},
			XValues: []float64{x.Min, x.Max},
			YValues: []float64{y.Min, y.Max},
		})
	} else if st.legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch, chart.Style{StrokeColor: colorBlack})}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode panel image: %w", err)
	}
	return img, nil
}

// annotations labels every point of s with its coordinates.
func annotations(s seriesSpec) chart.AnnotationSeries {
	values := make([]chart.Value2, len(s.xs))
	for i := range s.xs {
		values[i] = chart.Value2{
			XValue: s.xs[i],
			YValue: s.ys[i],
			Label:  fmt.Sprintf("(%g, %g)", s.xs[i], s.ys[i]),
		}
	}
	return chart.AnnotationSeries{
		Name:        s.name + " points",
		Annotations: values,
		Style: chart.Style{
			FontSize:    annotationSize,
			FontColor:   colorBlack,
			StrokeColor: colorRed,
			FillColor:   colorWhite,
		},
	}
}

func meshStyle() chart.Style {
	return chart.Style{StrokeColor: colorMesh, StrokeWidth: 1}
}

// ticks returns n evenly spaced ticks from r.Min to r.Max, labelled with
// one decimal.
func ticks(r axis.Range, n int) []chart.Tick {
	if n < 2 {
		n = 2
	}
	out := make([]chart.Tick, n)
	step := r.Span() / float64(n-1)
	for i := range out {
		v := r.Min + step*float64(i)
		if i == n-1 {
			v = r.Max
		}
		out[i] = chart.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)}
	}
	return out
}
