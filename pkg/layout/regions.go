package layout

import (
	"image"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// OverviewHeight is the fixed pixel height of the split overview region.
const OverviewHeight = 256

// minCellSize is the smallest grid cell, in pixels, a chart can be drawn into.
const minCellSize = 16

// Regions holds the pixel rectangles a plan's panels are drawn into.
type Regions struct {
	Overview image.Rectangle
	Cells    []image.Rectangle // one per grid panel, left to right
}

// Regions partitions area for the plan. A combined plan uses the whole area.
// A split plan puts the overview in the top [OverviewHeight] pixels and
// splits the rest evenly into one cell per grid panel.
func (p Plan) Regions(area image.Rectangle) (Regions, error) {
	if area.Empty() {
		return Regions{}, errs.New(errs.ErrCodeLayout, "drawing area %v is empty", area)
	}
	if p.Strategy != Split {
		return Regions{Overview: area}, nil
	}

	upper, lower := SplitVertically(area, OverviewHeight)
	if lower.Dy() < minCellSize {
		return Regions{}, errs.New(errs.ErrCodeLayout,
			"drawing area height %d leaves no room for grid panels below the %dpx overview", area.Dy(), OverviewHeight)
	}
	if len(p.Grid) > 0 && lower.Dx()/len(p.Grid) < minCellSize {
		return Regions{}, errs.New(errs.ErrCodeLayout,
			"drawing area width %d is too narrow for %d grid panels", area.Dx(), len(p.Grid))
	}
	return Regions{Overview: upper, Cells: SplitEvenly(lower, len(p.Grid))}, nil
}

// SplitVertically cuts r into an upper part of height y (clamped to r) and
// the remaining lower part.
func SplitVertically(r image.Rectangle, y int) (upper, lower image.Rectangle) {
	cut := min(r.Min.Y+max(y, 0), r.Max.Y)
	upper = image.Rect(r.Min.X, r.Min.Y, r.Max.X, cut)
	lower = image.Rect(r.Min.X, cut, r.Max.X, r.Max.Y)
	return upper, lower
}

// SplitEvenly cuts r into n side-by-side cells of equal width. Pixels left
// over by the integer division go to the last cell, so the cells always
// cover r exactly.
func SplitEvenly(r image.Rectangle, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	w := r.Dx() / n
	cells := make([]image.Rectangle, n)
	for i := range cells {
		x0 := r.Min.X + i*w
		x1 := x0 + w
		if i == n-1 {
			x1 = r.Max.X
		}
		cells[i] = image.Rect(x0, r.Min.Y, x1, r.Max.Y)
	}
	return cells
}
