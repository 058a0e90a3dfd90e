// Package layout plans which panels a chart consists of and where they go.
//
// A [Plan] is derived purely from the table's column count and a
// [Strategy]; it names columns by index and never touches values. The
// composer in package render turns a plan into pixels.
//
// # Strategies
//
// Combined draws every dependent column (1..n-1) against column 0 in one
// panel.
//
// Split draws a two-tier chart: an overview panel with columns 1 and 2
// (column 2 annotated with its point coordinates), and below it a single
// row of n-2 grid panels, one column each. The grid shows the contiguous
// window of columns starting at n-3. For the usual five-column engine run
// (id, speed, rpm, torsi, horsepower) that is columns 2, 3 and 4. For wider
// tables the window runs past the last column, which [Build] reports as a
// LAYOUT_ERROR instead of planning an out-of-range panel.
//
// Every panel of a plan is scaled by the same y range, computed over
// [Plan.RangeColumns].
package layout

import (
	"fmt"

	"github.com/matzehuels/csvplot/pkg/axis"
	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// Strategy selects how a table is laid out.
type Strategy int

const (
	// Combined plots all dependent columns in a single panel.
	Combined Strategy = iota
	// Split plots an overview panel plus a row of per-column panels.
	Split
)

// MinSplitColumns is the smallest column count a split plan accepts.
const MinSplitColumns = 3

// String returns the strategy name used on the command line.
func (s Strategy) String() string {
	switch s {
	case Combined:
		return "combined"
	case Split:
		return "split"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses "combined" or "split".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "combined", "":
		return Combined, nil
	case "split":
		return Split, nil
	default:
		return 0, errs.New(errs.ErrCodeInvalidInput, "invalid strategy: %q (must be 'combined' or 'split')", s)
	}
}

// Series is one line drawn from a column against the plan's x column.
type Series struct {
	Column    int
	Annotated bool // draw point markers with coordinate labels
}

// Panel is one coordinate system of the chart.
type Panel struct {
	Series []Series

	// CaptionColumn is the column whose name captions the panel, or -1
	// for panels without a caption.
	CaptionColumn int
}

// Columns returns the column indices plotted in the panel.
func (p Panel) Columns() []int {
	cols := make([]int, len(p.Series))
	for i, s := range p.Series {
		cols[i] = s.Column
	}
	return cols
}

// Plan describes the panels of one chart.
type Plan struct {
	Strategy Strategy

	// XColumn is the independent column every series is plotted against.
	XColumn int

	// RangeColumns are the columns whose values determine the shared y range.
	RangeColumns []int

	// Overview is the main panel: the only panel for Combined, the upper
	// panel for Split.
	Overview Panel

	// Grid holds the per-column panels of a Split plan, left to right.
	Grid []Panel
}

// PanelCount returns the total number of panels.
func (p Plan) PanelCount() int { return 1 + len(p.Grid) }

// GridColumns returns the column bound to each grid panel.
func (p Plan) GridColumns() []int {
	cols := make([]int, len(p.Grid))
	for i, g := range p.Grid {
		cols[i] = g.CaptionColumn
	}
	return cols
}

// Build plans a chart for a table with columnCount columns.
//
// Combined needs at least two columns. Split needs at least
// [MinSplitColumns] and fails with INSUFFICIENT_COLUMNS otherwise; a grid
// window reaching past the last column fails with LAYOUT_ERROR.
func Build(columnCount int, strategy Strategy) (Plan, error) {
	switch strategy {
	case Combined:
		return buildCombined(columnCount)
	case Split:
		return buildSplit(columnCount)
	default:
		return Plan{}, errs.New(errs.ErrCodeLayout, "unknown strategy %v", strategy)
	}
}

func buildCombined(n int) (Plan, error) {
	if n < 2 {
		return Plan{}, errs.New(errs.ErrCodeLayout, "combined plot needs at least 2 columns, table has %d", n)
	}
	overview := Panel{CaptionColumn: -1}
	for col := 1; col < n; col++ {
		overview.Series = append(overview.Series, Series{Column: col})
	}
	return Plan{
		Strategy:     Combined,
		XColumn:      0,
		RangeColumns: axis.DependentColumns(n),
		Overview:     overview,
	}, nil
}

func buildSplit(n int) (Plan, error) {
	if n < MinSplitColumns {
		return Plan{}, errs.New(errs.ErrCodeInsufficientColumns,
			"table has %d columns, less than 3: split plot needs at least %d columns", n, MinSplitColumns)
	}

	plan := Plan{
		Strategy:     Split,
		XColumn:      0,
		RangeColumns: axis.DependentColumns(n),
		Overview: Panel{
			Series:        []Series{{Column: 1}, {Column: 2, Annotated: true}},
			CaptionColumn: -1,
		},
	}

	start, count := n-3, n-2
	for i := 0; i < count; i++ {
		col := start + i
		if col < 0 || col >= n {
			return Plan{}, errs.New(errs.ErrCodeLayout,
				"grid panel %d maps to column %d, outside the table's %d columns", i, col, n)
		}
		plan.Grid = append(plan.Grid, Panel{
			Series:        []Series{{Column: col}},
			CaptionColumn: col,
		})
	}
	return plan, nil
}
