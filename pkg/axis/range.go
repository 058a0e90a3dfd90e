// Package axis computes the value ranges used to scale chart axes.
//
// # Baseline-zero fold
//
// Every range here is a min/max reduction whose accumulators start at 0.0
// rather than at the first observed value. The result therefore always
// contains zero: a column whose values are all positive reports Min == 0,
// and a column whose values are all negative reports Max == 0. Charts drawn
// from these ranges always show the zero baseline. Callers wanting a tight
// range must compute it themselves.
package axis

import (
	"fmt"

	errs "github.com/matzehuels/csvplot/pkg/errors"
	"github.com/matzehuels/csvplot/pkg/table"
)

// Range is a closed [Min, Max] interval for one axis. Min <= Max.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min. Extremes near ±MaxFloat64 overflow to +Inf.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Padded returns r widened by one unit on each side when it has zero span,
// so a chart backend can still scale an axis for a constant (or empty)
// column. Non-degenerate ranges are returned unchanged.
func (r Range) Padded() Range {
	if r.Span() > 0 {
		return r
	}
	return Range{Min: r.Min - 1, Max: r.Max + 1}
}

// String formats the range as "[min, max]".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// fold extends r by v. The zero Range is the fold seed.
func (r Range) fold(v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// ColumnRange folds every value of column col into a baseline-zero range.
// A column index outside the table is a LAYOUT_ERROR.
func ColumnRange(t *table.Table, col int) (Range, error) {
	return GlobalRange(t, []int{col})
}

// GlobalRange folds the values of all listed columns into one baseline-zero
// range, so panels scaled by it are directly comparable. An empty column
// list yields the zero Range.
func GlobalRange(t *table.Table, cols []int) (Range, error) {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return Range{}, errs.New(errs.ErrCodeLayout, "column %d out of range (table has %d columns)", col, t.ColumnCount())
		}
	}

	var r Range
	for row := 0; row < t.RowCount(); row++ {
		for _, col := range cols {
			r = r.fold(t.Value(row, col))
		}
	}
	return r, nil
}

// DependentColumns returns the indices 1..columnCount-1, i.e. every column
// except the independent column 0.
func DependentColumns(columnCount int) []int {
	if columnCount < 2 {
		return nil
	}
	cols := make([]int, 0, columnCount-1)
	for i := 1; i < columnCount; i++ {
		cols = append(cols, i)
	}
	return cols
}
