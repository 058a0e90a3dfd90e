package axis

import (
	"slices"
	"testing"

	errs "github.com/matzehuels/csvplot/pkg/errors"
	"github.com/matzehuels/csvplot/pkg/table"
)

func mustTable(t *testing.T, names []string, rows [][]float64) *table.Table {
	t.Helper()
	tbl, err := table.New(names, rows)
	if err != nil {
		t.Fatalf("table.New() error: %v", err)
	}
	return tbl
}

// column builds a two-column table whose second column holds values.
func column(t *testing.T, values ...float64) *table.Table {
	t.Helper()
	rows := make([][]float64, len(values))
	for i, v := range values {
		rows[i] = []float64{float64(i), v}
	}
	return mustTable(t, []string{"id", "v"}, rows)
}

func TestColumnRangeBaselineZero(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Range
	}{
		{"all positive", []float64{3, 7, 5}, Range{Min: 0, Max: 7}},
		{"all negative", []float64{-5, -1, -3, -2}, Range{Min: -5, Max: 0}},
		{"mixed", []float64{-2, 4, 1}, Range{Min: -2, Max: 4}},
		{"all zero", []float64{0, 0}, Range{Min: 0, Max: 0}},
		{"single positive", []float64{42}, Range{Min: 0, Max: 42}},
		{"empty", nil, Range{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColumnRange(column(t, tt.values...), 1)
			if err != nil {
				t.Fatalf("ColumnRange() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ColumnRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColumnRangeLaws(t *testing.T) {
	// Non-negative columns always report an exact 0.0 minimum; non-positive
	// columns always report an exact 0.0 maximum.
	positives := [][]float64{{0.1}, {1e-9, 2}, {100, 200, 300}, {0, 5}}
	for _, vals := range positives {
		r, err := ColumnRange(column(t, vals...), 1)
		if err != nil {
			t.Fatalf("ColumnRange(%v) error: %v", vals, err)
		}
		if r.Min != 0.0 {
			t.Errorf("ColumnRange(%v).Min = %v, want 0", vals, r.Min)
		}
	}

	negatives := [][]float64{{-0.1}, {-1e-9, -2}, {-100, -200}, {0, -5}}
	for _, vals := range negatives {
		r, err := ColumnRange(column(t, vals...), 1)
		if err != nil {
			t.Fatalf("ColumnRange(%v) error: %v", vals, err)
		}
		if r.Max != 0.0 {
			t.Errorf("ColumnRange(%v).Max = %v, want 0", vals, r.Max)
		}
	}
}

func TestColumnRangeIndependentColumn(t *testing.T) {
	rows := make([][]float64, 101)
	for i := range rows {
		rows[i] = []float64{float64(i), 1}
	}
	r, err := ColumnRange(mustTable(t, []string{"id", "v"}, rows), 0)
	if err != nil {
		t.Fatalf("ColumnRange() error: %v", err)
	}
	if want := (Range{Min: 0, Max: 100}); r != want {
		t.Errorf("ColumnRange(id) = %v, want %v", r, want)
	}
}

func TestGlobalRange(t *testing.T) {
	tbl := mustTable(t,
		[]string{"id", "speed", "rpm", "torsi", "horsepower"},
		[][]float64{
			{0, 10, 800, 40, 6},
			{1, 296.15, 499.14, 99.51, 49.33},
			{2, 5, -20, 0, 1},
		})

	tests := []struct {
		name string
		cols []int
		want Range
	}{
		{"dependent columns", DependentColumns(5), Range{Min: -20, Max: 800}},
		{"speed only", []int{1}, Range{Min: 0, Max: 296.15}},
		{"torsi and horsepower", []int{3, 4}, Range{Min: 0, Max: 99.51}},
		{"no columns", nil, Range{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GlobalRange(tbl, tt.cols)
			if err != nil {
				t.Fatalf("GlobalRange() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GlobalRange(%v) = %v, want %v", tt.cols, got, tt.want)
			}
		})
	}
}

func TestGlobalRangeOutOfBounds(t *testing.T) {
	tbl := column(t, 1, 2)
	for _, cols := range [][]int{{2}, {-1}, {1, 5}} {
		_, err := GlobalRange(tbl, cols)
		if !errs.Is(err, errs.ErrCodeLayout) {
			t.Errorf("GlobalRange(%v) code = %v, want %v", cols, errs.GetCode(err), errs.ErrCodeLayout)
		}
	}
}

func TestDependentColumns(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{0, nil},
		{1, nil},
		{2, []int{1}},
		{5, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		if got := DependentColumns(tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("DependentColumns(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestRangePadded(t *testing.T) {
	tests := []struct {
		name string
		in   Range
		want Range
	}{
		{"normal", Range{Min: 0, Max: 10}, Range{Min: 0, Max: 10}},
		{"zero", Range{}, Range{Min: -1, Max: 1}},
		{"constant", Range{Min: 0, Max: 0}, Range{Min: -1, Max: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Padded(); got != tt.want {
				t.Errorf("Padded() = %v, want %v", got, tt.want)
			}
		})
	}
}
