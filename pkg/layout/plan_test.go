package layout

import (
	"slices"
	"strings"
	"testing"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

func TestBuildCombined(t *testing.T) {
	tests := []struct {
		name        string
		columns     int
		wantColumns []int
	}{
		{"two columns", 2, []int{1}},
		{"engine run", 5, []int{1, 2, 3, 4}},
		{"wide", 9, []int{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Build(tt.columns, Combined)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if plan.PanelCount() != 1 {
				t.Errorf("PanelCount() = %d, want 1", plan.PanelCount())
			}
			if got := plan.Overview.Columns(); !slices.Equal(got, tt.wantColumns) {
				t.Errorf("Overview.Columns() = %v, want %v", got, tt.wantColumns)
			}
			if !slices.Equal(plan.RangeColumns, tt.wantColumns) {
				t.Errorf("RangeColumns = %v, want %v", plan.RangeColumns, tt.wantColumns)
			}
			if plan.XColumn != 0 {
				t.Errorf("XColumn = %d, want 0", plan.XColumn)
			}
		})
	}
}

func TestBuildCombinedTooNarrow(t *testing.T) {
	for _, n := range []int{0, 1} {
		_, err := Build(n, Combined)
		if !errs.Is(err, errs.ErrCodeLayout) {
			t.Errorf("Build(%d, Combined) code = %v, want %v", n, errs.GetCode(err), errs.ErrCodeLayout)
		}
	}
}

func TestBuildSplitEngineRun(t *testing.T) {
	plan, err := Build(5, Split)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if got := len(plan.Grid); got != 3 {
		t.Fatalf("len(Grid) = %d, want 3", got)
	}
	if got, want := plan.GridColumns(), []int{2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("GridColumns() = %v, want %v", got, want)
	}
	for i, col := range plan.GridColumns() {
		if col < 0 || col > 4 {
			t.Errorf("grid panel %d column %d outside [0, 4]", i, col)
		}
	}
	if got, want := plan.Overview.Columns(), []int{1, 2}; !slices.Equal(got, want) {
		t.Errorf("Overview.Columns() = %v, want %v", got, want)
	}
	if plan.Overview.Series[0].Annotated || !plan.Overview.Series[1].Annotated {
		t.Errorf("only the second overview series should be annotated, got %+v", plan.Overview.Series)
	}
	for i, g := range plan.Grid {
		if len(g.Series) != 1 || g.Series[0].Column != g.CaptionColumn {
			t.Errorf("grid panel %d = %+v, want one series captioned by its column", i, g)
		}
	}
}

func TestBuildSplitWindow(t *testing.T) {
	tests := []struct {
		columns int
		want    []int
	}{
		{3, []int{0}},
		{4, []int{1, 2}},
		{5, []int{2, 3, 4}},
	}
	for _, tt := range tests {
		plan, err := Build(tt.columns, Split)
		if err != nil {
			t.Fatalf("Build(%d, Split) error: %v", tt.columns, err)
		}
		if got := plan.GridColumns(); !slices.Equal(got, tt.want) {
			t.Errorf("Build(%d, Split).GridColumns() = %v, want %v", tt.columns, got, tt.want)
		}
		if len(plan.Grid) != tt.columns-2 {
			t.Errorf("Build(%d, Split) grid panels = %d, want %d", tt.columns, len(plan.Grid), tt.columns-2)
		}
	}
}

func TestBuildSplitInsufficientColumns(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		_, err := Build(n, Split)
		if !errs.Is(err, errs.ErrCodeInsufficientColumns) {
			t.Fatalf("Build(%d, Split) code = %v, want %v", n, errs.GetCode(err), errs.ErrCodeInsufficientColumns)
		}
		if !strings.Contains(err.Error(), "less than 3") {
			t.Errorf("Build(%d, Split) error = %q, want it to mention %q", n, err, "less than 3")
		}
	}
}

func TestBuildSplitWindowOutOfRange(t *testing.T) {
	for _, n := range []int{6, 7, 12} {
		_, err := Build(n, Split)
		if !errs.Is(err, errs.ErrCodeLayout) {
			t.Errorf("Build(%d, Split) code = %v, want %v", n, errs.GetCode(err), errs.ErrCodeLayout)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		input   string
		want    Strategy
		wantErr bool
	}{
		{"combined", Combined, false},
		{"", Combined, false},
		{"split", Split, false},
		{"grid", 0, true},
		{"Split", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStrategyString(t *testing.T) {
	if Combined.String() != "combined" || Split.String() != "split" {
		t.Errorf("String() = %q, %q", Combined, Split)
	}
	if got := Strategy(7).String(); got != "Strategy(7)" {
		t.Errorf("Strategy(7).String() = %q", got)
	}
}
