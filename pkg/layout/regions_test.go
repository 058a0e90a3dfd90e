package layout

import (
	"image"
	"testing"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

func TestRegionsCombined(t *testing.T) {
	plan, err := Build(5, Combined)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	area := image.Rect(0, 60, 1280, 720)
	r, err := plan.Regions(area)
	if err != nil {
		t.Fatalf("Regions() error: %v", err)
	}
	if r.Overview != area {
		t.Errorf("Overview = %v, want %v", r.Overview, area)
	}
	if len(r.Cells) != 0 {
		t.Errorf("len(Cells) = %d, want 0", len(r.Cells))
	}
}

func TestRegionsSplit(t *testing.T) {
	plan, err := Build(5, Split)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	area := image.Rect(0, 60, 1280, 720)
	r, err := plan.Regions(area)
	if err != nil {
		t.Fatalf("Regions() error: %v", err)
	}

	if want := image.Rect(0, 60, 1280, 316); r.Overview != want {
		t.Errorf("Overview = %v, want %v", r.Overview, want)
	}
	if len(r.Cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(r.Cells))
	}

	want := []image.Rectangle{
		image.Rect(0, 316, 426, 720),
		image.Rect(426, 316, 852, 720),
		image.Rect(852, 316, 1280, 720),
	}
	for i := range want {
		if r.Cells[i] != want[i] {
			t.Errorf("Cells[%d] = %v, want %v", i, r.Cells[i], want[i])
		}
	}
}

func TestRegionsSplitTooSmall(t *testing.T) {
	plan, err := Build(5, Split)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		name string
		area image.Rectangle
	}{
		{"empty", image.Rectangle{}},
		{"shorter than overview", image.Rect(0, 0, 800, 200)},
		{"no room below overview", image.Rect(0, 0, 800, OverviewHeight+4)},
		{"too narrow", image.Rect(0, 0, 30, 600)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plan.Regions(tt.area)
			if !errs.Is(err, errs.ErrCodeLayout) {
				t.Errorf("Regions(%v) code = %v, want %v", tt.area, errs.GetCode(err), errs.ErrCodeLayout)
			}
		})
	}
}

func TestSplitEvenlyCoversArea(t *testing.T) {
	r := image.Rect(10, 0, 1011, 50)
	for n := 1; n <= 7; n++ {
		cells := SplitEvenly(r, n)
		if len(cells) != n {
			t.Fatalf("SplitEvenly(%d) returned %d cells", n, len(cells))
		}
		if cells[0].Min.X != r.Min.X || cells[n-1].Max.X != r.Max.X {
			t.Errorf("SplitEvenly(%d) spans %d..%d, want %d..%d", n, cells[0].Min.X, cells[n-1].Max.X, r.Min.X, r.Max.X)
		}
		for i := 1; i < n; i++ {
			if cells[i].Min.X != cells[i-1].Max.X {
				t.Errorf("SplitEvenly(%d) gap between cells %d and %d", n, i-1, i)
			}
		}
	}
	if cells := SplitEvenly(r, 0); cells != nil {
		t.Errorf("SplitEvenly(0) = %v, want nil", cells)
	}
}

func TestSplitVertically(t *testing.T) {
	r := image.Rect(0, 100, 50, 400)
	upper, lower := SplitVertically(r, 256)
	if upper != image.Rect(0, 100, 50, 356) || lower != image.Rect(0, 356, 50, 400) {
		t.Errorf("SplitVertically() = %v, %v", upper, lower)
	}

	upper, lower = SplitVertically(r, 1000)
	if upper != r || !lower.Empty() {
		t.Errorf("SplitVertically(clamped) = %v, %v", upper, lower)
	}
}
