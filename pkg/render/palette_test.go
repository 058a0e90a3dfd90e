package render

import (
	"testing"

	"github.com/wcharczuk/go-chart/v2/drawing"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

func TestPaletteColorWraps(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		index int
		want  drawing.Color
	}{
		{0, colorBlack},
		{1, colorRed},
		{4, colorCyan},
		{5, colorBlack},
		{7, colorBlue},
		{-1, colorCyan},
	}
	for _, tt := range tests {
		if got := p.Color(tt.index); got != tt.want {
			t.Errorf("Color(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestEmptyPaletteColor(t *testing.T) {
	if got := (Palette{}).Color(3); got != colorBlack {
		t.Errorf("Color(3) on empty palette = %v, want black", got)
	}
}

func TestDefaultPaletteIsFresh(t *testing.T) {
	p := DefaultPalette()
	p[0] = colorGreen
	if DefaultPalette()[0] != colorBlack {
		t.Error("DefaultPalette() should return a fresh copy")
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000", "00f", " 1f77b4 "})
	if err != nil {
		t.Fatalf("ParsePalette() error: %v", err)
	}
	want := Palette{
		colorRed,
		colorBlue,
		{R: 0x1f, G: 0x77, B: 0xb4, A: 255},
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("p[%d] = %v, want %v", i, p[i], want[i])
		}
	}
}

func TestParsePaletteErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"empty", nil},
		{"bad length", []string{"#12345"}},
		{"not hex", []string{"#gggggg"}},
		{"one bad", []string{"#000000", "red"}},
		{"short not hex", []string{"#xyz"}},
		{"hex prefix", []string{"0x1f77"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePalette(tt.input)
			if !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("ParsePalette(%v) code = %v, want %v", tt.input, errs.GetCode(err), errs.ErrCodeInvalidConfig)
			}
		})
	}
}
