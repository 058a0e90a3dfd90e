package errors

import (
	"testing"
)

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		ext     string
		wantErr bool
	}{
		{"csv", "data.csv", "csv", false},
		{"csv with dot", "data.csv", ".csv", false},
		{"uppercase", "DATA.CSV", "csv", false},
		{"nested", "runs/2024/data.csv", "csv", false},
		{"png", "out.png", "png", false},

		{"empty", "", "csv", true},
		{"wrong ext", "data.txt", "csv", true},
		{"no ext", "data", "csv", true},
		{"ext as suffix only", "datacsv", "csv", true},
		{"png not csv", "plot.png", "csv", true},
		{"null byte", "data\x00.csv", "csv", true},
		{"newline", "da\nta.csv", "csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.path, tt.ext)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q, %q) error = %v, wantErr %v", tt.path, tt.ext, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateExtension(%q, %q) code = %v, want %v", tt.path, tt.ext, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint
		wantErr       bool
	}{
		{"default", 1280, 720, false},
		{"square", 1, 1, false},
		{"max", maxDimension, maxDimension, false},

		{"zero width", 0, 720, true},
		{"zero height", 1280, 0, true},
		{"too wide", maxDimension + 1, 720, true},
		{"too tall", 1280, maxDimension + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateDimensions(%d, %d) code = %v, want %v", tt.width, tt.height, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
