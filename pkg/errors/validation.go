package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateExtension checks that path is a usable file path ending in ext
// (compared case-insensitively, with or without the leading dot).
func ValidateExtension(path, ext string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	want := "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	if got := strings.ToLower(filepath.Ext(path)); got != want {
		return New(ErrCodeInvalidPath, "file %s is not a %s file", path, strings.TrimPrefix(want, "."))
	}
	return nil
}

// maxDimension bounds a single image side to keep surface allocation sane.
const maxDimension = 16384

// ValidateDimensions checks that an output image size is drawable.
func ValidateDimensions(width, height uint) error {
	if width == 0 || height == 0 {
		return New(ErrCodeInvalidInput, "image dimensions must be positive, got %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidInput, "image dimensions too large (max %d per side), got %dx%d", maxDimension, width, height)
	}
	return nil
}
