package render

import (
	"bufio"
	"image"
	"image/png"
	"os"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// Present encodes img as PNG and writes it to path. The file is created,
// written through a buffer, flushed and closed; a failure at any step is a
// PRESENT_ERROR. A partially written file may remain on failure.
func Present(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodePresent, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrCodePresent, cerr, "close %s", path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		return errs.Wrap(errs.ErrCodePresent, err, "encode %s", path)
	}
	if err := w.Flush(); err != nil {
		return errs.Wrap(errs.ErrCodePresent, err, "flush %s", path)
	}
	return nil
}
