package cli

import (
	"os"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// validateInputPath checks that path names an existing .csv file.
func validateInputPath(path string) error {
	if err := errs.ValidateExtension(path, ".csv"); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.New(errs.ErrCodeInvalidPath, "file %s does not exist", path)
		}
		return errs.Wrap(errs.ErrCodeIO, err, "stat %s", path)
	}
	if info.IsDir() {
		return errs.New(errs.ErrCodeInvalidPath, "%s is a directory", path)
	}
	return nil
}

// resolveOutputPath returns output when set, checking its .png extension,
// or derives one from input by replacing its extension.
func resolveOutputPath(input, output string) (string, error) {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".png", nil
	}
	if err := errs.ValidateExtension(output, ".png"); err != nil {
		return "", err
	}
	return output, nil
}
