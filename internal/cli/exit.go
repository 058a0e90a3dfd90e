package cli

import (
	"context"
	"errors"

	errs "github.com/matzehuels/csvplot/pkg/errors"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitUsage       = 2 // invalid input, path or config
	ExitData        = 3 // input could not be read or parsed
	ExitLayout      = 4 // table shape does not fit the requested chart
	ExitRender      = 5 // drawing or writing the image failed
	ExitInterrupted = 130
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidPath, errs.ErrCodeInvalidConfig:
		return ExitUsage
	case errs.ErrCodeIO, errs.ErrCodeSchema, errs.ErrCodeParse:
		return ExitData
	case errs.ErrCodeInsufficientColumns, errs.ErrCodeLayout:
		return ExitLayout
	case errs.ErrCodeRender, errs.ErrCodePresent:
		return ExitRender
	default:
		return ExitFailure
	}
}
