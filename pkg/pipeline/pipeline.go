// Package pipeline provides the file-to-file chart pipeline for csvplot.
//
// This package implements the complete Load → ComputeRanges → PlanLayout →
// DrawPanels → Present pipeline used by the CLI. Each stage runs once, in
// order; the first failing stage aborts the rest and its typed error is
// returned unchanged in code.
//
// # Usage
//
// The two entry points cover the common case:
//
//	err := pipeline.RenderCombined("Engine run", "run.csv", "run.png", 1280, 720)
//	err = pipeline.RenderSplit("Engine run", "run.csv", "run-split.png", 1280, 720)
//
// [Run] exposes the stage results and timings:
//
//	result, err := pipeline.Run(ctx, pipeline.Options{
//	    InputPath:  "run.csv",
//	    OutputPath: "run.png",
//	    Strategy:   layout.Split,
//	    Logger:     logger,
//	})
//	fmt.Println(result.Stats.Rows, result.Stats.DrawTime)
//
// The output file is only created by the Present stage, so a failure while
// loading or planning leaves nothing on disk.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/csvplot/pkg/errors"
	"github.com/matzehuels/csvplot/pkg/layout"
	"github.com/matzehuels/csvplot/pkg/render"
	"github.com/matzehuels/csvplot/pkg/table"
)

const (
	// DefaultTitle is the chart title used when none is given.
	DefaultTitle = "Plot From CSV"

	// DefaultWidth is the default image width in pixels.
	DefaultWidth uint = 1280

	// DefaultHeight is the default image height in pixels.
	DefaultHeight uint = 720

	// DefaultStrategy is the default layout strategy.
	DefaultStrategy = layout.Combined
)

// Options contains all configuration for one pipeline run.
type Options struct {
	InputPath  string
	OutputPath string

	Title    string
	Width    uint
	Height   uint
	Strategy layout.Strategy

	// Palette overrides the combined-chart series colors.
	Palette render.Palette

	// TitleFontSize overrides the title height in pixels.
	TitleFontSize float64

	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Option adjusts Options for the [RenderCombined] and [RenderSplit] entry
// points.
type Option func(*Options)

// WithLogger sets the pipeline logger.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithPalette sets the combined-chart series colors.
func WithPalette(p render.Palette) Option { return func(o *Options) { o.Palette = p } }

// WithTitleFontSize sets the title height in pixels.
func WithTitleFontSize(size float64) Option { return func(o *Options) { o.TitleFontSize = size } }

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the loaded input.
	Table *table.Table

	// Plan is the panel layout that was drawn.
	Plan layout.Plan

	// Scale holds the axis ranges shared by every panel.
	Scale render.Scale

	// OutputPath is the written PNG.
	OutputPath string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Rows        int
	Columns     int
	Panels      int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	DrawTime    time.Duration
	PresentTime time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.LayoutTime + s.DrawTime + s.PresentTime
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.InputPath == "" {
		return errs.New(errs.ErrCodeInvalidInput, "input path is required")
	}
	if o.OutputPath == "" {
		return errs.New(errs.ErrCodeInvalidInput, "output path is required")
	}
	if o.Strategy != layout.Combined && o.Strategy != layout.Split {
		return errs.New(errs.ErrCodeInvalidInput, "invalid strategy: %v", o.Strategy)
	}
	o.SetRenderDefaults()
	if err := errs.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults fills in the title, dimensions and logger.
func (o *Options) SetRenderDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Dimensions returns the requested image size.
func (o *Options) Dimensions() render.Dimensions {
	return render.Dimensions{Width: o.Width, Height: o.Height}
}

// composer builds the chart composer for these options.
func (o *Options) composer() *render.Composer {
	return render.NewComposer(
		render.WithPalette(o.Palette),
		render.WithTitleFontSize(o.TitleFontSize),
		render.WithLogger(o.Logger),
	)
}
