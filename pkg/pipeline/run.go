package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	errs "github.com/matzehuels/csvplot/pkg/errors"
	"github.com/matzehuels/csvplot/pkg/layout"
	"github.com/matzehuels/csvplot/pkg/observability"
	"github.com/matzehuels/csvplot/pkg/render"
	"github.com/matzehuels/csvplot/pkg/table"
)

// RenderCombined loads the CSV at inputPath and writes a single-panel chart
// of all dependent columns to outputPath.
func RenderCombined(title, inputPath, outputPath string, width, height uint, opts ...Option) error {
	return renderFile(layout.Combined, title, inputPath, outputPath, width, height, opts)
}

// RenderSplit loads the CSV at inputPath and writes an overview panel plus a
// row of per-column panels to outputPath. Tables with fewer than three
// columns fail with INSUFFICIENT_COLUMNS and no file is written.
func RenderSplit(title, inputPath, outputPath string, width, height uint, opts ...Option) error {
	return renderFile(layout.Split, title, inputPath, outputPath, width, height, opts)
}

func renderFile(s layout.Strategy, title, inputPath, outputPath string, width, height uint, opts []Option) error {
	if err := errs.ValidateDimensions(width, height); err != nil {
		return err
	}
	o := Options{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Title:      title,
		Width:      width,
		Height:     height,
		Strategy:   s,
	}
	for _, opt := range opts {
		opt(&o)
	}
	_, err := Run(context.Background(), o)
	return err
}

// Run executes the complete pipeline. The context is checked between
// stages; a stage in progress always runs to completion.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	hooks := observability.Pipeline()
	result := &Result{OutputPath: opts.OutputPath}

	// Stage 1: Load
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	hooks.OnLoadStart(ctx, opts.InputPath)
	t, err := table.Load(opts.InputPath)
	result.Stats.LoadTime = time.Since(start)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.InputPath, 0, 0, result.Stats.LoadTime, err)
		return nil, fmt.Errorf("load: %w", err)
	}
	hooks.OnLoadComplete(ctx, opts.InputPath, t.RowCount(), t.ColumnCount(), result.Stats.LoadTime, nil)
	result.Table = t
	result.Stats.Rows = t.RowCount()
	result.Stats.Columns = t.ColumnCount()

	logger.Info("loaded table",
		"rows", t.RowCount(),
		"columns", t.ColumnCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Plan the layout and compute the shared ranges
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	hooks.OnLayoutStart(ctx, opts.Strategy.String(), t.ColumnCount())
	plan, scale, err := planLayout(t, opts.Strategy)
	result.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, opts.Strategy.String(), plan.PanelCount(), result.Stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Plan = plan
	result.Scale = scale
	result.Stats.Panels = plan.PanelCount()

	logger.Info("planned layout",
		"strategy", opts.Strategy,
		"panels", plan.PanelCount(),
		"x", scale.X,
		"y", scale.Y,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Draw
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	hooks.OnDrawStart(ctx, int(opts.Width), int(opts.Height))
	img, err := draw(opts, t, plan, scale)
	result.Stats.DrawTime = time.Since(start)
	hooks.OnDrawComplete(ctx, int(opts.Width), int(opts.Height), result.Stats.DrawTime, err)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}

	logger.Info("drew chart",
		"width", opts.Width,
		"height", opts.Height,
		"duration", result.Stats.DrawTime)

	// Stage 4: Present
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	hooks.OnPresentStart(ctx, opts.OutputPath)
	err = render.Present(img, opts.OutputPath)
	result.Stats.PresentTime = time.Since(start)
	hooks.OnPresentComplete(ctx, opts.OutputPath, result.Stats.PresentTime, err)
	if err != nil {
		return nil, fmt.Errorf("present: %w", err)
	}

	logger.Info("wrote image",
		"path", opts.OutputPath,
		"duration", result.Stats.PresentTime)

	return result, nil
}

// planLayout builds the plan and its shared scale.
func planLayout(t *table.Table, s layout.Strategy) (layout.Plan, render.Scale, error) {
	plan, err := layout.Build(t.ColumnCount(), s)
	if err != nil {
		return layout.Plan{}, render.Scale{}, err
	}
	scale, err := render.ComputeScale(t, plan)
	if err != nil {
		return layout.Plan{}, render.Scale{}, err
	}
	return plan, scale, nil
}

func draw(opts Options, t *table.Table, plan layout.Plan, scale render.Scale) (*image.RGBA, error) {
	return opts.composer().Render(opts.Title, t, plan, scale, opts.Dimensions())
}
