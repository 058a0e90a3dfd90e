package cli

import (
	"io"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/csvplot/pkg/errors"
	"github.com/matzehuels/csvplot/pkg/layout"
	"github.com/matzehuels/csvplot/pkg/pipeline"
	"github.com/matzehuels/csvplot/pkg/render"
	"github.com/matzehuels/csvplot/pkg/table"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	output string // output PNG path, derived from the input when empty
	split  bool   // overview panel plus one panel per column
	title  string // chart title
	width  uint   // image width in pixels
	height uint   // image height in pixels
	config string // TOML config file
	list   bool   // print the table rows after rendering
}

// genCommand creates the gen command, which renders a CSV file as a chart.
func (c *CLI) genCommand() *cobra.Command {
	opts := genOpts{
		title:  pipeline.DefaultTitle,
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "gen <input.csv>",
		Short: "Render a CSV file as a PNG line chart",
		Long: `Render a CSV file as a PNG line chart.

The first column is plotted on the x axis and every other column as a line
against it. With --split the chart shows columns 1 and 2 in an overview
panel and the remaining columns in a row of panels below it; split charts
need at least three columns.`,
		Example: `  csvplot gen run.csv
  csvplot gen run.csv --split -o run-split.png -n "Dyno run"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGen(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file (default: input with .png extension)")
	cmd.Flags().BoolVarP(&opts.split, "split", "s", false, "draw an overview panel plus one panel per column")
	cmd.Flags().StringVarP(&opts.title, "name", "n", opts.title, "chart title")
	cmd.Flags().UintVarP(&opts.width, "width", "W", opts.width, "image width in pixels")
	cmd.Flags().UintVarP(&opts.height, "height", "H", opts.height, "image height in pixels")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: $XDG_CONFIG_HOME/csvplot/config.toml)")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "print the table rows after rendering")

	cmd.ValidArgsFunction = completeFileExt(1, "csv")
	registerFileFlagCompletion(cmd, "output", "png")
	registerFileFlagCompletion(cmd, "config", "toml")

	return cmd
}

func (c *CLI) runGen(cmd *cobra.Command, input string, opts *genOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := validateInputPath(input); err != nil {
		return err
	}
	output, err := resolveOutputPath(input, opts.output)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}

	popts, err := opts.pipelineOptions(cmd.Flags().Changed, cfg)
	if err != nil {
		return err
	}
	popts.InputPath = input
	popts.OutputPath = output
	popts.Logger = logger

	prog := newProgress(logger)
	result, err := pipeline.Run(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("Rendered chart")

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s chart", popts.Strategy)
	printFile(out, result.OutputPath)
	printStats(out, result.Stats.Rows, result.Stats.Columns, result.Stats.Panels)
	if result.Stats.Rows == 0 {
		printWarning(out, "%s has no data rows", input)
	}
	if opts.list {
		printRows(out, result.Table, 0)
	}
	return nil
}

// pipelineOptions merges flags and config. A flag set on the command line
// wins over the config file, which wins over the flag default.
func (o *genOpts) pipelineOptions(changed func(string) bool, cfg Config) (pipeline.Options, error) {
	popts := pipeline.Options{
		Title:         o.title,
		Width:         o.width,
		Height:        o.height,
		Strategy:      layout.Combined,
		TitleFontSize: cfg.TitleFontSize,
	}
	if !changed("name") && cfg.Title != "" {
		popts.Title = cfg.Title
	}
	if !changed("width") && cfg.Width != 0 {
		popts.Width = cfg.Width
	}
	if !changed("height") && cfg.Height != 0 {
		popts.Height = cfg.Height
	}
	split := o.split
	if !changed("split") {
		split = split || cfg.Split
	}
	if split {
		popts.Strategy = layout.Split
	}
	if len(cfg.Palette) > 0 {
		p, err := render.ParsePalette(cfg.Palette)
		if err != nil {
			return pipeline.Options{}, err
		}
		popts.Palette = p
	}
	if err := errs.ValidateDimensions(popts.Width, popts.Height); err != nil {
		return pipeline.Options{}, err
	}
	return popts, nil
}

// printRows prints up to limit rows of t; limit <= 0 prints all.
func printRows(w io.Writer, t *table.Table, limit int) {
	i := 0
	for row := range table.ListRows(t) {
		if limit > 0 && i >= limit {
			break
		}
		i++
		printRow(w, i, row)
	}
}
