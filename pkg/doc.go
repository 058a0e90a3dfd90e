// Package pkg provides the core libraries for csvplot chart rendering.
//
// # Overview
//
// csvplot turns a CSV table of numeric measurements into a PNG line chart.
// The first column is the independent variable; every other column is drawn
// as a line against it. The pkg directory is organized into three areas:
//
//  1. Data - [table] loading and [axis] range folding
//  2. Drawing - [layout] panel planning, [render] composition, [fonts]
//  3. Orchestration - [pipeline] (load → layout → draw → present)
//
// # Architecture
//
// The typical data flow through csvplot:
//
//	CSV file
//	    ↓
//	[table] package (header + numeric rows)
//	    ↓
//	[axis] package (shared x and y ranges)
//	    ↓
//	[layout] package (combined or split panel plan)
//	    ↓
//	[render] package (go-chart panels on one surface)
//	    ↓
//	PNG output
//
// # Quick Start
//
// Render a combined chart with the defaults:
//
//	import "github.com/matzehuels/csvplot/pkg/pipeline"
//
//	err := pipeline.RenderCombined("Engine run", "run.csv", "run.png", 1280, 720)
//
// Or drive the stages yourself:
//
//	t, _ := table.Load("run.csv")
//	plan, _ := layout.Build(t.ColumnCount(), layout.Split)
//	scale, _ := render.ComputeScale(t, plan)
//	img, _ := render.NewComposer().Render("Engine run", t, plan, scale,
//	    render.Dimensions{Width: 1280, Height: 720})
//	_ = render.Present(img, "run-split.png")
//
// # Main Packages
//
// [table] - An immutable numeric table read from CSV. Every row has exactly
// as many fields as the header; every field parses as a float64.
//
// [axis] - Closed value ranges. Column ranges always include zero so charts
// share a common baseline.
//
// [layout] - Strategies and panel plans. The combined strategy draws one
// panel; the split strategy draws an overview of columns 1 and 2 above a
// row of single-column panels.
//
// [render] - Draws a plan with go-chart into a single RGBA surface with a
// centred title, and writes it as PNG.
//
// [pipeline] - The file-to-file pipeline used by the CLI, with per-stage
// timings and observability hooks.
//
// ## Supporting Packages
//
// [errors] - Typed errors with stable codes for every failure kind.
//
// [observability] - Pipeline stage hooks, no-ops by default.
//
// [fonts] - The embedded chart font and sized faces for the title.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/render/...     # Specific package
//
// [table]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/table
// [axis]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/axis
// [layout]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/observability
// [fonts]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/csvplot/pkg/buildinfo
package pkg
