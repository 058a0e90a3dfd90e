// Package render draws layout plans into raster images.
//
// # Overview
//
// A [Composer] turns a table and a [layout.Plan] into an *image.RGBA of
// exactly the requested [Dimensions]. The surface is filled white, the title
// is centred in a band across the top, and each planned panel is drawn by
// the go-chart backend into the rectangle [layout.Plan.Regions] assigns it.
//
//	c := render.NewComposer(render.WithPalette(p))
//	img, err := c.RenderSplit("Engine run", t, render.Dimensions{Width: 1280, Height: 720})
//	if err != nil {
//	    return err
//	}
//	err = render.Present(img, "engine.png")
//
// # Panels
//
// Combined charts draw one line per dependent column, colored by
// [Palette.Color] with the column index, with a legend. The split overview
// draws columns 1 and 2 in red and blue and marks every point of the second
// series with its coordinates. Grid panels carry the column name as caption
// and a single blue line. Every panel of a chart shares one [Scale].
//
// Backend failures are reported as RENDER_ERROR naming the panel; write
// failures in [Present] as PRESENT_ERROR.
package render
