// Package render composes a gradient-field figure with gonum/plot and
// encodes it to disk.
//
// A Figure stacks three layers on one set of axes:
//
//	heatmap  - 2D histogram of positions (Hot colour map)
//	scatter  - one glyph per position
//	quiver   - one unit arrow per gradient, coloured by magnitude (Cool)
//
// and draws a vertical colorbar for each colour-mapped layer to the right
// of the axes. Raster formats (png, jpg, tif) honour Options.DPI; svg and pdf
// go through gonum's vector backends. The heatmap is always one rasterized
// image, so every format embeds it at bin resolution.
//
//	fig, err := render.NewPlot(f, h, render.DefaultOptions())
//	if err != nil { ... }
//	_, err = fig.Save("full_visualization.png")
package render
