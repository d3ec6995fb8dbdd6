// Package histogram bins 2D positions into a dense density grid.
//
// The binning matches the classic histogram2d contract:
//
//   - nx×ny equal-width bins over [xmin, xmax] × [ymin, ymax];
//   - half-open bins [a, b) except the last, which is closed [a, b];
//   - points outside the range are ignored;
//   - without an explicit range the data min/max is used, so every
//     input point is counted exactly once;
//   - a degenerate axis (min == max) is widened to [min-0.5, max+0.5].
//
// Counts live in a row-major Grid (x-bin major). *Histogram2D satisfies
// gonum's plotter.GridXYZ, so it can be handed straight to
// plotter.NewHeatMap.
//
//	h, err := histogram.New(xs, ys, histogram.WithBins(200))
//	hm := plotter.NewHeatMap(h, pal)
package histogram
