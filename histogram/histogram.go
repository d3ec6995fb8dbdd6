// SPDX-License-Identifier: MIT

package histogram

import (
	"math"
)

// Histogram2D holds 2D bin counts and the bin edges on both axes.
//
// Counts.At(ix, iy) is the number of points with x in bin ix and y in bin iy.
// XEdges has nx+1 entries, YEdges ny+1; XEdges[0] and XEdges[nx] are the
// range bounds exactly.
type Histogram2D struct {
	Counts *Grid
	XEdges []float64
	YEdges []float64
}

// New bins the points (x[i], y[i]).
//
// Implementation:
//   - Stage 1 (Validate): equal, non-zero lengths and finite coordinates.
//   - Stage 2 (Range): explicit WithRange, else data min/max per axis;
//     a degenerate axis is widened by ±0.5; spans must be finite.
//   - Stage 3 (Edges): nx+1 / ny+1 evenly spaced edges.
//   - Stage 4 (Count): locate each point's bin; last bin is closed on the right.
//
// Errors:
//   - ErrEmptyInput, ErrLengthMismatch, ErrNaNInf.
//   - ErrRangeOverflow when max-min is not representable on either axis.
//
// Complexity: O(N + nx*ny) time, O(nx*ny) memory.
func New(x, y []float64, opts ...Option) (*Histogram2D, error) {
	// Stage 1 (Validate)
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) {
			return nil, ErrNaNInf
		}
	}
	o := gatherOptions(opts...)

	// Stage 2 (Range)
	xr, yr := o.xr, o.yr
	if !o.hasRange {
		xr, yr = dataRange(x), dataRange(y)
	}
	xr, yr = widen(xr), widen(yr)
	if !finite(xr.Width()) || !finite(yr.Width()) {
		return nil, ErrRangeOverflow
	}

	// Stage 3 (Edges)
	counts, err := NewGrid(o.nx, o.ny)
	if err != nil {
		return nil, err
	}
	h := &Histogram2D{
		Counts: counts,
		XEdges: edges(xr, o.nx),
		YEdges: edges(yr, o.ny),
	}

	// Stage 4 (Count)
	for i := range x {
		ix, ok := locate(h.XEdges, x[i])
		if !ok {
			continue
		}
		iy, ok := locate(h.YEdges, y[i])
		if !ok {
			continue
		}
		if err := h.Counts.Inc(ix, iy); err != nil {
			return nil, err
		}
	}

	return h, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// dataRange returns [min, max] of a non-empty slice.
func dataRange(v []float64) Range {
	r := Range{Min: v[0], Max: v[0]}
	for _, e := range v[1:] {
		if e < r.Min {
			r.Min = e
		}
		if e > r.Max {
			r.Max = e
		}
	}

	return r
}

func widen(r Range) Range {
	if r.Min == r.Max {
		return Range{Min: r.Min - degeneratePad, Max: r.Max + degeneratePad}
	}

	return r
}

// edges returns n+1 evenly spaced edges with exact end points.
func edges(r Range, n int) []float64 {
	e := make([]float64, n+1)
	step := r.Width() / float64(n)
	for i := range e {
		e[i] = r.Min + float64(i)*step
	}
	e[n] = r.Max

	return e
}

// locate returns the bin holding v, or false when v is outside the edges.
// Bins are [e[i], e[i+1]) except the last, which includes its right edge.
func locate(e []float64, v float64) (int, bool) {
	n := len(e) - 1
	lo, hi := e[0], e[n]
	if v < lo || v > hi {
		return 0, false
	}
	if v == hi {
		return n - 1, true
	}

	var i int
	if t := (v - lo) / (hi - lo); t > 0 {
		i = int(t * float64(n))
	}
	if i >= n {
		i = n - 1
	}
	// floating-point step can land one bin off; settle against the edges
	for i > 0 && v < e[i] {
		i--
	}
	for i < n-1 && v >= e[i+1] {
		i++
	}

	return i, true
}

// Bins returns the number of x and y bins.
func (h *Histogram2D) Bins() (nx, ny int) {
	return h.Counts.Dims()
}

// Extent returns the outer edges: xmin, xmax, ymin, ymax.
func (h *Histogram2D) Extent() (xmin, xmax, ymin, ymax float64) {
	return h.XEdges[0], h.XEdges[len(h.XEdges)-1], h.YEdges[0], h.YEdges[len(h.YEdges)-1]
}

// Total returns the number of binned points.
func (h *Histogram2D) Total() float64 {
	return h.Counts.Sum()
}

// Dims implements plotter.GridXYZ: c indexes x bins, r indexes y bins.
func (h *Histogram2D) Dims() (c, r int) {
	return h.Counts.Dims()
}

// Z implements plotter.GridXYZ.
func (h *Histogram2D) Z(c, r int) float64 {
	return h.Counts.at(c, r)
}

// X implements plotter.GridXYZ and returns the centre of x bin c.
func (h *Histogram2D) X(c int) float64 {
	return h.XEdges[c]/2 + h.XEdges[c+1]/2
}

// Y implements plotter.GridXYZ and returns the centre of y bin r.
func (h *Histogram2D) Y(r int) float64 {
	return h.YEdges[r]/2 + h.YEdges[r+1]/2
}
