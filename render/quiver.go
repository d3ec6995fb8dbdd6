package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Arrow head proportions, in shaft widths.
const (
	headLength    = 5.0
	headHalfWidth = 1.5
)

// Quiver draws one arrow per sample: tail at XYs[i], direction (U[i], V[i])
// in screen space, colour ColorMap.At(Mag[i]).
//
// Arrow length is the axes width divided by Scale for a unit vector; the
// shaft is Width times the axes width. Vectors of zero length draw nothing.
type Quiver struct {
	XYs      plotter.XYs
	U, V     []float64
	Mag      []float64
	ColorMap palette.ColorMap
	Scale    float64
	Width    float64
}

var (
	_ plot.Plotter     = (*Quiver)(nil)
	_ plot.DataRanger  = (*Quiver)(nil)
	_ plot.Thumbnailer = (*Quiver)(nil)
)

// NewQuiver builds a Quiver over equal-length columns.
func NewQuiver(x, y, u, v, mag []float64, cm palette.ColorMap) (*Quiver, error) {
	n := len(x)
	if len(y) != n || len(u) != n || len(v) != n || len(mag) != n {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrNoData
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	return &Quiver{
		XYs:      xys,
		U:        u,
		V:        v,
		Mag:      mag,
		ColorMap: cm,
		Scale:    DefaultQuiverScale,
		Width:    DefaultQuiverWidth,
	}, nil
}

// Plot implements plot.Plotter.
func (q *Quiver) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	axes := c.Max.X - c.Min.X
	length := axes / vg.Length(q.Scale)
	shaft := axes * vg.Length(q.Width)

	for i, xy := range q.XYs {
		tail := vg.Point{X: trX(xy.X), Y: trY(xy.Y)}
		pts := arrow(tail, q.U[i], q.V[i], length, shaft)
		if pts == nil {
			continue
		}
		c.FillPolygon(q.colorAt(q.Mag[i]), pts)
	}
}

func (q *Quiver) colorAt(v float64) color.Color {
	if q.ColorMap == nil {
		return color.Black
	}
	col, err := q.ColorMap.At(v)
	if err != nil {
		// clamp out-of-range magnitudes to the map's ends
		col, err = q.ColorMap.At(math.Max(q.ColorMap.Min(), math.Min(q.ColorMap.Max(), v)))
		if err != nil {
			return color.Black
		}
	}

	return col
}

// DataRange implements plot.DataRanger over the arrow tails.
func (q *Quiver) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(q.XYs)
}

// Thumbnail implements plot.Thumbnailer with a horizontal arrow in the
// middle colour of the map.
func (q *Quiver) Thumbnail(c *draw.Canvas) {
	w := c.Max.X - c.Min.X
	tail := vg.Point{X: c.Min.X, Y: (c.Min.Y + c.Max.Y) / 2}
	col := color.Color(color.Black)
	if q.ColorMap != nil {
		col = q.colorAt((q.ColorMap.Min() + q.ColorMap.Max()) / 2)
	}
	c.FillPolygon(col, arrow(tail, 1, 0, w, w/headLength/2))
}

// arrow returns the outline of an arrow from tail along (u, v), or nil for
// a zero direction. Heads longer than the arrow shrink to fit.
func arrow(tail vg.Point, u, v float64, length, shaft vg.Length) []vg.Point {
	n := math.Hypot(u, v)
	if n == 0 || length <= 0 {
		return nil
	}
	d := vg.Point{X: vg.Length(u / n), Y: vg.Length(v / n)}
	norm := vg.Point{X: -d.Y, Y: d.X}

	hl := headLength * shaft
	hw := headHalfWidth * shaft
	if hl > length {
		hw *= length / hl
		hl = length
	}
	sw := shaft / 2
	tip := tail.Add(d.Scale(length))
	base := tail.Add(d.Scale(length - hl))

	return []vg.Point{
		tail.Add(norm.Scale(sw)),
		base.Add(norm.Scale(sw)),
		base.Add(norm.Scale(hw)),
		tip,
		base.Sub(norm.Scale(hw)),
		base.Sub(norm.Scale(sw)),
		tail.Sub(norm.Scale(sw)),
	}
}
