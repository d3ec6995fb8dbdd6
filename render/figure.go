package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	// vector backends register their formats with draw.NewFormattedCanvas
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/histogram"
)

// Legend entries.
const (
	legendCells    = "Cells"
	legendGradient = "Gradient"
)

// Figure is a composed, ready-to-encode gradient-field plot.
type Figure struct {
	opts Options
	main *plot.Plot
	bars []*plot.Plot

	// data ranges before aspect correction; Draw starts from these each time
	xr, yr histogram.Range
}

// NewPlot composes the enabled layers over f and h.
// h may be nil when the heatmap layer is disabled.
//
// Errors:
//   - ErrBadOptions from opts.Validate.
//   - ErrNoData for an empty field or a nil histogram with the heatmap on.
//   - ErrRangeOverflow when the x or y span is not representable.
//   - Scatter construction errors from gonum/plot.
func NewPlot(f *field.Field, h *histogram.Histogram2D, opts Options) (*Figure, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if f.Len() == 0 {
		return nil, ErrNoData
	}
	b, err := f.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if math.IsInf(b.Width(), 0) || math.IsInf(b.Height(), 0) {
		return nil, ErrRangeOverflow
	}
	if opts.Layers.Heatmap && h == nil {
		return nil, fmt.Errorf("%w: heatmap enabled without a histogram", ErrNoData)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	fig := &Figure{opts: opts, main: p}

	if opts.Layers.Heatmap {
		hot := Hot()
		hot.SetMax(math.Max(h.Counts.Max(), 1))
		hm := plotter.NewHeatMap(h, hot.Palette(opts.PaletteSize))
		hm.Min, hm.Max = hot.Min(), hot.Max()
		// one image instead of nx*ny anti-aliased cells, which leave seams
		hm.Rasterized = true
		p.Add(hm)
		fig.addBar(hot, opts.DensityLabel)
	}

	if opts.Layers.Scatter {
		xys := make(plotter.XYs, f.Len())
		for i := range xys {
			xys[i] = plotter.XY{X: f.X[i], Y: f.Y[i]}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("render: scatter: %w", err)
		}
		s.GlyphStyle.Color = opts.PointColor
		s.GlyphStyle.Radius = vg.Points(opts.PointRadius)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		if opts.Legend {
			p.Legend.Add(legendCells, s)
		}
	}

	if opts.Layers.Quiver {
		cool := Cool()
		lo, hi := floats.Min(f.Mag), floats.Max(f.Mag)
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
		cool.SetMin(lo)
		cool.SetMax(hi)

		ux, uy := f.Unit()
		q, err := NewQuiver(f.X, f.Y, ux, uy, f.Mag, cool)
		if err != nil {
			return nil, err
		}
		q.Scale, q.Width = opts.QuiverScale, opts.QuiverWidth
		p.Add(q)
		if opts.Legend {
			p.Legend.Add(legendGradient, q)
		}
		fig.addBar(cool, opts.MagnitudeLabel)
	}

	fig.xr = histogram.Range{Min: p.X.Min, Max: p.X.Max}
	fig.yr = histogram.Range{Min: p.Y.Min, Max: p.Y.Max}

	return fig, nil
}

// addBar appends a vertical colorbar plot for cm when colorbars are on.
func (fig *Figure) addBar(cm palette.ColorMap, label string) {
	if !fig.opts.ColorBars {
		return
	}
	cb := plot.New()
	cb.HideX()
	cb.Y.Label.Text = label
	cb.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: fig.opts.PaletteSize})
	fig.bars = append(fig.bars, cb)
}

// Plot returns the main axes for callers that want to add annotations.
func (fig *Figure) Plot() *plot.Plot {
	return fig.main
}

// ColorBars returns the number of colorbars drawn beside the axes.
func (fig *Figure) ColorBars() int {
	return len(fig.bars)
}

// Draw renders the figure onto c: axes on the left, colorbars on the right.
func (fig *Figure) Draw(c draw.Canvas) {
	bw := vg.Length(fig.opts.ColorBarWidth) * vg.Inch
	nb := vg.Length(len(fig.bars))

	axes := draw.Crop(c, 0, -bw*nb, 0, 0)
	fig.main.X.Min, fig.main.X.Max = fig.xr.Min, fig.xr.Max
	fig.main.Y.Min, fig.main.Y.Max = fig.yr.Min, fig.yr.Max
	if fig.opts.EqualAspect {
		fig.equalize(axes)
	}
	fig.main.Draw(axes)

	width := c.Max.X - c.Min.X
	for i, b := range fig.bars {
		left := width - bw*(nb-vg.Length(i))
		right := -bw * (nb - vg.Length(i) - 1)
		b.Draw(draw.Crop(c, left, right, 0, 0))
	}
}

// equalize widens one axis so a data unit has the same length on x and y.
func (fig *Figure) equalize(axes draw.Canvas) {
	da := fig.main.DataCanvas(axes)
	w, h := float64(da.Max.X-da.Min.X), float64(da.Max.Y-da.Min.Y)
	if w <= 0 || h <= 0 {
		return
	}
	dx, dy := fig.xr.Width(), fig.yr.Width()
	if dx <= 0 || dy <= 0 {
		return
	}

	unit := math.Max(dx/w, dy/h)
	cx, cy := (fig.xr.Min+fig.xr.Max)/2, (fig.yr.Min+fig.yr.Max)/2
	fig.main.X.Min, fig.main.X.Max = cx-unit*w/2, cx+unit*w/2
	fig.main.Y.Min, fig.main.Y.Max = cy-unit*h/2, cy+unit*h/2
}

// Encode draws the figure and writes it to w in format
// (png, jpg, jpeg, tif, tiff, svg, pdf).
func (fig *Figure) Encode(w io.Writer, format string) (int64, error) {
	width, height := fig.opts.size()

	switch format = strings.ToLower(format); format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		img := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(fig.opts.DPI))
		fig.Draw(draw.New(img))
		var wt io.WriterTo
		switch format {
		case "png":
			wt = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			wt = vgimg.JpegCanvas{Canvas: img}
		default:
			wt = vgimg.TiffCanvas{Canvas: img}
		}
		return wt.WriteTo(w)

	case "svg", "pdf":
		vc, err := draw.NewFormattedCanvas(width, height, format)
		if err != nil {
			return 0, fmt.Errorf("render: %s canvas: %w", format, err)
		}
		if format == "pdf" {
			vc = pdfCanvas{vc}
		}
		fig.Draw(draw.New(vc))
		return vc.WriteTo(w)
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes the figure to path, choosing the format from its extension.
// The image is written to a temporary file in the same directory and
// renamed into place, so a failed render leaves no partial file.
func (fig *Figure) Save(path string) (n int64, err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if n, err = fig.Encode(tmp, format); err != nil {
		return 0, err
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}

	return n, nil
}

// pdfCanvas hands images to the PDF backend as 8-bit NRGBA. The heatmap
// and colorbars are drawn as 16-bit images, which its PNG reader rejects.
type pdfCanvas struct {
	vg.CanvasWriterTo
}

func (c pdfCanvas) DrawImage(rect vg.Rectangle, img image.Image) {
	b := img.Bounds()
	dst := image.NewNRGBA(b)
	xdraw.Draw(dst, b, img, b.Min, xdraw.Src)
	c.CanvasWriterTo.DrawImage(rect, dst)
}
