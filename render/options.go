package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
)

// Defaults reproduce the reference figure: 12×10 in at 300 dpi.
const (
	DefaultWidth          = 12.0 // inches
	DefaultHeight         = 10.0 // inches
	DefaultDPI            = 300
	DefaultTitle          = "Gradient Field with Cell Density and Positions"
	DefaultDensityLabel   = "Cell Density (from bin count)"
	DefaultMagnitudeLabel = "Gradient Magnitude"
	DefaultQuiverScale    = 30
	DefaultQuiverWidth    = 0.002
	DefaultPointRadius    = 1.1 // points; a 4 pt² marker
	DefaultPaletteSize    = 256
	DefaultColorBarWidth  = 1.2 // inches per colorbar
)

// Layers selects which layers a Figure draws.
type Layers struct {
	Heatmap bool
	Scatter bool
	Quiver  bool
}

// Options controls figure composition and encoding.
//
// Fields:
//   - Width, Height - canvas size in inches.
//   - DPI           - raster resolution (png/jpg/tif only).
//   - QuiverScale   - unit arrows are 1/QuiverScale of the axes width long.
//   - QuiverWidth   - shaft width as a fraction of the axes width.
//   - PointRadius   - scatter glyph radius in points.
//   - PaletteSize   - colours sampled from the density map.
//   - ColorBarWidth - inches reserved per colorbar on the right.
type Options struct {
	Width, Height float64
	DPI           int

	Title          string
	XLabel, YLabel string
	DensityLabel   string
	MagnitudeLabel string

	PointRadius float64
	PointColor  color.Color
	QuiverScale float64
	QuiverWidth float64
	PaletteSize int

	Layers        Layers
	ColorBars     bool
	ColorBarWidth float64
	Legend        bool
	EqualAspect   bool
}

// DefaultOptions returns every layer, colorbar and legend enabled with the
// reference sizes and labels.
func DefaultOptions() Options {
	return Options{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		DPI:            DefaultDPI,
		Title:          DefaultTitle,
		XLabel:         "X",
		YLabel:         "Y",
		DensityLabel:   DefaultDensityLabel,
		MagnitudeLabel: DefaultMagnitudeLabel,
		PointRadius:    DefaultPointRadius,
		PointColor:     color.NRGBA{G: 255, B: 255, A: 255},
		QuiverScale:    DefaultQuiverScale,
		QuiverWidth:    DefaultQuiverWidth,
		PaletteSize:    DefaultPaletteSize,
		Layers:         Layers{Heatmap: true, Scatter: true, Quiver: true},
		ColorBars:      true,
		ColorBarWidth:  DefaultColorBarWidth,
		Legend:         true,
		EqualAspect:    true,
	}
}

// Validate reports the first unusable setting, wrapped in ErrBadOptions.
func (o Options) Validate() error {
	positive := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %g", ErrBadOptions, name, v)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"width", o.Width},
		{"height", o.Height},
		{"dpi", float64(o.DPI)},
		{"quiver scale", o.QuiverScale},
		{"quiver width", o.QuiverWidth},
		{"point radius", o.PointRadius},
		{"palette size", float64(o.PaletteSize)},
	} {
		if err := positive(c.name, c.v); err != nil {
			return err
		}
	}
	if o.ColorBars {
		if err := positive("colorbar width", o.ColorBarWidth); err != nil {
			return err
		}
		if 2*o.ColorBarWidth >= o.Width {
			return fmt.Errorf("%w: colorbars (%g in) leave no room in a %g in canvas", ErrBadOptions, 2*o.ColorBarWidth, o.Width)
		}
	}
	if !o.Layers.Heatmap && !o.Layers.Scatter && !o.Layers.Quiver {
		return fmt.Errorf("%w: no layer enabled", ErrBadOptions)
	}

	return nil
}

func (o Options) size() (w, h vg.Length) {
	return vg.Length(o.Width) * vg.Inch, vg.Length(o.Height) * vg.Inch
}
