// SPDX-License-Identifier: MIT

// Package synth generates gradient-field tables shaped like a global
// placer's density-penalty dump: modules clustered on a chip, each with the
// gradient that pushes it out of over-full bins.
//
// Algorithm outline:
//  1. Scatter Modules around Clusters Gaussian centres, clamped to the chip.
//  2. Splat each module's area into a Bins×Bins grid with a Gaussian of
//     σ = SigmaFactor·binWidth, truncated at 3σ. A bin accumulates the
//     module area it holds (Gaussian value times bin area), so density and
//     capacity are both areas.
//  3. overflow(bin) = density(bin) − binArea·TargetDensity.
//  4. For every module sum 2·overflow·(−∂D/∂c) over bins with overflow > 0;
//     magnitude is the Euclidean norm of the result.
//
// Complexity: O(Modules · (6σ/binWidth)²) time, O(Bins²) memory.
package synth

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/gradviz/field"
	"github.com/katalvlaran/gradviz/histogram"
)

// ErrBadOptions is returned for non-positive sizes or counts.
var ErrBadOptions = errors.New("synth: invalid options")

// Options controls the generated placement.
type Options struct {
	Modules       int     // number of rows to generate
	Clusters      int     // Gaussian cluster centres
	Spread        float64 // cluster standard deviation, chip units
	Width, Height float64 // chip size
	ModuleArea    float64
	Bins          int     // density grid bins per axis
	SigmaFactor   float64 // splat σ in bin widths
	TargetDensity float64 // fraction of a bin's area modules may fill
	Seed          int64
}

// DefaultOptions returns a 1000×1000 chip with 2000 modules in 5 clusters.
// At TargetDensity 0.1 a bin overflows once it holds four tenths of a
// module, so even a few hundred clustered modules get non-zero gradients.
func DefaultOptions() Options {
	return Options{
		Modules:       2000,
		Clusters:      5,
		Spread:        60,
		Width:         1000,
		Height:        1000,
		ModuleArea:    100,
		Bins:          50,
		SigmaFactor:   1,
		TargetDensity: 0.1,
		Seed:          1,
	}
}

func (o Options) validate() error {
	if o.Modules <= 0 || o.Clusters <= 0 || o.Bins <= 0 {
		return ErrBadOptions
	}
	for _, v := range []float64{o.Spread, o.Width, o.Height, o.ModuleArea, o.SigmaFactor, o.TargetDensity} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return ErrBadOptions
		}
	}
	return nil
}

// DensityField generates a placement and its density-penalty gradients.
// The same Options (including Seed) always yield the same Field.
func DensityField(o Options) (*field.Field, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(o.Seed))

	// Stage 1: placement
	cx := make([]float64, o.Clusters)
	cy := make([]float64, o.Clusters)
	for k := range cx {
		cx[k] = o.Width * (0.15 + 0.7*rng.Float64())
		cy[k] = o.Height * (0.15 + 0.7*rng.Float64())
	}
	x := make([]float64, o.Modules)
	y := make([]float64, o.Modules)
	for i := range x {
		k := rng.Intn(o.Clusters)
		x[i] = clamp(cx[k]+rng.NormFloat64()*o.Spread, 0, o.Width)
		y[i] = clamp(cy[k]+rng.NormFloat64()*o.Spread, 0, o.Height)
	}

	s := newSplat(o)

	// Stage 2: density
	density, err := histogram.NewGrid(o.Bins, o.Bins)
	if err != nil {
		return nil, err
	}
	for i := range x {
		s.each(x[i], y[i], func(bx, by int, g, _, _ float64) {
			v, _ := density.At(bx, by)
			_ = density.Set(bx, by, v+o.ModuleArea*g*s.binArea)
		})
	}

	// Stage 3 + 4: overflow-weighted gradients
	capacity := s.binArea * o.TargetDensity
	dx := make([]float64, o.Modules)
	dy := make([]float64, o.Modules)
	mag := make([]float64, o.Modules)
	for i := range x {
		s.each(x[i], y[i], func(bx, by int, g, ddx, ddy float64) {
			d, _ := density.At(bx, by)
			overflow := d - capacity
			if overflow <= 0 {
				return
			}
			w := o.ModuleArea * g * s.binArea / s.sigmaSq
			dx[i] += 2 * overflow * -(w * ddx)
			dy[i] += 2 * overflow * -(w * ddy)
		})
		mag[i] = math.Hypot(dx[i], dy[i])
	}

	return field.FromColumns(x, y, dx, dy, mag)
}

// splat walks the bins within 3σ of a point.
type splat struct {
	bins       int
	binW, binH float64
	binArea    float64
	sigma      float64
	sigmaSq    float64
}

func newSplat(o Options) splat {
	binW, binH := o.Width/float64(o.Bins), o.Height/float64(o.Bins)
	sigma := o.SigmaFactor * math.Min(binW, binH)
	return splat{
		bins:    o.Bins,
		binW:    binW,
		binH:    binH,
		binArea: binW * binH,
		sigma:   sigma,
		sigmaSq: sigma * sigma,
	}
}

// each calls fn with the bin index, the normalised Gaussian weight and the
// offset from the point to the bin centre.
func (s splat) each(px, py float64, fn func(bx, by int, g, dx, dy float64)) {
	reach := 3 * s.sigma
	x0 := max(0, int((px-reach)/s.binW))
	x1 := min(s.bins-1, int((px+reach)/s.binW))
	y0 := max(0, int((py-reach)/s.binH))
	y1 := min(s.bins-1, int((py+reach)/s.binH))
	norm := 1 / (2 * math.Pi * s.sigmaSq)

	for by := y0; by <= y1; by++ {
		dy := (float64(by)+0.5)*s.binH - py
		for bx := x0; bx <= x1; bx++ {
			dx := (float64(bx)+0.5)*s.binW - px
			g := norm * math.Exp(-(dx*dx+dy*dy)/(2*s.sigmaSq))
			fn(bx, by, g, dx, dy)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
