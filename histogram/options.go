// SPDX-License-Identifier: MIT

// Package histogram: functional configuration for New.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics on nonsensical values (programmer error).
//   - Zero options reproduce the default density map (DefaultBins per axis,
//     range taken from the data).
package histogram

import "math"

// DefaultBins is the number of bins per axis when no option overrides it.
const DefaultBins = 200

// degeneratePad widens an axis whose min equals its max.
const degeneratePad = 0.5

const (
	panicBinsInvalid  = "histogram: WithBins: bin counts must be > 0"
	panicRangeInvalid = "histogram: WithRange: bounds must be finite with min <= max"
)

// Range is a closed interval [Min, Max] on one axis.
type Range struct {
	Min, Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// Option mutates histogram options.
type Option func(*options)

type options struct {
	nx, ny   int
	xr, yr   Range
	hasRange bool
}

// WithBins sets the same bin count on both axes.
// Panics if n <= 0.
func WithBins(n int) Option {
	return WithBinsXY(n, n)
}

// WithBinsXY sets separate bin counts for the x and y axes.
// Panics if either is <= 0.
func WithBinsXY(nx, ny int) Option {
	if nx <= 0 || ny <= 0 {
		panic(panicBinsInvalid)
	}

	return func(o *options) {
		o.nx, o.ny = nx, ny
	}
}

// WithRange fixes the binning range instead of deriving it from the data.
// Points outside the range are ignored.
// Panics on non-finite bounds or Min > Max.
func WithRange(xr, yr Range) Option {
	if !validRange(xr) || !validRange(yr) {
		panic(panicRangeInvalid)
	}

	return func(o *options) {
		o.xr, o.yr = xr, yr
		o.hasRange = true
	}
}

func validRange(r Range) bool {
	finite := !math.IsNaN(r.Min) && !math.IsInf(r.Min, 0) && !math.IsNaN(r.Max) && !math.IsInf(r.Max, 0)
	return finite && r.Min <= r.Max
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{nx: DefaultBins, ny: DefaultBins}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
