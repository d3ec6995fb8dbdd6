package field

import (
	"fmt"
	"io"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a Field at a glance.
type Summary struct {
	Count         int
	Bounds        Bounds
	MagMin        float64
	MagMax        float64
	MagMean       float64
	MagStdDev     float64 // sample standard deviation; 0 for a single row
	MagMedian     float64 // mean of the two middle values for an even count
	ZeroGradients int // rows whose (dx, dy) norm is at most DefaultZeroNorm
}

// Summarize computes a Summary for f.
// Returns ErrEmpty for an empty field.
func Summarize(f *Field) (Summary, error) {
	b, err := f.Bounds()
	if err != nil {
		return Summary{}, err
	}

	mags := slices.Clone(f.Mag)
	slices.Sort(mags)

	s := Summary{
		Count:     f.Len(),
		Bounds:    b,
		MagMin:    floats.Min(mags),
		MagMax:    floats.Max(mags),
		MagMean:   stat.Mean(mags, nil),
		MagMedian: median(mags),
	}
	if len(mags) > 1 {
		s.MagStdDev = stat.StdDev(mags, nil)
	}
	for i := range f.DX {
		if math.Hypot(f.DX[i], f.DY[i]) <= DefaultZeroNorm {
			s.ZeroGradients++
		}
	}

	return s, nil
}

// median of sorted, non-empty v; an even count averages the middle pair.
func median(v []float64) float64 {
	n := len(v)
	if n%2 == 1 {
		return v[n/2]
	}

	return v[n/2-1]/2 + v[n/2]/2
}

// WriteTo prints s as aligned "key: value" lines.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"samples:        %d\n"+
			"x range:        [%g, %g]\n"+
			"y range:        [%g, %g]\n"+
			"magnitude min:  %g\n"+
			"magnitude max:  %g\n"+
			"magnitude mean: %g\n"+
			"magnitude std:  %g\n"+
			"magnitude p50:  %g\n"+
			"zero gradients: %d\n",
		s.Count,
		s.Bounds.MinX, s.Bounds.MaxX,
		s.Bounds.MinY, s.Bounds.MaxY,
		s.MagMin, s.MagMax, s.MagMean, s.MagStdDev, s.MagMedian,
		s.ZeroGradients)

	return int64(n), err
}
