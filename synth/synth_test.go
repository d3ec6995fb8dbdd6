package synth_test

import (
	"testing"

	"github.com/katalvlaran/gradviz/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestDensityField_Shape(t *testing.T) {
	o := synth.DefaultOptions()
	o.Modules = 500
	assertMostlyMoving(t, o)
}

// TestDensityField_SmallCounts keeps default capacity low enough that a few
// hundred modules still overflow their clusters.
func TestDensityField_SmallCounts(t *testing.T) {
	for _, n := range []int{300, 1000} {
		o := synth.DefaultOptions()
		o.Modules = n
		assertMostlyMoving(t, o)
	}
}

func assertMostlyMoving(t *testing.T, o synth.Options) {
	t.Helper()

	f, err := synth.DensityField(o)
	require.NoError(t, err)
	require.Equal(t, o.Modules, f.Len())

	b, err := f.Bounds()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, b.MinX, 0.0)
	assert.LessOrEqual(t, b.MaxX, o.Width)
	assert.GreaterOrEqual(t, b.MinY, 0.0)
	assert.LessOrEqual(t, b.MaxY, o.Height)

	var moving int
	for i := 0; i < f.Len(); i++ {
		s := f.Sample(i)
		assert.GreaterOrEqual(t, s.Mag, 0.0)
		if s.Mag > 0 {
			moving++
		}
	}
	assert.Greater(t, float64(moving)/float64(f.Len()), 0.5,
		"%d of %d modules have a gradient", moving, f.Len())
}

func TestDensityField_Deterministic(t *testing.T) {
	o := synth.DefaultOptions()
	o.Modules = 200

	a, err := synth.DensityField(o)
	require.NoError(t, err)
	b, err := synth.DensityField(o)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	o.Seed++
	c, err := synth.DensityField(o)
	require.NoError(t, err)
	assert.NotEqual(t, a.X, c.X)
}

// TestDensityField_PushesOutward checks that, for a single cluster, modules
// right of the centre are pushed right and modules left of it pushed left.
func TestDensityField_PushesOutward(t *testing.T) {
	o := synth.DefaultOptions()
	o.Clusters = 1
	o.Modules = 1500
	o.Spread = 50

	f, err := synth.DensityField(o)
	require.NoError(t, err)
	mx := stat.Mean(f.X, nil)

	var right, rightOut, left, leftOut int
	for i := 0; i < f.Len(); i++ {
		s := f.Sample(i)
		switch {
		case s.X > mx+o.Spread && s.DX != 0:
			right++
			if s.DX > 0 {
				rightOut++
			}
		case s.X < mx-o.Spread && s.DX != 0:
			left++
			if s.DX < 0 {
				leftOut++
			}
		}
	}
	require.Positive(t, right)
	require.Positive(t, left)
	assert.Greater(t, float64(rightOut)/float64(right), 0.7)
	assert.Greater(t, float64(leftOut)/float64(left), 0.7)
}

func TestDensityField_BadOptions(t *testing.T) {
	for name, mutate := range map[string]func(*synth.Options){
		"modules": func(o *synth.Options) { o.Modules = 0 },
		"bins":    func(o *synth.Options) { o.Bins = -1 },
		"width":   func(o *synth.Options) { o.Width = 0 },
		"sigma":   func(o *synth.Options) { o.SigmaFactor = -2 },
	} {
		o := synth.DefaultOptions()
		mutate(&o)
		_, err := synth.DensityField(o)
		assert.ErrorIs(t, err, synth.ErrBadOptions, name)
	}
}
