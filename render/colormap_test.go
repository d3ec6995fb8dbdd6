package render_test

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/palette"

	"github.com/katalvlaran/gradviz/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nrgba(t *testing.T, c color.Color) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// near reports whether every channel of got is within 2 of want.
func near(want, got color.NRGBA) bool {
	d := func(a, b uint8) bool { return math.Abs(float64(a)-float64(b)) <= 2 }
	return d(want.R, got.R) && d(want.G, got.G) && d(want.B, got.B) && d(want.A, got.A)
}

func luma(c color.NRGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

func TestCool_Ends(t *testing.T) {
	cool := render.Cool()
	cool.SetMin(2)
	cool.SetMax(4)

	lo, err := cool.At(2)
	require.NoError(t, err)
	assert.True(t, near(color.NRGBA{G: 255, B: 255, A: 255}, nrgba(t, lo)), "cyan at min, got %v", nrgba(t, lo))

	hi, err := cool.At(4)
	require.NoError(t, err)
	assert.True(t, near(color.NRGBA{R: 255, B: 255, A: 255}, nrgba(t, hi)), "magenta at max, got %v", nrgba(t, hi))

	mid, err := cool.At(3)
	require.NoError(t, err)
	assert.Greater(t, luma(nrgba(t, lo)), luma(nrgba(t, mid)))
	assert.Greater(t, luma(nrgba(t, mid)), luma(nrgba(t, hi)))
}

func TestHot_Ends(t *testing.T) {
	hot := render.Hot()
	assert.Equal(t, 0.0, hot.Min())
	assert.Equal(t, 1.0, hot.Max())

	lo, err := hot.At(0)
	require.NoError(t, err)
	assert.True(t, near(color.NRGBA{A: 255}, nrgba(t, lo)), "black at min, got %v", nrgba(t, lo))

	hi, err := hot.At(1)
	require.NoError(t, err)
	assert.True(t, near(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgba(t, hi)), "white at max, got %v", nrgba(t, hi))

	// red leads green on the way up
	mid, err := hot.At(0.45)
	require.NoError(t, err)
	c := nrgba(t, mid)
	assert.Greater(t, c.R, c.G)
}

func TestColorMap_OutOfRange(t *testing.T) {
	m := render.Hot()
	_, err := m.At(-0.1)
	assert.ErrorIs(t, err, palette.ErrUnderflow)
	_, err = m.At(1.1)
	assert.ErrorIs(t, err, palette.ErrOverflow)
	_, err = m.At(math.NaN())
	assert.ErrorIs(t, err, palette.ErrNaN)
}

func TestColorMap_Palette(t *testing.T) {
	cs := render.Hot().Palette(16).Colors()
	require.Len(t, cs, 16)
	for i := 1; i < len(cs); i++ {
		assert.GreaterOrEqual(t, luma(nrgba(t, cs[i])), luma(nrgba(t, cs[i-1])), "palette %d darker than %d", i, i-1)
	}
}
