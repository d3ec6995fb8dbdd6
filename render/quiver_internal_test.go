package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestArrow_Geometry(t *testing.T) {
	pts := arrow(vg.Point{X: 10, Y: 20}, 0, 2, 100, 2)
	require.Len(t, pts, 7)

	assert.Equal(t, vg.Point{X: 10, Y: 120}, pts[3], "tip")
	// head base sits headLength shaft widths below the tip
	assert.InDelta(t, 110, float64(pts[2].Y), 1e-9)
	assert.InDelta(t, 10-headHalfWidth*2, float64(pts[2].X), 1e-9)
	assert.InDelta(t, 9, float64(pts[0].X), 1e-9)
	assert.InDelta(t, 11, float64(pts[6].X), 1e-9)
}

func TestArrow_ShortShrinksHead(t *testing.T) {
	pts := arrow(vg.Point{}, 1, 0, 4, 2)
	require.Len(t, pts, 7)
	assert.Equal(t, vg.Point{X: 4}, pts[3])
	assert.InDelta(t, 0, float64(pts[2].X), 1e-9, "head fills a short arrow")
}

func TestArrow_Zero(t *testing.T) {
	assert.Nil(t, arrow(vg.Point{}, 0, 0, 10, 1))
	assert.Nil(t, arrow(vg.Point{}, 1, 0, 0, 1))
}

func TestNewQuiver(t *testing.T) {
	_, err := NewQuiver([]float64{1}, []float64{1, 2}, []float64{1}, []float64{1}, []float64{1}, Cool())
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = NewQuiver(nil, nil, nil, nil, nil, Cool())
	assert.ErrorIs(t, err, ErrNoData)

	q, err := NewQuiver([]float64{-1, 3}, []float64{2, 5}, []float64{1, 0}, []float64{0, 1}, []float64{1, 2}, Cool())
	require.NoError(t, err)
	xmin, xmax, ymin, ymax := q.DataRange()
	assert.Equal(t, [4]float64{-1, 3, 2, 5}, [4]float64{xmin, xmax, ymin, ymax})

	cm := Cool()
	cm.SetMin(0)
	cm.SetMax(1)
	q.ColorMap = cm
	assert.Equal(t, q.colorAt(1), q.colorAt(7), "out-of-range magnitudes clamp")
}
