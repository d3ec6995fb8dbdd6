package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Columns is the number of numeric fields in every data row.
const Columns = 5

// Sample is one row of the table.
type Sample struct {
	X, Y   float64 // position
	DX, DY float64 // gradient components
	Mag    float64 // reported gradient magnitude
}

// Field is a column-oriented sample table.
// All five slices always have the same length.
type Field struct {
	X, Y   []float64
	DX, DY []float64
	Mag    []float64
}

// Bounds is the axis-aligned bounding box of the sample positions.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether (x, y) lies inside b, edges included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

func (b Bounds) String() string {
	return fmt.Sprintf("x=[%g, %g] y=[%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// FromSamples builds a Field from row-oriented samples.
// Returns ErrEmpty for an empty slice.
func FromSamples(samples []Sample) (*Field, error) {
	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	f := newField(len(samples))
	for _, s := range samples {
		f.append(s)
	}

	return f, nil
}

// FromColumns builds a Field from existing columns without copying them.
// Returns ErrLengthMismatch if the columns differ in length and ErrEmpty
// if they are empty.
func FromColumns(x, y, dx, dy, mag []float64) (*Field, error) {
	n := len(x)
	if len(y) != n || len(dx) != n || len(dy) != n || len(mag) != n {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, ErrEmpty
	}

	return &Field{X: x, Y: y, DX: dx, DY: dy, Mag: mag}, nil
}

func newField(capacity int) *Field {
	return &Field{
		X:   make([]float64, 0, capacity),
		Y:   make([]float64, 0, capacity),
		DX:  make([]float64, 0, capacity),
		DY:  make([]float64, 0, capacity),
		Mag: make([]float64, 0, capacity),
	}
}

func (f *Field) append(s Sample) {
	f.X = append(f.X, s.X)
	f.Y = append(f.Y, s.Y)
	f.DX = append(f.DX, s.DX)
	f.DY = append(f.DY, s.DY)
	f.Mag = append(f.Mag, s.Mag)
}

// Len returns the number of samples.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.X)
}

// Sample returns row i. It panics if i is out of range, like slice indexing.
func (f *Field) Sample(i int) Sample {
	return Sample{X: f.X[i], Y: f.Y[i], DX: f.DX[i], DY: f.DY[i], Mag: f.Mag[i]}
}

// Bounds returns the bounding box of all positions.
// Returns ErrEmpty when the field has no samples.
func (f *Field) Bounds() (Bounds, error) {
	if f.Len() == 0 {
		return Bounds{}, ErrEmpty
	}

	return Bounds{
		MinX: floats.Min(f.X),
		MaxX: floats.Max(f.X),
		MinY: floats.Min(f.Y),
		MaxY: floats.Max(f.Y),
	}, nil
}

// Unit returns the field's gradients normalised to unit length.
// See Normalize for the zero-vector policy.
func (f *Field) Unit() (ux, uy []float64) {
	// Columns are equal length by construction; the error path is unreachable.
	ux, uy, _ = Normalize(f.DX, f.DY)
	return ux, uy
}
