// SPDX-License-Identifier: MIT

package histogram

import (
	"fmt"
	"strings"
)

// Grid is a dense nx×ny table of bin counts.
// Storage is a flat x-major slice: cell (ix, iy) lives at ix*ny + iy.
type Grid struct {
	nx, ny int
	data   []float64
}

// NewGrid creates an nx×ny Grid initialised to zeros.
// Stage 1 (Validate): ensure nx and ny > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(nx*ny) time and memory.
func NewGrid(nx, ny int) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrBadShape
	}

	return &Grid{nx: nx, ny: ny, data: make([]float64, nx*ny)}, nil
}

// Dims returns the number of x bins and y bins.
func (g *Grid) Dims() (nx, ny int) {
	return g.nx, g.ny
}

// indexOf computes the flat index for (ix, iy) or returns ErrOutOfRange.
func (g *Grid) indexOf(method string, ix, iy int) (int, error) {
	if ix < 0 || ix >= g.nx || iy < 0 || iy >= g.ny {
		return 0, gridErrorf(method, ix, iy, ErrOutOfRange)
	}

	return ix*g.ny + iy, nil
}

// At returns the count in cell (ix, iy).
func (g *Grid) At(ix, iy int) (float64, error) {
	idx, err := g.indexOf("At", ix, iy)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns v to cell (ix, iy).
func (g *Grid) Set(ix, iy int, v float64) error {
	idx, err := g.indexOf("Set", ix, iy)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Inc adds one to cell (ix, iy).
func (g *Grid) Inc(ix, iy int) error {
	idx, err := g.indexOf("Inc", ix, iy)
	if err != nil {
		return err
	}
	g.data[idx]++

	return nil
}

// at is the unchecked accessor used by the GridXYZ adapter, whose
// interface has no error return; callers stay within Dims.
func (g *Grid) at(ix, iy int) float64 {
	return g.data[ix*g.ny+iy]
}

// Max returns the largest count in the grid.
func (g *Grid) Max() float64 {
	var m float64
	for _, v := range g.data {
		if v > m {
			m = v
		}
	}

	return m
}

// Sum returns the total of all counts.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.data {
		s += v
	}

	return s
}

// String renders the grid with y increasing upwards, one text row per y bin.
func (g *Grid) String() string {
	var sb strings.Builder
	for iy := g.ny - 1; iy >= 0; iy-- {
		sb.WriteByte('[')
		for ix := 0; ix < g.nx; ix++ {
			if ix > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", g.at(ix, iy))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
