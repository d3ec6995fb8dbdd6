// SPDX-License-Identifier: MIT
// Package histogram: sentinel error set.
// Every message is prefixed with "histogram: ..."; callers match via errors.Is.

package histogram

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a grid is requested with nx<=0 or ny<=0.
	ErrBadShape = errors.New("histogram: invalid shape")

	// ErrOutOfRange indicates a grid index outside [0,nx)×[0,ny).
	ErrOutOfRange = errors.New("histogram: index out of range")

	// ErrEmptyInput indicates no points were supplied.
	ErrEmptyInput = errors.New("histogram: empty input")

	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = errors.New("histogram: x and y length mismatch")

	// ErrNaNInf indicates a NaN or ±Inf coordinate was supplied.
	ErrNaNInf = errors.New("histogram: NaN or Inf coordinate")

	// ErrRangeOverflow indicates an axis span (max-min) that overflows float64.
	ErrRangeOverflow = errors.New("histogram: range width overflows float64")
)

// gridErrorf wraps err with Grid method context.
func gridErrorf(method string, ix, iy int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, ix, iy, err)
}
