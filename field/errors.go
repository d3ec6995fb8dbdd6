// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// All loaders and transforms return these sentinels (possibly wrapped with
// context); tests match them via errors.Is.

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen is returned when the input file cannot be opened.
	ErrOpen = errors.New("field: cannot open input")

	// ErrEmpty indicates the table (or Field) holds no data rows.
	ErrEmpty = errors.New("field: no data rows")

	// ErrColumnCount indicates a data row without exactly Columns fields.
	ErrColumnCount = errors.New("field: wrong column count")

	// ErrNotNumeric indicates a token that does not parse as a number.
	ErrNotNumeric = errors.New("field: non-numeric value")

	// ErrNonFinite indicates a NaN or ±Inf value in the table.
	ErrNonFinite = errors.New("field: NaN or Inf value")

	// ErrLengthMismatch indicates columns (or vector components) of unequal length.
	ErrLengthMismatch = errors.New("field: column length mismatch")
)

// ParseError reports the 1-based line of a malformed row.
// It unwraps to one of the sentinels above.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
