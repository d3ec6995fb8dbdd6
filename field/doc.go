// Package field loads and prepares 2D gradient-field samples.
//
// 🚀 What is a gradient field sample?
//
//	One row of a whitespace-delimited text table:
//
//	  x  y  dx  dy  magnitude
//
//	(x, y) is a position (e.g. a placed cell centre), (dx, dy) the gradient
//	acting on it and magnitude its reported strength. A placer or optimiser
//	dumps one row per object; this package reads the dump back.
//
// ✨ Key features:
//   - strict reader: exactly 5 finite numeric columns, '#' comments and
//     blank lines skipped, line-numbered errors (ParseError)
//   - column-oriented Field with equal-length columns by construction
//   - Bounds over positions (the range a density histogram must span)
//   - Normalize for unit gradient directions (zero vectors stay zero)
//   - Summarize for count / bounds / magnitude statistics
//
// ⚙️ Usage:
//
//	f, err := field.Load("grad_vectors.txt")
//	if err != nil {
//	  // errors.Is(err, field.ErrColumnCount), field.ErrNotNumeric, ...
//	}
//	ux, uy := f.Unit()
//	b, _ := f.Bounds()
//
// Performance:
//
//   - Read:      O(N) time, O(N) memory (five float64 columns)
//   - Normalize: O(N) time, O(N) memory for the two output columns
package field
