// SPDX-License-Identifier: MIT

package field

import "math"

// DefaultZeroNorm is the norm at or below which a gradient is treated as
// the zero vector and left as (0, 0).
const DefaultZeroNorm = 1e-12

// Normalize scales every vector (dx[i], dy[i]) to unit length.
//
// Implementation:
//   - Stage 1 (Validate): len(dx) must equal len(dy).
//   - Stage 2 (Execute): n = hypot(dx, dy); u = d / n for n > DefaultZeroNorm.
//
// Behavior highlights:
//   - Degenerate vectors (n <= DefaultZeroNorm) map to (0, 0) instead of
//     being blown up or turned into NaN.
//   - hypot avoids overflow for very large components.
//   - Inputs are not modified.
//
// Errors:
//   - ErrLengthMismatch if the component slices differ in length.
//
// Complexity: O(N) time, O(N) memory.
func Normalize(dx, dy []float64) (ux, uy []float64, err error) {
	if len(dx) != len(dy) {
		return nil, nil, ErrLengthMismatch
	}

	ux = make([]float64, len(dx))
	uy = make([]float64, len(dy))
	for i := range dx {
		n := math.Hypot(dx[i], dy[i])
		if n <= DefaultZeroNorm {
			continue // degenerate: keep (0, 0)
		}
		ux[i] = dx[i] / n
		uy[i] = dy[i] / n
	}

	return ux, uy, nil
}
