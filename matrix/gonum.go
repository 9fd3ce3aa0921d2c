// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum copies m into a gonum *mat.Dense for model-fitting code built on
// gonum/mat. The result does not share storage with m.
//
// gonum forbids zero-sized matrices, so an empty m yields ErrBadShape.
// Complexity: O(r*c).
func (m *Dense) Gonum() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("Dense.Gonum: %dx%d: %w", m.r, m.c, ErrBadShape)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// Gonum copies v into a gonum *mat.VecDense; an empty v yields ErrBadShape.
func (v Vector) Gonum() (*mat.VecDense, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("Vector.Gonum: %w", ErrBadShape)
	}

	return mat.NewVecDense(len(v), v.Clone()), nil
}
