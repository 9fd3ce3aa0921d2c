// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics behind median imputation: a NaN-skipping
//     per-column median and an in-place NaN fill.
//
// Exposed API:
//   - ColumnMedians(X) -> (medians)   // median of the non-NaN values of each column
//   - FillNaN(X, fill) -> (filled)    // X[i,j] = fill[j] wherever X[i,j] is NaN
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops; operates on the flat buffer.

package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMedians = "ColumnMedians"
	opFillNaN       = "FillNaN"
)

// ColumnMedians returns, for every column, the median of its non-NaN values.
// Implementation:
//   - Stage 1: gather the non-NaN values of column j (row order).
//   - Stage 2: delegate to stats.Median (mean of the two middle values for even counts).
//
// Behavior highlights:
//   - A column with no valid value is an error: the median is undefined.
//
// Errors:
//   - ErrEmptyColumn wrapped with the column index; the first such column wins.
//
// Complexity:
//   - Time O(c * r log r), Space O(r).
func ColumnMedians(X *Dense) ([]float64, error) {
	r, c := X.Shape()
	medians := make([]float64, c)
	col := make(stats.Float64Data, 0, r)

	var i, j int
	var v float64
	for j = 0; j < c; j++ {
		col = col[:0]
		for i = 0; i < r; i++ {
			v = X.data[i*c+j]
			if !math.IsNaN(v) {
				col = append(col, v)
			}
		}
		med, err := stats.Median(col)
		if errors.Is(err, stats.EmptyInputErr) {
			return nil, fmt.Errorf("%s: column %d: %w", opColumnMedians, j, ErrEmptyColumn)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: column %d: %w", opColumnMedians, j, err)
		}
		medians[j] = med
	}

	return medians, nil
}

// FillNaN replaces every NaN of column j with fill[j], in place, and returns
// how many cells were written.
// Errors:
//   - ErrDimensionMismatch when len(fill) != X.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FillNaN(X *Dense, fill []float64) (int, error) {
	if len(fill) != X.c {
		return 0, fmt.Errorf("%s: %d fill values for %d columns: %w", opFillNaN, len(fill), X.c, ErrDimensionMismatch)
	}

	filled := 0
	X.Apply(func(_, j int, v float64) float64 {
		if !math.IsNaN(v) {
			return v
		}
		filled++

		return fill[j]
	})

	return filled, nil
}
