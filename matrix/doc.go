// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric containers of the feature pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major rank-2 array (subjects × features) with safe
//     accessors, column selection (SelectColumns / Induced), column scatter
//     (SetColumns), flattening and a bias-column append.
//   - Vector, a rank-1 array used for coefficient vectors.
//   - Array, the rank-reporting interface consumed by the group operations;
//     anything that is not rank 1 or rank 2 is rejected there.
//   - Column statistics that skip NaN (ColumnMedians) and an in-place NaN
//     fill (FillNaN), the two halves of median imputation.
//   - Gonum, an adapter handing the matrix to gonum/mat based model fitting.
//
// Determinism:
//
//	All loops run in fixed i→j (row-major) order; no map iteration.
//
// Complexity quicksheet:
//
//	NewDense: O(r*c); At/Set: O(1); Clone/Flatten: O(r*c);
//	SelectColumns: O(r*k); ColumnMedians: O(c * r log r).
package matrix
