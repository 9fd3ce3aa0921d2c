// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (possibly wrapped with %w) and
// tests check them via errors.Is. Public methods never panic on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// attached at the detection site with fmt.Errorf("Dense.<Op>(...): %w", ErrX).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative,
	// or non-positive for the public NewDense constructor.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a backing slice whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned when an operation cannot work on the given shape
	// (e.g. handing a zero-sized matrix to gonum).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrEmptyColumn indicates a column with no finite value to summarise.
	ErrEmptyColumn = errors.New("matrix: column has no valid values")
)
