// SPDX-License-Identifier: MIT

// Package matrix: rank-aware array types.
// This file holds the Array interface and the rank-1 Vector; the rank-2
// Dense lives in dense.go.
package matrix

import "fmt"

// Array is any n-dimensional numeric array that can report its shape.
// Dims returns one extent per axis, so len(Dims()) is the rank.
type Array interface {
	Dims() []int
}

// Compile-time assertions for Array conformance.
var (
	_ Array = (*Dense)(nil)
	_ Array = Vector(nil)
)

// Rank returns the number of axes of a.
func Rank(a Array) int { return len(a.Dims()) }

// Vector is a rank-1 array of float64 values.
type Vector []float64

// Dims reports the single axis length.
// Complexity: O(1).
func (v Vector) Dims() []int { return []int{len(v)} }

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy.
// Complexity: O(n).
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Select copies the elements at idx, in idx order.
// Returns ErrOutOfRange when an index is outside [0, len(v)).
// Complexity: O(len(idx)).
func (v Vector) Select(idx []int) (Vector, error) {
	out := make(Vector, len(idx))
	for k, i := range idx {
		if i < 0 || i >= len(v) {
			return nil, fmt.Errorf("Vector.Select: index %d: %w", i, ErrOutOfRange)
		}
		out[k] = v[i]
	}

	return out, nil
}
