// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based column extraction (SelectColumns/Induced) and write-back (SetColumns),
//     the two primitives every group operation is built on.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"           // method tag used in error wrappers
	ctxSet        = "Set"          // method tag used in error wrappers
	ctxRow        = "Row"          // method tag used in error wrappers
	ctxColumn     = "Column"       // method tag used in error wrappers
	ctxInduce     = "Induced"      // ctor/tag for Dense.Induced
	ctxSetColumns = "SetColumns"   // method tag for Dense.SetColumns
	ctxFrom       = "NewDenseFrom" // ctor tag
	ctxAppend     = "AppendColumn" // method tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>=0; zero allowed for selections and NewDenseFrom)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseZeroOK is an internal constructor that allows rows==0 or cols==0.
// Selections legitimately produce r×0 results (no column matched).
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom builds a rows×cols matrix from a row-major slice.
// MAIN DESCRIPTION:
//   - Copying constructor; the result never aliases data.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 (zero extents are legal here).
//   - Stage 2: require len(data) == rows*cols.
//   - Stage 3: copy into a fresh buffer.
//
// Errors:
//   - ErrInvalidDimensions for negative extents.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Pair with Flatten to reshape a block after a flat permutation.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxFrom, rows, cols, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len(data)=%d: %w", ctxFrom, rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Dims reports the shape as an Array: always rank 2.
func (m *Dense) Dims() []int { return []int{m.r, m.c} }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// NaN is accepted: the pivot marks missing cells with NaN until imputation.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Column returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxColumn, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Flatten returns the row-major contents as an independent Vector.
// Complexity: O(r*c).
func (m *Dense) Flatten() Vector {
	out := make(Vector, len(m.data))
	copy(out, m.data)

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: allocate the (possibly zero-area) result.
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Inputs:
//   - rowsIdx: indices into [0..m.r).
//   - colsIdx: indices into [0..m.c).
//
// Returns:
//   - *Dense: independent copy with size len(rowsIdx)×len(colsIdx).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Determinism:
//   - Fixed nested loops i→j.
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols

	// Validate column indices up front so zero-row selections still report bad columns.
	var j, cj int
	for j = 0; j < cp; j++ {
		cj = colsIdx[j]
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}

	res, err := newDenseZeroOK(rp, cp)
	if err != nil {
		return nil, err
	}

	var i, ri int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[ri*m.c+colsIdx[j]]
		}
	}

	return res, nil
}

// SelectColumns copies the columns at cols (all rows), in cols order.
// A nil or empty cols yields a legal r×0 matrix.
// Complexity: O(r*len(cols)).
func (m *Dense) SelectColumns(cols []int) (*Dense, error) {
	rows := make([]int, m.r)
	for i := range rows {
		rows[i] = i
	}

	return m.Induced(rows, cols)
}

// SetColumns writes block into the receiver's columns cols, in place.
// MAIN DESCRIPTION:
//   - Inverse of SelectColumns: column k of block lands in column cols[k].
//
// Implementation:
//   - Stage 1: require block.Rows()==m.r and block.Cols()==len(cols).
//   - Stage 2: bounds-check every target column.
//   - Stage 3: row-major copy.
//
// Errors:
//   - ErrDimensionMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*len(cols)), Space O(1).
func (m *Dense) SetColumns(cols []int, block *Dense) error {
	if block.r != m.r || block.c != len(cols) {
		return fmt.Errorf("Dense.%s: block %dx%d for %d rows and %d cols: %w",
			ctxSetColumns, block.r, block.c, m.r, len(cols), ErrDimensionMismatch)
	}
	for _, cj := range cols {
		if cj < 0 || cj >= m.c {
			return fmt.Errorf("Dense.%s: col index %d: %w", ctxSetColumns, cj, ErrOutOfRange)
		}
	}

	var i, k int
	for i = 0; i < m.r; i++ {
		for k = 0; k < len(cols); k++ {
			m.data[i*m.c+cols[k]] = block.data[i*block.c+k]
		}
	}

	return nil
}

// AppendColumn returns a new r×(c+1) matrix whose last column holds v.
// The receiver is not modified; the new column index is the old Cols().
// Complexity: O(r*c).
func (m *Dense) AppendColumn(v float64) (*Dense, error) {
	res, err := newDenseZeroOK(m.r, m.c+1)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxAppend, err)
	}
	for i := 0; i < m.r; i++ {
		copy(res.data[i*res.c:i*res.c+m.c], m.data[i*m.c:(i+1)*m.c])
		res.data[i*res.c+m.c] = v
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Deterministic row-major order; no extra allocations.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
