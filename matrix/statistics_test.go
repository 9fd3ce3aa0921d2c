package matrix_test

import (
	"math"
	"testing"

	"github.com/fagan2888/afqinsight/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestColumnMedians verifies NaN skipping and the even-count midpoint.
func TestColumnMedians(t *testing.T) {
	nan := math.NaN()
	m := mustDense(t, 4, 3,
		1, nan, 5,
		2, 4, 5,
		3, nan, 5,
		10, 8, nan)

	med, err := matrix.ColumnMedians(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 6, 5}, med)
}

// TestColumnMedians_EmptyColumn reports the first all-NaN column.
func TestColumnMedians_EmptyColumn(t *testing.T) {
	nan := math.NaN()
	m := mustDense(t, 2, 2, 1, nan, 2, nan)

	_, err := matrix.ColumnMedians(m)
	require.ErrorIs(t, err, matrix.ErrEmptyColumn)
	assert.Contains(t, err.Error(), "column 1")
}

// TestFillNaN fills only NaN cells, column by column, in place.
func TestFillNaN(t *testing.T) {
	nan := math.NaN()
	m := mustDense(t, 2, 2, nan, 1, 2, nan)

	n, err := matrix.FillNaN(m, []float64{7, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, matrix.Vector{7, 1, 2, 9}, m.Flatten())

	_, err = matrix.FillNaN(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
