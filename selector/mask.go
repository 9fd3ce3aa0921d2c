// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"github.com/fagan2888/afqinsight/labels"
	"github.com/fagan2888/afqinsight/matrix"
)

// columns returns the number of columns of x: its length for rank 1,
// its second extent for rank 2.
func columns(x matrix.Array) (int, error) {
	if x == nil {
		return 0, ErrShape
	}
	dims := x.Dims()
	switch len(dims) {
	case 1:
		return dims[0], nil
	case 2:
		return dims[1], nil
	default:
		return 0, fmt.Errorf("rank %d: %w", len(dims), ErrShape)
	}
}

// matches marks the columns whose label set contains every label of query.
func matches(query []labels.Label, sets []labels.LabelSet) []bool {
	mask := make([]bool, len(sets))
	for j, s := range sets {
		mask[j] = s.ContainsAll(query)
	}

	return mask
}

// checkSets validates x and the parallel label sets.
func checkSets(x matrix.Array, sets []labels.LabelSet) error {
	n, err := columns(x)
	if err != nil {
		return err
	}
	if n != len(sets) {
		return fmt.Errorf("%d label sets for %d columns: %w", len(sets), n, ErrLabelSetsMismatch)
	}

	return nil
}

// indices lists the positions where mask is true.
func indices(mask []bool) []int {
	idx := make([]int, 0, len(mask))
	for j, keep := range mask {
		if keep {
			idx = append(idx, j)
		}
	}

	return idx
}

// applyMask copies the columns of x where mask is true.
// The result has the concrete type of x.
func applyMask(x matrix.Array, mask []bool) (matrix.Array, error) {
	idx := indices(mask)
	switch v := x.(type) {
	case *matrix.Dense:
		out, err := v.SelectColumns(idx)
		if err != nil {
			return nil, err
		}
		return out, nil
	case matrix.Vector:
		out, err := v.Select(idx)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%T: %w", x, ErrShape)
	}
}
