// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"

	"github.com/fagan2888/afqinsight/labels"
	"github.com/fagan2888/afqinsight/matrix"
)

// Operation names for error wrapping.
const (
	opExtract      = "Extract"
	opSelectGroup  = "SelectGroup"
	opSelectGroups = "SelectGroups"
	opRemoveGroup  = "RemoveGroup"
	opRemoveGroups = "RemoveGroups"
	opShuffleGroup = "ShuffleGroup"
)

// Extract keeps the columns of x whose id in groups is one of wanted.
// groups is parallel to the columns of x. When either argument is unset,
// x is returned as is.
// Errors:
//   - ErrShape for rank ∉ {1, 2}.
//   - ErrGroupsMismatch when groups.Len() differs from the column count.
func Extract(x matrix.Array, groups, wanted GroupIDs) (matrix.Array, error) {
	if !groups.IsSet() || !wanted.IsSet() {
		return x, nil
	}
	n, err := columns(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExtract, err)
	}
	if groups.Len() != n {
		return nil, fmt.Errorf("%s: %d group ids for %d columns: %w", opExtract, groups.Len(), n, ErrGroupsMismatch)
	}

	mask := make([]bool, n)
	for j, g := range groups.ids {
		mask[j] = wanted.contains(g)
	}
	out, err := applyMask(x, mask)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opExtract, err)
	}

	return out, nil
}

// SelectGroup keeps the columns whose label set contains every label of label.
func SelectGroup(x matrix.Array, label []labels.Label, sets []labels.LabelSet) (matrix.Array, error) {
	return maskWith(opSelectGroup, x, sets, func() []bool { return matches(label, sets) })
}

// SelectGroups keeps the columns matching any of queries.
func SelectGroups(x matrix.Array, queries [][]labels.Label, sets []labels.LabelSet) (matrix.Array, error) {
	return maskWith(opSelectGroups, x, sets, func() []bool {
		mask := make([]bool, len(sets))
		for _, q := range queries {
			for j, hit := range matches(q, sets) {
				mask[j] = mask[j] || hit
			}
		}
		return mask
	})
}

// RemoveGroup drops the columns SelectGroup would keep.
func RemoveGroup(x matrix.Array, label []labels.Label, sets []labels.LabelSet) (matrix.Array, error) {
	return maskWith(opRemoveGroup, x, sets, func() []bool {
		mask := matches(label, sets)
		for j := range mask {
			mask[j] = !mask[j]
		}
		return mask
	})
}

// RemoveGroups keeps a column when it fails to match at least one of queries.
// A column survives unless it matches every query; with no queries nothing
// survives.
func RemoveGroups(x matrix.Array, queries [][]labels.Label, sets []labels.LabelSet) (matrix.Array, error) {
	return maskWith(opRemoveGroups, x, sets, func() []bool {
		mask := make([]bool, len(sets))
		for _, q := range queries {
			for j, hit := range matches(q, sets) {
				mask[j] = mask[j] || !hit
			}
		}
		return mask
	})
}

// maskWith validates x against sets and applies the mask built by build.
func maskWith(op string, x matrix.Array, sets []labels.LabelSet, build func() []bool) (matrix.Array, error) {
	if err := checkSets(x, sets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, err := applyMask(x, build())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ShuffleGroup returns a copy of x whose columns matching label are permuted
// as one flat pool; other columns are untouched.
// MAIN DESCRIPTION:
//   - Select the matching sub-block, flatten it row-major, shuffle the flat
//     sequence and reshape it back into the same columns.
//
// Randomness:
//   - WithSeed(s): call-local generator; same seed, input and label give the same output.
//   - WithRand(r): draws from r.
//   - neither: the package-level math/rand functions (rand.Shuffle); not reproducible.
//
// Errors:
//   - ErrShape, ErrLabelSetsMismatch.
//
// Complexity:
//   - Time O(r*k) for k matching columns, Space O(r*c).
func ShuffleGroup(x matrix.Array, label []labels.Label, sets []labels.LabelSet, opts ...ShuffleOption) (matrix.Array, error) {
	if err := checkSets(x, sets); err != nil {
		return nil, fmt.Errorf("%s: %w", opShuffleGroup, err)
	}
	cfg := newShuffleConfig(opts...)
	idx := indices(matches(label, sets))

	switch v := x.(type) {
	case *matrix.Dense:
		block, err := v.SelectColumns(idx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opShuffleGroup, err)
		}
		pool := block.Flatten()
		cfg.shuffle(len(pool), func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
		if block, err = matrix.NewDenseFrom(block.Rows(), block.Cols(), pool); err != nil {
			return nil, fmt.Errorf("%s: %w", opShuffleGroup, err)
		}
		out := v.Clone()
		if err = out.SetColumns(idx, block); err != nil {
			return nil, fmt.Errorf("%s: %w", opShuffleGroup, err)
		}
		return out, nil

	case matrix.Vector:
		out := v.Clone()
		cfg.shuffle(len(idx), func(a, b int) {
			out[idx[a]], out[idx[b]] = out[idx[b]], out[idx[a]]
		})
		return out, nil

	default:
		return nil, fmt.Errorf("%s: %T: %w", opShuffleGroup, x, ErrShape)
	}
}
