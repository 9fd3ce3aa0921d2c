// SPDX-License-Identifier: MIT

package features

import (
	"fmt"

	"github.com/fagan2888/afqinsight/matrix"
	"github.com/fagan2888/afqinsight/table"
)

// NoGroup is the group id of a column that belongs to no group (the bias column).
const NoGroup = -1

// Group is the ascending list of column positions sharing one (metric, tract) pair.
type Group []int

// GroupIndex lists the groups in code order (metric rank × tract count + tract rank).
type GroupIndex []Group

// GroupKey names the (metric, tract) pair of a group.
type GroupKey struct {
	Metric  string
	TractID string
}

// String renders the key as "metric/tract".
func (k GroupKey) String() string { return k.Metric + "/" + k.TractID }

// FeatureMatrix is the output of Build.
//
// Fields:
//   - X        : n_subjects × (n_columns [+1]) values, row-major.
//   - Subjects : row labels, sorted.
//   - Columns  : column keys parallel to the non-bias columns of X.
//   - Groups   : partition of the non-bias columns.
//   - GroupKeys: (metric, tract) of each group, parallel to Groups.
type FeatureMatrix struct {
	X         *matrix.Dense
	Subjects  []string
	Columns   []table.ColumnKey
	Groups    GroupIndex
	GroupKeys []GroupKey

	bias int // column of ones, or -1
}

// BiasIndex returns the position of the bias column and whether one exists.
func (fm *FeatureMatrix) BiasIndex() (int, bool) {
	if fm.bias < 0 {
		return 0, false
	}

	return fm.bias, true
}

// GroupIDs returns the group id of every column of X; the bias column maps to NoGroup.
func (fm *FeatureMatrix) GroupIDs() ([]int, error) {
	return Membership(fm.Groups, fm.X.Cols())
}

// Membership converts a GroupIndex into a parallel array of group ids,
// with NoGroup for columns in no group. When a column appears in several
// groups, the last one wins.
// Errors:
//   - ErrGroupOutOfRange when a member lies outside [0, nCols).
//
// Complexity: O(nCols + Σ|group|).
func Membership(groups GroupIndex, nCols int) ([]int, error) {
	ids := make([]int, nCols)
	for j := range ids {
		ids[j] = NoGroup
	}
	for g, members := range groups {
		for _, j := range members {
			if j < 0 || j >= nCols {
				return nil, fmt.Errorf("Membership: group %d column %d of %d: %w", g, j, nCols, ErrGroupOutOfRange)
			}
			ids[j] = g
		}
	}

	return ids, nil
}
