// SPDX-License-Identifier: MIT

package labels

import (
	"strconv"
	"strings"

	"github.com/fagan2888/afqinsight/table"
)

// Field names used by Dicts.
const (
	FieldMetric    = "metric"
	FieldTract     = "tractID"
	FieldNode      = "nodeID"
	FieldSymmetric = "symmetrized_tractID"
)

const (
	leftPrefix  = "Left "
	rightPrefix = "Right "
)

// Fields maps field names to the display values of one column.
type Fields map[string]string

// Symmetrize strips a leading "Left " or "Right " from tract.
// It reports whether a prefix was removed.
func Symmetrize(tract string) (string, bool) {
	if s, ok := strings.CutPrefix(tract, leftPrefix); ok {
		return s, true
	}

	return strings.CutPrefix(tract, rightPrefix)
}

// Derive returns one LabelSet per column, parallel to cols.
// With tractSymmetry, the symmetrized tract name is added; for tracts without
// a hemisphere prefix it equals the tract and the set is unchanged.
// Complexity: O(len(cols)).
func Derive(cols []table.ColumnKey, tractSymmetry bool) []LabelSet {
	sets := make([]LabelSet, len(cols))
	for i, k := range cols {
		s := NewLabelSet(Name(k.Metric), Name(k.TractID), Node(k.NodeID))
		if tractSymmetry {
			sym, _ := Symmetrize(k.TractID)
			s[Name(sym)] = struct{}{}
		}
		sets[i] = s
	}

	return sets
}

// Dicts returns a field-name view of each column, parallel to cols.
// FieldSymmetric is present only with tractSymmetry.
func Dicts(cols []table.ColumnKey, tractSymmetry bool) []Fields {
	out := make([]Fields, len(cols))
	for i, k := range cols {
		f := Fields{
			FieldMetric: k.Metric,
			FieldTract:  k.TractID,
			FieldNode:   strconv.Itoa(k.NodeID),
		}
		if tractSymmetry {
			f[FieldSymmetric], _ = Symmetrize(k.TractID)
		}
		out[i] = f
	}

	return out
}
