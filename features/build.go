// SPDX-License-Identifier: MIT

package features

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/apex/log"
	"github.com/fagan2888/afqinsight/matrix"
	"github.com/fagan2888/afqinsight/nodewise"
	"github.com/fagan2888/afqinsight/table"
)

// Build converts t into a FeatureMatrix.
// MAIN DESCRIPTION:
//   - Interpolates every (metric, tract, subject) series, pivots subjects to
//     rows and (metric, tract, node) triples to columns, imputes the remaining
//     holes with column medians, derives the GroupIndex and appends the bias
//     column when requested.
//
// Implementation:
//   - Stage 1: every existing series is reindexed onto the table's node set
//     (Table.Reindex), then filled by nodewise.Interpolate with Interior, or
//     Extrapolate under WithExtrapolation(true).
//   - Stage 2: columns = sorted metrics × sorted tracts × sorted nodes; cells
//     with no record start as NaN.
//   - Stage 3: median imputation, once, in place (matrix.ColumnMedians + matrix.FillNaN).
//     Only subjects with no record at all for a (metric, tract) pair reach it.
//   - Stage 4: group code = metricRank*len(tracts) + tractRank; groups sorted by code.
//   - Stage 5: append a ones column (WithBias, default on).
//
// Errors:
//   - ErrEmptyTable for a nil/empty table.
//   - nodewise.ErrUndefinedSeries (wrapped) for a series with no valid value.
//   - ErrMissingData naming the first column with no value for any subject.
//
// Complexity:
//   - Time O(n log n + s*c*log s) for n records, s subjects, c columns. Space O(s*c).
func Build(t *table.Table, opts ...Option) (*FeatureMatrix, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTable
	}
	cfg := newBuildConfig(opts...)

	policy := nodewise.Interior
	if cfg.extrapolate {
		policy = nodewise.Extrapolate
	}
	filled, err := nodewise.Interpolate(t.Reindex(t.Nodes()), &nodewise.Options{Policy: policy})
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	subjects := filled.Subjects()
	metrics, tracts, nodes := filled.Metrics(), filled.Tracts(), filled.Nodes()
	cols := columnKeys(metrics, tracts, nodes)

	X, err := pivot(filled, subjects, cols)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	n, err := impute(X, cols)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	cfg.logger.WithFields(log.Fields{
		"subjects": len(subjects),
		"columns":  len(cols),
		"imputed":  n,
		"policy":   policy.String(),
	}).Debug("feature matrix pivoted")

	groups, keys := groupIndex(cols, metrics, tracts)

	fm := &FeatureMatrix{
		X:         X,
		Subjects:  subjects,
		Columns:   cols,
		Groups:    groups,
		GroupKeys: keys,
		bias:      -1,
	}
	if cfg.bias {
		if fm.X, err = X.AppendColumn(1); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		fm.bias = len(cols)
	}

	return fm, nil
}

// columnKeys enumerates the product of the three universes in column order.
func columnKeys(metrics, tracts []string, nodes []int) []table.ColumnKey {
	cols := make([]table.ColumnKey, 0, len(metrics)*len(tracts)*len(nodes))
	for _, m := range metrics {
		for _, tr := range tracts {
			for _, nd := range nodes {
				cols = append(cols, table.ColumnKey{Metric: m, TractID: tr, NodeID: nd})
			}
		}
	}

	return cols
}

// pivot lays the records of t out as subjects × cols; absent cells are NaN.
func pivot(t *table.Table, subjects []string, cols []table.ColumnKey) (*matrix.Dense, error) {
	X, err := matrix.NewDense(len(subjects), len(cols))
	if err != nil {
		return nil, err
	}
	X.Apply(func(_, _ int, _ float64) float64 { return math.NaN() })

	rowOf := make(map[string]int, len(subjects))
	for i, s := range subjects {
		rowOf[s] = i
	}
	colOf := make(map[table.ColumnKey]int, len(cols))
	for j, k := range cols {
		colOf[k] = j
	}

	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		k := table.ColumnKey{Metric: r.Metric, TractID: r.TractID, NodeID: r.NodeID}
		if err = X.Set(rowOf[r.SubjectID], colOf[k], r.Value); err != nil {
			return nil, err
		}
	}

	return X, nil
}

// impute fills NaN cells with their column median and returns how many were filled.
func impute(X *matrix.Dense, cols []table.ColumnKey) (int, error) {
	medians, err := matrix.ColumnMedians(X)
	if errors.Is(err, matrix.ErrEmptyColumn) {
		j := firstEmptyColumn(X)
		return 0, fmt.Errorf("column %s: %w", cols[j], ErrMissingData)
	}
	if err != nil {
		return 0, err
	}

	return matrix.FillNaN(X, medians)
}

// firstEmptyColumn returns the first all-NaN column of X, or -1.
func firstEmptyColumn(X *matrix.Dense) int {
	empty := make([]bool, X.Cols())
	for j := range empty {
		empty[j] = true
	}
	X.Do(func(_, j int, v float64) bool {
		if !math.IsNaN(v) {
			empty[j] = false
		}
		return true
	})

	return slices.Index(empty, true)
}

// groupIndex collects column positions per (metric, tract) code.
// cols is in column order, so codes appear ascending and members ascending.
func groupIndex(cols []table.ColumnKey, metrics, tracts []string) (GroupIndex, []GroupKey) {
	metricRank := rankOf(metrics)
	tractRank := rankOf(tracts)

	byCode := make(map[int]Group)
	codes := make([]int, 0)
	for j, k := range cols {
		code := metricRank[k.Metric]*len(tracts) + tractRank[k.TractID]
		if _, ok := byCode[code]; !ok {
			codes = append(codes, code)
		}
		byCode[code] = append(byCode[code], j)
	}
	slices.Sort(codes)

	groups := make(GroupIndex, len(codes))
	keys := make([]GroupKey, len(codes))
	for g, code := range codes {
		groups[g] = byCode[code]
		keys[g] = GroupKey{Metric: metrics[code/len(tracts)], TractID: tracts[code%len(tracts)]}
	}

	return groups, keys
}

// rankOf maps each element of a sorted universe to its position.
func rankOf(universe []string) map[string]int {
	rank := make(map[string]int, len(universe))
	for i, v := range universe {
		rank[v] = i
	}

	return rank
}
