// SPDX-License-Identifier: MIT

package coef

import (
	"fmt"
	"math"
	"slices"

	"github.com/fagan2888/afqinsight/labels"
	"github.com/fagan2888/afqinsight/matrix"
	"github.com/fagan2888/afqinsight/selector"
	"github.com/fagan2888/afqinsight/table"
	"gonum.org/v1/gonum/floats"
)

// MetricCoefs is the coefficient sub-vector of one metric.
type MetricCoefs struct {
	Metric string
	Coef   matrix.Vector
}

// TractCoefs holds the per-metric sub-vectors of one tract, metrics sorted.
type TractCoefs struct {
	Tract   string
	Metrics []MetricCoefs
}

// Grouped is the tract → metric nesting returned by ByGroups, tracts sorted.
type Grouped []TractCoefs

// Tracts returns the tract names in order.
func (g Grouped) Tracts() []string {
	out := make([]string, len(g))
	for i, tc := range g {
		out[i] = tc.Tract
	}

	return out
}

// Lookup returns the sub-vector of (tract, metric).
func (g Grouped) Lookup(tract, metric string) (matrix.Vector, bool) {
	for _, tc := range g {
		if tc.Tract != tract {
			continue
		}
		for _, mc := range tc.Metrics {
			if mc.Metric == metric {
				return mc.Coef, true
			}
		}
		return nil, false
	}

	return nil, false
}

// ByGroups splits beta into tract → metric sub-vectors.
// Columns are matched on exact tract and metric names (no tract symmetry).
// With dropZeros, a tract whose coefficients are all zero is omitted, and so
// is every all-zero metric of a kept tract.
// Errors:
//   - ErrLengthMismatch when len(beta) != len(cols).
//
// Complexity: O(t*m*c) for t tracts, m metrics and c columns.
func ByGroups(beta matrix.Vector, cols []table.ColumnKey, dropZeros bool) (Grouped, error) {
	if len(beta) != len(cols) {
		return nil, fmt.Errorf("ByGroups: %d coefficients for %d columns: %w", len(beta), len(cols), ErrLengthMismatch)
	}
	sets := labels.Derive(cols, false)
	tracts, metrics := universes(cols)

	out := make(Grouped, 0, len(tracts))
	for _, tract := range tracts {
		all, err := pick(beta, sets, tract)
		if err != nil {
			return nil, fmt.Errorf("ByGroups: %w", err)
		}
		if dropZeros && allZero(all) {
			continue
		}
		tc := TractCoefs{Tract: tract, Metrics: make([]MetricCoefs, 0, len(metrics))}
		for _, metric := range metrics {
			v, err := pick(beta, sets, tract, metric)
			if err != nil {
				return nil, fmt.Errorf("ByGroups: %w", err)
			}
			if dropZeros && allZero(v) {
				continue
			}
			tc.Metrics = append(tc.Metrics, MetricCoefs{Metric: metric, Coef: v})
		}
		out = append(out, tc)
	}

	return out, nil
}

// UnfoldByMetric concatenates, for each metric in sorted order, the
// (tract, metric) sub-vectors along tractOrder. A nil tractOrder means
// CanonicalTractNames().
// Errors:
//   - ErrLengthMismatch when len(beta) != len(cols).
//   - ErrUnknownTract when tractOrder names a tract absent from cols.
func UnfoldByMetric(beta matrix.Vector, cols []table.ColumnKey, tractOrder []string) ([]MetricCoefs, error) {
	grouped, err := ByGroups(beta, cols, false)
	if err != nil {
		return nil, fmt.Errorf("UnfoldByMetric: %w", err)
	}
	if tractOrder == nil {
		tractOrder = canonicalTractNames
	}
	present := grouped.Tracts()
	for _, tract := range tractOrder {
		if !slices.Contains(present, tract) {
			return nil, fmt.Errorf("UnfoldByMetric: %q: %w", tract, ErrUnknownTract)
		}
	}

	_, metrics := universes(cols)
	out := make([]MetricCoefs, len(metrics))
	for i, metric := range metrics {
		v := make(matrix.Vector, 0)
		for _, tract := range tractOrder {
			part, _ := grouped.Lookup(tract, metric)
			v = append(v, part...)
		}
		out[i] = MetricCoefs{Metric: metric, Coef: v}
	}

	return out, nil
}

// universes returns the sorted distinct tracts and metrics of cols.
func universes(cols []table.ColumnKey) (tracts, metrics []string) {
	for _, k := range cols {
		tracts = append(tracts, k.TractID)
		metrics = append(metrics, k.Metric)
	}
	slices.Sort(tracts)
	slices.Sort(metrics)

	return slices.Compact(tracts), slices.Compact(metrics)
}

// pick selects the entries of beta whose column carries every name.
func pick(beta matrix.Vector, sets []labels.LabelSet, names ...string) (matrix.Vector, error) {
	out, err := selector.SelectGroup(beta, labels.Names(names...), sets)
	if err != nil {
		return nil, err
	}

	return out.(matrix.Vector), nil
}

// allZero reports whether v has no non-zero entry; an empty v counts as zero.
func allZero(v matrix.Vector) bool {
	return floats.Norm(v, math.Inf(1)) == 0
}
