// SPDX-License-Identifier: MIT

package nodewise

import (
	"errors"
	"fmt"
	"math"

	"github.com/fagan2888/afqinsight/table"
	"gonum.org/v1/gonum/interp"
)

// Errors:
//   - ErrUndefinedSeries: a series has no non-missing value to fill from.
//   - ErrUnknownPolicy  : Options.Policy is neither Interior nor Extrapolate.
//   - ErrBadSeries      : FillSeries got unsorted/duplicate nodes or mismatched lengths.
var (
	// ErrUndefinedSeries indicates a series with zero non-missing points.
	ErrUndefinedSeries = errors.New("nodewise: series has no valid values")

	// ErrUnknownPolicy indicates an unsupported Policy value.
	ErrUnknownPolicy = errors.New("nodewise: unknown policy")

	// ErrBadSeries indicates nodes that are not strictly increasing or not
	// parallel to the values.
	ErrBadSeries = errors.New("nodewise: nodes must be strictly increasing and parallel to values")
)

// Interpolate returns a new table with every missing value filled from its own
// (metric, tract, subject) series. The input table is not modified.
// A nil opts means DefaultOptions().
// Only positions that have a record are filled; call Table.Reindex first to
// place every series on a common node set.
//
// Tables without missing values come back with identical values under either
// policy.
func Interpolate(t *table.Table, opts *Options) (*table.Table, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Policy != Interior && o.Policy != Extrapolate {
		return nil, fmt.Errorf("Interpolate: %s: %w", o.Policy, ErrUnknownPolicy)
	}

	values := make([]float64, t.Len())
	for i := range values {
		values[i] = t.At(i).Value
	}

	for _, s := range t.Series() {
		nodes := make([]int, len(s.Rows))
		vals := make([]float64, len(s.Rows))
		for k, row := range s.Rows {
			nodes[k] = t.At(row).NodeID
			vals[k] = values[row]
		}
		filled, err := FillSeries(nodes, vals, o.Policy)
		if err != nil {
			return nil, fmt.Errorf("Interpolate(%s): %w", s.Key, err)
		}
		for k, row := range s.Rows {
			values[row] = filled[k]
		}
	}

	return t.WithValues(values)
}

// FillSeries fills the NaN entries of one series.
//
// Algorithm:
//  1. Collect the valid (node, value) pairs in node order.
//  2. No valid pair → ErrUndefinedSeries. One pair → constant fill.
//  3. Otherwise fit a piecewise-linear interpolant through the valid pairs.
//     Inside [first, last] valid node the interpolant gives the value; outside,
//     Interior holds the endpoint (the interpolant's own clamping) while
//     Extrapolate extends the first or last segment.
//
// Valid entries are copied through untouched.
// Complexity: O(k log k) for k nodes.
func FillSeries(nodes []int, values []float64, p Policy) ([]float64, error) {
	if len(nodes) != len(values) {
		return nil, fmt.Errorf("FillSeries: %d nodes, %d values: %w", len(nodes), len(values), ErrBadSeries)
	}
	if p != Interior && p != Extrapolate {
		return nil, fmt.Errorf("FillSeries: %s: %w", p, ErrUnknownPolicy)
	}
	for k := 1; k < len(nodes); k++ {
		if nodes[k] <= nodes[k-1] {
			return nil, fmt.Errorf("FillSeries: node %d after %d: %w", nodes[k], nodes[k-1], ErrBadSeries)
		}
	}

	xs := make([]float64, 0, len(nodes))
	ys := make([]float64, 0, len(nodes))
	for k, v := range values {
		if !math.IsNaN(v) {
			xs = append(xs, float64(nodes[k]))
			ys = append(ys, v)
		}
	}

	out := make([]float64, len(values))
	copy(out, values)
	if len(xs) == len(values) {
		return out, nil
	}

	switch len(xs) {
	case 0:
		return nil, ErrUndefinedSeries
	case 1:
		for k := range out {
			out[k] = ys[0]
		}
		return out, nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("FillSeries: %w", err)
	}

	last := len(xs) - 1
	for k, v := range values {
		if !math.IsNaN(v) {
			continue
		}
		x := float64(nodes[k])
		switch {
		case p == Extrapolate && x < xs[0]:
			out[k] = linear(xs[0], ys[0], xs[1], ys[1], x)
		case p == Extrapolate && x > xs[last]:
			out[k] = linear(xs[last-1], ys[last-1], xs[last], ys[last], x)
		default:
			out[k] = pl.Predict(x)
		}
	}

	return out, nil
}

// linear evaluates the line through (x0,y0) and (x1,y1) at x.
func linear(x0, y0, x1, y1, x float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}
