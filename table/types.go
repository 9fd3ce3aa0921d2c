// SPDX-License-Identifier: MIT

// Package table: domain types shared by the feature pipeline.
package table

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Missing is the value stored for an explicit missing measurement.
var Missing = math.NaN()

// Record is one long-form measurement row.
// Value is NaN when the measurement is missing.
type Record struct {
	SubjectID string  // subject identifier
	TractID   string  // tract name, e.g. "Left Arcuate"
	NodeID    int     // sampling position along the tract
	Metric    string  // scalar measurement type, e.g. "FA"
	Value     float64 // measurement; NaN marks a missing value
}

// IsMissing reports whether the record carries no measurement.
func (r Record) IsMissing() bool { return math.IsNaN(r.Value) }

// recordKey is the uniqueness key of a Record.
type recordKey struct {
	subject, tract, metric string
	node                   int
}

func (r Record) key() recordKey {
	return recordKey{subject: r.SubjectID, tract: r.TractID, metric: r.Metric, node: r.NodeID}
}

// SeriesKey identifies one node-axis series: a fixed metric, tract and subject.
// Interpolation never crosses series boundaries.
type SeriesKey struct {
	Metric    string
	TractID   string
	SubjectID string
}

// Compare orders series keys by metric, tract, then subject.
func (k SeriesKey) Compare(o SeriesKey) int {
	if c := cmp.Compare(k.Metric, o.Metric); c != 0 {
		return c
	}
	if c := cmp.Compare(k.TractID, o.TractID); c != 0 {
		return c
	}

	return cmp.Compare(k.SubjectID, o.SubjectID)
}

// String renders the key for diagnostics.
func (k SeriesKey) String() string {
	return fmt.Sprintf("metric=%q tract=%q subject=%q", k.Metric, k.TractID, k.SubjectID)
}

// ColumnKey identifies one feature-matrix column.
// Columns are totally ordered by (Metric, TractID, NodeID).
type ColumnKey struct {
	Metric  string
	TractID string
	NodeID  int
}

// Compare returns -1, 0 or +1 following the lexicographic
// (Metric, TractID, NodeID) order.
// Complexity: O(len(name)).
func (k ColumnKey) Compare(o ColumnKey) int {
	if c := cmp.Compare(k.Metric, o.Metric); c != 0 {
		return c
	}
	if c := cmp.Compare(k.TractID, o.TractID); c != 0 {
		return c
	}

	return cmp.Compare(k.NodeID, o.NodeID)
}

// String renders the key as "metric/tract/node".
func (k ColumnKey) String() string {
	return fmt.Sprintf("%s/%s/%d", k.Metric, k.TractID, k.NodeID)
}

// SortColumnKeys sorts keys in place into canonical column order.
func SortColumnKeys(keys []ColumnKey) {
	slices.SortFunc(keys, ColumnKey.Compare)
}

// Series is one node-axis series of a Table.
// Rows are positions into Table.Records, sorted by ascending NodeID.
type Series struct {
	Key  SeriesKey
	Rows []int
}
