// SPDX-License-Identifier: MIT

package table

import (
	"cmp"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Table is a validated, immutable long-form measurement table.
// The zero value is an empty table; build tables with New.
type Table struct {
	records []Record
}

// New copies records into a Table after structural validation.
//
// Implementation:
//   - Stage 1: reject an empty input (ErrEmptyTable).
//   - Stage 2: reject empty SubjectID/TractID/Metric (ErrEmptyField).
//   - Stage 3: reject repeated (subject, tract, node, metric) keys (ErrDuplicateKey).
//
// Record values are not inspected beyond that; NaN marks a missing value.
// Complexity: O(n) time and memory.
func New(records []Record) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	seen := make(map[recordKey]int, len(records))
	out := make([]Record, len(records))
	for i, r := range records {
		if r.SubjectID == "" || r.TractID == "" || r.Metric == "" {
			return nil, fmt.Errorf("New: record %d: %w", i, ErrEmptyField)
		}
		k := r.key()
		if j, dup := seen[k]; dup {
			return nil, fmt.Errorf("New: records %d and %d (subject=%q tract=%q node=%d metric=%q): %w",
				j, i, r.SubjectID, r.TractID, r.NodeID, r.Metric, ErrDuplicateKey)
		}
		seen[k] = i
		out[i] = r
	}

	return &Table{records: out}, nil
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.records) }

// At returns the i-th record. It panics when i is out of range, like slice indexing.
func (t *Table) At(i int) Record { return t.records[i] }

// Records returns a copy of all records in table order.
func (t *Table) Records() []Record { return slices.Clone(t.records) }

// Subjects returns the sorted distinct subject ids.
func (t *Table) Subjects() []string {
	return distinct(t.records, func(r Record) string { return r.SubjectID })
}

// Tracts returns the sorted distinct tract ids.
func (t *Table) Tracts() []string {
	return distinct(t.records, func(r Record) string { return r.TractID })
}

// Metrics returns the sorted distinct metric names.
func (t *Table) Metrics() []string {
	return distinct(t.records, func(r Record) string { return r.Metric })
}

// Nodes returns the sorted distinct node ids.
func (t *Table) Nodes() []int {
	return distinct(t.records, func(r Record) int { return r.NodeID })
}

// Series groups the records by (metric, tract, subject).
// Series come out sorted by key; rows inside a series are sorted by node id.
// Complexity: O(n log n).
func (t *Table) Series() []Series {
	byKey := make(map[SeriesKey][]int)
	for i, r := range t.records {
		k := SeriesKey{Metric: r.Metric, TractID: r.TractID, SubjectID: r.SubjectID}
		byKey[k] = append(byKey[k], i)
	}

	out := make([]Series, 0, len(byKey))
	for k, rows := range byKey {
		slices.SortFunc(rows, func(a, b int) int {
			return cmp.Compare(t.records[a].NodeID, t.records[b].NodeID)
		})
		out = append(out, Series{Key: k, Rows: rows})
	}
	slices.SortFunc(out, func(a, b Series) int { return a.Key.Compare(b.Key) })

	return out
}

// WithValues returns a new Table with the same keys and the given values,
// values[i] replacing the value of record i. The receiver is left untouched.
func (t *Table) WithValues(values []float64) (*Table, error) {
	if len(values) != len(t.records) {
		return nil, fmt.Errorf("WithValues: got %d values for %d records: %w",
			len(values), len(t.records), ErrLengthMismatch)
	}
	out := slices.Clone(t.records)
	for i := range out {
		out[i].Value = values[i]
	}

	return &Table{records: out}, nil
}

// Reindex returns a new Table in which every (metric, tract, subject) series
// has a record at each of the given nodes. Absent positions are appended as
// Missing records, series by series in key order; existing records keep their
// values and positions. Series with no record at all are not created.
func (t *Table) Reindex(nodes []int) *Table {
	out := slices.Clone(t.records)
	for _, s := range t.Series() {
		have := make(map[int]struct{}, len(s.Rows))
		for _, row := range s.Rows {
			have[t.records[row].NodeID] = struct{}{}
		}
		for _, n := range nodes {
			if _, ok := have[n]; ok {
				continue
			}
			have[n] = struct{}{}
			out = append(out, Record{
				SubjectID: s.Key.SubjectID,
				TractID:   s.Key.TractID,
				NodeID:    n,
				Metric:    s.Key.Metric,
				Value:     Missing,
			})
		}
	}

	return &Table{records: out}
}

// distinct collects the sorted set of field values over records.
func distinct[T constraints.Ordered](records []Record, field func(Record) T) []T {
	seen := make(map[T]struct{})
	out := make([]T, 0)
	for _, r := range records {
		v := field(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}
