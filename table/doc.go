// SPDX-License-Identifier: MIT

// Package table holds the long-form tractometry measurement model.
//
// A Table is an ordered collection of Records, one per
// (subject, tract, node, metric) key. Missing measurements are explicit rows
// whose Value is NaN; a key that was never measured is simply absent.
//
// What lives here:
//
//   - Record, SeriesKey and ColumnKey, the composite keys every other package
//     indexes by.
//   - New, which copies and validates records (no empty identifiers, no
//     duplicate keys).
//   - Sorted universes (Subjects, Tracts, Metrics, Nodes) and Series grouping,
//     the inputs of node-wise interpolation and of the pivot.
//   - ReadLong and ReadWide, CSV readers for the two layouts AFQ produces.
//
// Determinism:
//
//	Every listing is sorted; map iteration never leaks into an output order.
//
//	import "github.com/fagan2888/afqinsight/table"
//
//	t, err := table.New([]table.Record{
//	  {SubjectID: "s1", TractID: "Left Arcuate", NodeID: 0, Metric: "FA", Value: 0.41},
//	})
package table
