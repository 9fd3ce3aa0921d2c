// SPDX-License-Identifier: MIT

// Package labels derives per-column label sets from feature column keys.
//
// Every feature column (metric, tract, node) gets the set
// {metric, tract, node}; with tract symmetry on, the bilateral name of the
// tract ("Left Cingulum" → "Cingulum") joins the set as well. Group queries
// match a column when the query is a subset of its label set, so "Cingulum"
// selects both hemispheres while "Left Cingulum" selects one.
//
// Node positions are kept as integers: Node(5) and Name("5") are different
// labels.
package labels
