// SPDX-License-Identifier: MIT

// Package selector implements the column algebra used in feature selection
// and ablation experiments.
//
// 🚀 What does it do?
//
//	Every operation works on a matrix.Array of rank 1 (a coefficient or
//	score vector) or rank 2 (subjects × columns) and keeps, drops or permutes
//	columns. Columns are addressed in two ways:
//	  • by group id : Extract, against a parallel group-id array;
//	  • by label set: Select/Remove/Shuffle, where a column matches a query
//	    when every query label is in the column's labels.LabelSet.
//
// ✨ Matching rules:
//   - SelectGroups keeps a column matching ANY query.
//   - RemoveGroup drops the columns SelectGroup would keep.
//   - RemoveGroups keeps a column that fails AT LEAST ONE query, so with
//     several queries it is not the complement of SelectGroups.
//   - ShuffleGroup pools the matching sub-block, permutes it as one flat
//     sequence and writes it back; values move across rows and columns.
//
// 🎲 Randomness:
//
//	WithSeed shuffles with a generator local to the call; no other generator
//	is read or advanced. WithRand draws from (and advances) a caller handle.
//	Without options the process-wide math/rand source is used.
//
// ⚙️ Wrappers:
//
//	GroupExtractor and TopNGroupsExtractor expose the selections behind a
//	Fit/Transform interface; unconfigured wrappers pass x through unchanged.
//
// Results never alias the input.
package selector
