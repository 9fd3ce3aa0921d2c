// SPDX-License-Identifier: MIT

// Package features pivots a long-form measurement table into a dense,
// group-annotated feature matrix.
//
// 🚀 What does it do?
//
//	Build runs the whole pipeline in one call:
//	  1. fill missing values along the node axis (package nodewise);
//	  2. pivot to one row per subject and one column per (metric, tract, node);
//	  3. impute each remaining hole with the median of its column;
//	  4. group columns sharing a (metric, tract) pair;
//	  5. optionally append a bias column of ones.
//
// ✨ Guarantees:
//   - Rows follow the sorted subject ids.
//   - Columns follow the product of the sorted metric, tract and node
//     universes, in lexicographic (metric, tract, node) order.
//   - Groups partition every non-bias column and are ordered metric first,
//     tract second.
//   - A column without any value in the dataset is an error (ErrMissingData).
//
// ⚙️ Usage:
//
//	fm, err := features.Build(tbl,
//	    features.WithExtrapolation(true),
//	    features.WithBias(false),
//	)
//	if errors.Is(err, features.ErrMissingData) {
//	    // the input has a (metric, tract, node) triple nobody measured
//	}
//
// Options are functional and validated at construction; WithLogger(nil) panics.
package features
