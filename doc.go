// Package afqinsight turns tractometry measurements into group-annotated
// feature matrices and maps model coefficients back onto white-matter tracts.
//
// 🚀 What is afqinsight?
//
//	A set of small, pure packages that take long-form tract profiles
//	(subject × tract × node × metric → value) to a dense design matrix and
//	back:
//		• table   : validated measurement records, CSV readers (long & wide)
//		• nodewise: per-series interpolation along the node axis
//		• matrix  : row-major Dense/Vector storage, column medians, gonum adapter
//		• features: pivot, median imputation, group index, bias column
//		• labels  : per-column label sets with bilateral tract symmetry
//		• selector: select/remove/shuffle column groups, Transformer wrappers
//		• coef    : coefficient vectors folded by tract and metric
//
// ✨ Guarantees:
//
//   - Deterministic: rows follow sorted subject ids, columns the sorted
//     (metric, tract, node) universe.
//   - No hidden state: every operation is a function of its inputs; random
//     shuffles use a call-local or caller-supplied generator.
//   - Errors, not panics: sentinel errors per package, checked with errors.Is.
//
// Data flow:
//
//	table → nodewise → features → labels → selector
//	                          ↘ coef (after a model is fitted on the columns)
//
// The afqfeatures command (cmd/afqfeatures) drives the pipeline from CSV.
package afqinsight
