// SPDX-License-Identifier: MIT

// Package coef maps a flat coefficient vector, one entry per feature column,
// back onto tracts and metrics.
//
// ByGroups nests the coefficients tract → metric → node sub-vector, with
// tracts and metrics in sorted order. UnfoldByMetric concatenates, for every
// metric, the per-tract sub-vectors along a fixed tract order (by default
// CanonicalTractNames), so blocks line up across models fitted on differently
// ordered columns.
package coef
