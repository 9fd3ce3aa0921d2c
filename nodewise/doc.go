// SPDX-License-Identifier: MIT

// Package nodewise fills missing tractometry values along the node axis.
//
// 🚀 What does it do?
//
//	Every (metric, tract, subject) series is a function of node position.
//	Missing nodes are filled from the same series only; information never
//	crosses into another metric, tract or subject.
//
// ✨ Policies:
//   - Interior (default): linear interpolation between the nearest valid
//     neighbours; before the first / after the last valid node the nearest
//     valid value is repeated (no extrapolation).
//   - Extrapolate: identical inside the valid range; outside it the first or
//     last valid segment is extended linearly.
//
// A series with a single valid value is filled with that constant under both
// policies. A series with no valid value is an error (ErrUndefinedSeries).
//
// ⚙️ Usage:
//
//	opts := nodewise.DefaultOptions()
//	opts.Policy = nodewise.Extrapolate
//	filled, err := nodewise.Interpolate(tbl, &opts)
//
// Performance:
//
//   - Time:   O(n log n) for grouping, O(k) per series of k nodes
//   - Memory: O(n)
package nodewise
