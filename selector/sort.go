// SPDX-License-Identifier: MIT

package selector

import (
	"cmp"
	"math"
	"slices"
)

// Scored pairs a feature descriptor with its importance score.
type Scored[F any] struct {
	Feature F
	Score   float64
}

// SortFeatures pairs features with scores and sorts them by descending
// absolute score. Ties keep input order. Extra elements of the longer
// input are ignored.
func SortFeatures[F any](features []F, scores []float64) []Scored[F] {
	n := min(len(features), len(scores))
	out := make([]Scored[F], n)
	for i := 0; i < n; i++ {
		out[i] = Scored[F]{Feature: features[i], Score: scores[i]}
	}
	slices.SortStableFunc(out, func(a, b Scored[F]) int {
		return cmp.Compare(math.Abs(b.Score), math.Abs(a.Score))
	})

	return out
}
