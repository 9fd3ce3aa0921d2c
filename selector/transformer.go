// SPDX-License-Identifier: MIT

package selector

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fagan2888/afqinsight/features"
	"github.com/fagan2888/afqinsight/labels"
	"github.com/fagan2888/afqinsight/matrix"
)

// DefaultTopN is the number of groups TopNGroupsExtractor keeps when TopN is 0.
const DefaultTopN = 10

// Transformer is a fit-then-transform column selection step.
type Transformer interface {
	// Fit learns nothing for the selectors of this package.
	Fit(x matrix.Array) error
	// Transform applies the configured selection to x.
	Transform(x matrix.Array) (matrix.Array, error)
}

// Compile-time assertions for Transformer conformance.
var (
	_ Transformer = (*GroupExtractor)(nil)
	_ Transformer = (*TopNGroupsExtractor)(nil)
)

// FitTransform calls Fit then Transform on x.
func FitTransform(t Transformer, x matrix.Array) (matrix.Array, error) {
	if err := t.Fit(x); err != nil {
		return nil, err
	}

	return t.Transform(x)
}

// ExtractConfig configures a GroupExtractor.
//
// Fields:
//   - Extract: wanted group ids.
//   - Groups : group id of every column, parallel to the columns of x.
type ExtractConfig struct {
	Extract GroupIDs
	Groups  GroupIDs
}

// GroupExtractor keeps the columns whose group is in ExtractConfig.Extract.
type GroupExtractor struct {
	cfg ExtractConfig
}

// NewGroupExtractor validates cfg. Wanted ids are group ids or
// features.NoGroup, which selects the bias column of FeatureMatrix.GroupIDs.
// Ids below NoGroup are rejected.
func NewGroupExtractor(cfg ExtractConfig) (*GroupExtractor, error) {
	for _, id := range cfg.Extract.ids {
		if id < features.NoGroup {
			return nil, fmt.Errorf("NewGroupExtractor: group id %d: %w", id, ErrInvalidConfig)
		}
	}

	return &GroupExtractor{cfg: ExtractConfig{
		Extract: cfg.Extract.clone(),
		Groups:  cfg.Groups.clone(),
	}}, nil
}

// Fit is a no-op.
func (*GroupExtractor) Fit(matrix.Array) error { return nil }

// Transform runs Extract; unset ids pass x through.
func (e *GroupExtractor) Transform(x matrix.Array) (matrix.Array, error) {
	return Extract(x, e.cfg.Groups, e.cfg.Extract)
}

// TopNConfig configures a TopNGroupsExtractor.
//
// Fields:
//   - TopN              : how many leading queries to keep; 0 means DefaultTopN.
//   - LabelsByImportance: label queries, most important first.
//   - AllLabels         : label set of every column of x.
type TopNConfig struct {
	TopN               int
	LabelsByImportance [][]labels.Label
	AllLabels          []labels.LabelSet
}

// TopNGroupsExtractor keeps the columns matching any of the TopN most
// important label queries.
type TopNGroupsExtractor struct {
	cfg TopNConfig
}

// NewTopNGroupsExtractor validates cfg. A negative TopN is rejected.
func NewTopNGroupsExtractor(cfg TopNConfig) (*TopNGroupsExtractor, error) {
	switch {
	case cfg.TopN < 0:
		return nil, fmt.Errorf("NewTopNGroupsExtractor: top_n %d: %w", cfg.TopN, ErrInvalidConfig)
	case cfg.TopN == 0:
		cfg.TopN = DefaultTopN
	}

	return &TopNGroupsExtractor{cfg: cfg.clone()}, nil
}

// clone deep-copies the label inputs, keeping nil as nil.
func (c TopNConfig) clone() TopNConfig {
	out := TopNConfig{TopN: c.TopN}
	if c.LabelsByImportance != nil {
		out.LabelsByImportance = make([][]labels.Label, len(c.LabelsByImportance))
		for i, q := range c.LabelsByImportance {
			out.LabelsByImportance[i] = slices.Clone(q)
		}
	}
	if c.AllLabels != nil {
		out.AllLabels = make([]labels.LabelSet, len(c.AllLabels))
		for i, set := range c.AllLabels {
			out.AllLabels[i] = maps.Clone(set)
		}
	}

	return out
}

// Fit is a no-op.
func (*TopNGroupsExtractor) Fit(matrix.Array) error { return nil }

// Transform runs SelectGroups with the first TopN queries, or returns x
// unchanged when either label input is nil.
func (e *TopNGroupsExtractor) Transform(x matrix.Array) (matrix.Array, error) {
	if e.cfg.LabelsByImportance == nil || e.cfg.AllLabels == nil {
		return x, nil
	}
	n := min(e.cfg.TopN, len(e.cfg.LabelsByImportance))

	return SelectGroups(x, e.cfg.LabelsByImportance[:n], e.cfg.AllLabels)
}
