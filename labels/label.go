// SPDX-License-Identifier: MIT

package labels

import (
	"cmp"
	"slices"
	"strconv"
)

// Label is one matching token: either a name (metric, tract) or a node position.
// The zero value is the empty name.
type Label struct {
	name   string
	node   int
	isNode bool
}

// Name returns a name label.
func Name(s string) Label { return Label{name: s} }

// Node returns a node-position label.
func Node(n int) Label { return Label{node: n, isNode: true} }

// Names converts strings into a name-label query.
func Names(names ...string) []Label {
	out := make([]Label, len(names))
	for i, s := range names {
		out[i] = Name(s)
	}

	return out
}

// IsNode reports whether l is a node label.
func (l Label) IsNode() bool { return l.isNode }

// NodeID returns the node position and true for node labels.
func (l Label) NodeID() (int, bool) { return l.node, l.isNode }

// String returns the name, or the decimal node position.
func (l Label) String() string {
	if l.isNode {
		return strconv.Itoa(l.node)
	}

	return l.name
}

// Compare orders names before nodes, names lexically, nodes numerically.
func (l Label) Compare(o Label) int {
	if l.isNode != o.isNode {
		if l.isNode {
			return 1
		}
		return -1
	}
	if l.isNode {
		return cmp.Compare(l.node, o.node)
	}

	return cmp.Compare(l.name, o.name)
}

// LabelSet is an unordered set of labels.
type LabelSet map[Label]struct{}

// NewLabelSet builds a set from ls; duplicates collapse.
func NewLabelSet(ls ...Label) LabelSet {
	s := make(LabelSet, len(ls))
	for _, l := range ls {
		s[l] = struct{}{}
	}

	return s
}

// Contains reports whether l is in s.
func (s LabelSet) Contains(l Label) bool {
	_, ok := s[l]
	return ok
}

// ContainsAll reports whether every label of query is in s.
// An empty query is contained in every set.
func (s LabelSet) ContainsAll(query []Label) bool {
	for _, l := range query {
		if !s.Contains(l) {
			return false
		}
	}

	return true
}

// Labels returns the members in Compare order.
func (s LabelSet) Labels() []Label {
	out := make([]Label, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	slices.SortFunc(out, Label.Compare)

	return out
}
