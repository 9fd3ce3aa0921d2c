// SPDX-License-Identifier: MIT

package selector

import "slices"

// GroupIDs is a scalar-or-sequence of group ids.
// The zero value is unset; One and Many build set values.
type GroupIDs struct {
	ids []int
	set bool
}

// One returns a single group id.
func One(id int) GroupIDs { return GroupIDs{ids: []int{id}, set: true} }

// Many returns a sequence of group ids. Many() is set and empty.
func Many(ids ...int) GroupIDs {
	return GroupIDs{ids: slices.Clone(ids), set: true}
}

// IsSet reports whether g was built by One or Many.
func (g GroupIDs) IsSet() bool { return g.set }

// IDs returns a copy of the ids; nil when unset.
func (g GroupIDs) IDs() []int { return slices.Clone(g.ids) }

// Len returns the number of ids.
func (g GroupIDs) Len() int { return len(g.ids) }

func (g GroupIDs) contains(id int) bool { return slices.Contains(g.ids, id) }

func (g GroupIDs) clone() GroupIDs { return GroupIDs{ids: slices.Clone(g.ids), set: g.set} }
