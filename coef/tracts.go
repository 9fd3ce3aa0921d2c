// SPDX-License-Identifier: MIT

package coef

import "slices"

// canonicalTractNames is the AFQ bundle order, left hemisphere front to back,
// the callosal forceps, then the right hemisphere in mirror order.
var canonicalTractNames = []string{
	"Left Arcuate",
	"Left SLF",
	"Left Uncinate",
	"Left ILF",
	"Left IFOF",
	"Left Cingulum Hippocampus",
	"Left Thalamic Radiation",
	"Left Corticospinal",
	"Left Cingulum Cingulate",
	"Callosum Forceps Minor",
	"Callosum Forceps Major",
	"Right Cingulum Cingulate",
	"Right Corticospinal",
	"Right Thalamic Radiation",
	"Right Cingulum Hippocampus",
	"Right IFOF",
	"Right ILF",
	"Right Uncinate",
	"Right SLF",
	"Right Arcuate",
}

// CanonicalTractNames returns a copy of the default tract order.
func CanonicalTractNames() []string { return slices.Clone(canonicalTractNames) }
