package labels_test

import (
	"testing"

	"github.com/fagan2888/afqinsight/labels"
	"github.com/fagan2888/afqinsight/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymmetrize(t *testing.T) {
	cases := []struct {
		in, want string
		stripped bool
	}{
		{"Left Cingulum", "Cingulum", true},
		{"Right Arcuate", "Arcuate", true},
		{"Callosum Forceps Major", "Callosum Forceps Major", false},
		{"CST_L", "CST_L", false},
		{"Upper Left SLF", "Upper Left SLF", false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := labels.Symmetrize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.stripped, ok)
		})
	}
}

func TestDerive_Symmetry(t *testing.T) {
	cols := []table.ColumnKey{
		{Metric: "FA", TractID: "Left Cingulum", NodeID: 5},
		{Metric: "MD", TractID: "Callosum", NodeID: 0},
	}

	sets := labels.Derive(cols, true)
	require.Len(t, sets, 2)
	assert.True(t, sets[0].ContainsAll([]labels.Label{
		labels.Name("FA"), labels.Name("Left Cingulum"), labels.Node(5), labels.Name("Cingulum"),
	}))
	assert.Len(t, sets[0], 4)
	assert.Len(t, sets[1], 3, "unprefixed tract adds nothing")

	plain := labels.Derive(cols, false)
	assert.False(t, plain[0].Contains(labels.Name("Cingulum")))
	assert.Len(t, plain[0], 3)
}

func TestLabel_NodeVersusName(t *testing.T) {
	s := labels.NewLabelSet(labels.Node(5))
	assert.True(t, s.Contains(labels.Node(5)))
	assert.False(t, s.Contains(labels.Name("5")))
	assert.Equal(t, "5", labels.Node(5).String())

	n, ok := labels.Node(5).NodeID()
	assert.True(t, ok)
	assert.Equal(t, 5, n)
	_, ok = labels.Name("FA").NodeID()
	assert.False(t, ok)
}

func TestLabelSet_Labels(t *testing.T) {
	s := labels.NewLabelSet(labels.Node(10), labels.Name("MD"), labels.Node(2), labels.Name("CST"), labels.Name("MD"))
	assert.Equal(t, []labels.Label{
		labels.Name("CST"), labels.Name("MD"), labels.Node(2), labels.Node(10),
	}, s.Labels())
	assert.True(t, s.ContainsAll(nil))
	assert.False(t, s.ContainsAll(labels.Names("CST", "FA")))
}

func TestDicts(t *testing.T) {
	cols := []table.ColumnKey{{Metric: "FA", TractID: "Right SLF", NodeID: 7}}

	assert.Equal(t, []labels.Fields{{
		labels.FieldMetric:    "FA",
		labels.FieldTract:     "Right SLF",
		labels.FieldNode:      "7",
		labels.FieldSymmetric: "SLF",
	}}, labels.Dicts(cols, true))

	plain := labels.Dicts(cols, false)
	_, ok := plain[0][labels.FieldSymmetric]
	assert.False(t, ok)
}
