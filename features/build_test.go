package features_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/fagan2888/afqinsight/features"
	"github.com/fagan2888/afqinsight/nodewise"
	"github.com/fagan2888/afqinsight/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

// gridTable builds a complete table; value encodes subject, metric, tract and node.
func gridTable(t testing.TB, subjects, metrics, tracts []string, nodes int) *table.Table {
	t.Helper()
	var recs []table.Record
	for si, s := range subjects {
		for mi, m := range metrics {
			for ti, tr := range tracts {
				for n := 0; n < nodes; n++ {
					recs = append(recs, table.Record{
						SubjectID: s, TractID: tr, NodeID: n, Metric: m,
						Value: float64(si*1000 + mi*100 + ti*10 + n),
					})
				}
			}
		}
	}
	tbl, err := table.New(recs)
	require.NoError(t, err)

	return tbl
}

func mustTable(t *testing.T, recs ...table.Record) *table.Table {
	t.Helper()
	tbl, err := table.New(recs)
	require.NoError(t, err)

	return tbl
}

func row(t *testing.T, fm *features.FeatureMatrix, i int) []float64 {
	t.Helper()
	r, err := fm.X.Row(i)
	require.NoError(t, err)

	return r
}

// TestBuild_RoundTrip covers 2 subjects × 2 tracts × 3 nodes × 2 metrics.
func TestBuild_RoundTrip(t *testing.T) {
	tbl := gridTable(t, []string{"s2", "s1"}, []string{"MD", "FA"}, []string{"CST", "ARC"}, 3)

	fm, err := features.Build(tbl)
	require.NoError(t, err)

	rows, cols := fm.X.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 13, cols)
	assert.Equal(t, []string{"s1", "s2"}, fm.Subjects)
	require.Len(t, fm.Columns, 12)
	assert.Equal(t, table.ColumnKey{Metric: "FA", TractID: "ARC", NodeID: 0}, fm.Columns[0])
	assert.Equal(t, table.ColumnKey{Metric: "MD", TractID: "CST", NodeID: 2}, fm.Columns[11])

	require.Len(t, fm.Groups, 4)
	for _, g := range fm.Groups {
		assert.Len(t, g, 3)
	}
	assert.Equal(t, features.Group{3, 4, 5}, fm.Groups[1])
	assert.Equal(t, []features.GroupKey{
		{Metric: "FA", TractID: "ARC"}, {Metric: "FA", TractID: "CST"},
		{Metric: "MD", TractID: "ARC"}, {Metric: "MD", TractID: "CST"},
	}, fm.GroupKeys)

	bias, ok := fm.BiasIndex()
	require.True(t, ok)
	assert.Equal(t, 12, bias)
	col, err := fm.X.Column(bias)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, col)

	// s2 was listed first in the input: subject index 0 in gridTable.
	// MD is metric index 0, CST tract index 0.
	v, err := fm.X.At(1, 11)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = fm.X.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1000+100+10.0, v)
}

// TestBuild_NoBias drops the ones column.
func TestBuild_NoBias(t *testing.T) {
	tbl := gridTable(t, []string{"a", "b", "c"}, []string{"FA"}, []string{"T"}, 4)

	fm, err := features.Build(tbl, features.WithBias(false))
	require.NoError(t, err)

	_, ok := fm.BiasIndex()
	assert.False(t, ok)
	assert.Equal(t, 4, fm.X.Cols())
	ids, err := fm.GroupIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, ids)
}

// TestBuild_GroupPartition checks every non-bias column sits in exactly one group.
func TestBuild_GroupPartition(t *testing.T) {
	tbl := gridTable(t, []string{"a", "b"}, []string{"AD", "FA", "MD"}, []string{"T1", "T2", "T3", "T4"}, 5)

	fm, err := features.Build(tbl)
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, g := range fm.Groups {
		for _, j := range g {
			seen[j]++
		}
	}
	assert.Len(t, seen, len(fm.Columns))
	for j := range fm.Columns {
		assert.Equal(t, 1, seen[j], "column %d", j)
	}

	ids, err := fm.GroupIDs()
	require.NoError(t, err)
	bias, _ := fm.BiasIndex()
	assert.Equal(t, features.NoGroup, ids[bias])
	for j, k := range fm.Columns {
		assert.Equal(t, fm.GroupKeys[ids[j]], features.GroupKey{Metric: k.Metric, TractID: k.TractID})
	}
}

// TestBuild_MedianImputation fills a subject lacking a whole tract.
func TestBuild_MedianImputation(t *testing.T) {
	tbl := mustTable(t,
		table.Record{SubjectID: "s1", TractID: "T1", NodeID: 0, Metric: "FA", Value: 1},
		table.Record{SubjectID: "s1", TractID: "T1", NodeID: 1, Metric: "FA", Value: 10},
		table.Record{SubjectID: "s2", TractID: "T1", NodeID: 0, Metric: "FA", Value: 3},
		table.Record{SubjectID: "s2", TractID: "T1", NodeID: 1, Metric: "FA", Value: 30},
		table.Record{SubjectID: "s1", TractID: "T2", NodeID: 0, Metric: "FA", Value: 5},
		table.Record{SubjectID: "s1", TractID: "T2", NodeID: 1, Metric: "FA", Value: 5},
		table.Record{SubjectID: "s2", TractID: "T2", NodeID: 0, Metric: "FA", Value: 6},
		table.Record{SubjectID: "s2", TractID: "T2", NodeID: 1, Metric: "FA", Value: 6},
		table.Record{SubjectID: "s3", TractID: "T2", NodeID: 0, Metric: "FA", Value: 7},
		table.Record{SubjectID: "s3", TractID: "T2", NodeID: 1, Metric: "FA", Value: 7},
	)

	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	fm, err := features.Build(tbl, features.WithBias(false), features.WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 20, 7, 7}, row(t, fm, 2))
	assert.Equal(t, []float64{1, 10, 5, 5}, row(t, fm, 0))

	require.Len(t, h.Entries, 1)
	assert.Equal(t, 2, h.Entries[0].Fields["imputed"])
	assert.Equal(t, "interior", h.Entries[0].Fields["policy"])
}

// TestBuild_MissingData reports the column nobody measured.
func TestBuild_MissingData(t *testing.T) {
	tbl := mustTable(t,
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 0, Metric: "FA", Value: 1},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 1, Metric: "FA", Value: 1},
		table.Record{SubjectID: "s1", TractID: "B", NodeID: 0, Metric: "MD", Value: 2},
		table.Record{SubjectID: "s1", TractID: "B", NodeID: 1, Metric: "MD", Value: 2},
		table.Record{SubjectID: "s2", TractID: "A", NodeID: 0, Metric: "FA", Value: 3},
		table.Record{SubjectID: "s2", TractID: "A", NodeID: 1, Metric: "FA", Value: 3},
	)

	_, err := features.Build(tbl)
	require.ErrorIs(t, err, features.ErrMissingData)
	assert.Contains(t, err.Error(), "FA/B/0")
}

// TestBuild_PartialSeriesUsesOwnValues fills absent nodes of a series from the
// subject's own values instead of other subjects' medians.
func TestBuild_PartialSeriesUsesOwnValues(t *testing.T) {
	tbl := mustTable(t,
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 0, Metric: "FA", Value: 1},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 1, Metric: "FA", Value: 2},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 2, Metric: "FA", Value: 100},
		table.Record{SubjectID: "s2", TractID: "A", NodeID: 0, Metric: "FA", Value: 5},
		table.Record{SubjectID: "s2", TractID: "A", NodeID: 1, Metric: "FA", Value: 6},
	)

	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	fm, err := features.Build(tbl, features.WithBias(false), features.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 100}, row(t, fm, 0))
	assert.Equal(t, []float64{5, 6, 6}, row(t, fm, 1))
	require.Len(t, h.Entries, 1)
	assert.Equal(t, 0, h.Entries[0].Fields["imputed"])

	fm, err = features.Build(tbl, features.WithBias(false), features.WithExtrapolation(true))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7}, row(t, fm, 1))
}

// TestBuild_TractsWithDifferentNodes builds when tracts are sampled at
// different node sets.
func TestBuild_TractsWithDifferentNodes(t *testing.T) {
	var recs []table.Record
	for i, subj := range []string{"s1", "s2"} {
		base := float64(10 * (i + 1))
		for n := 0; n < 3; n++ {
			recs = append(recs, table.Record{SubjectID: subj, TractID: "A", NodeID: n, Metric: "FA", Value: base + float64(n)})
		}
		for n := 0; n < 2; n++ {
			recs = append(recs, table.Record{SubjectID: subj, TractID: "B", NodeID: n, Metric: "FA", Value: -base - float64(n)})
		}
	}
	tbl := mustTable(t, recs...)

	fm, err := features.Build(tbl)
	require.NoError(t, err)
	assert.Equal(t, 7, fm.X.Cols(), "six node columns plus bias")
	assert.Equal(t, []float64{10, 11, 12, -10, -11, -11, 1}, row(t, fm, 0))
	assert.Equal(t, []float64{20, 21, 22, -20, -21, -21, 1}, row(t, fm, 1))
	require.Len(t, fm.Groups, 2)
	assert.Equal(t, features.Group{3, 4, 5}, fm.Groups[1])
}

// TestBuild_Policies contrasts interior and extrapolated series ends.
func TestBuild_Policies(t *testing.T) {
	tbl := mustTable(t,
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 0, Metric: "FA", Value: nan},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 1, Metric: "FA", Value: 1},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 2, Metric: "FA", Value: 2},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 3, Metric: "FA", Value: nan},
	)

	fm, err := features.Build(tbl, features.WithBias(false))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2}, row(t, fm, 0))

	fm, err = features.Build(tbl, features.WithBias(false), features.WithExtrapolation(true))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, row(t, fm, 0))
}

// TestBuild_Errors covers empty input and undefined series.
func TestBuild_Errors(t *testing.T) {
	_, err := features.Build(nil)
	require.ErrorIs(t, err, features.ErrEmptyTable)

	_, err = features.Build(&table.Table{})
	require.ErrorIs(t, err, features.ErrEmptyTable)

	tbl := mustTable(t,
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 0, Metric: "FA", Value: nan},
		table.Record{SubjectID: "s1", TractID: "A", NodeID: 1, Metric: "FA", Value: nan},
	)
	_, err = features.Build(tbl)
	require.ErrorIs(t, err, nodewise.ErrUndefinedSeries)
}

func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { features.WithLogger(nil) })
}

func TestMembership(t *testing.T) {
	ids, err := features.Membership(features.GroupIndex{{0, 2}, {1}}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, features.NoGroup}, ids)

	_, err = features.Membership(features.GroupIndex{{0, 4}}, 4)
	require.ErrorIs(t, err, features.ErrGroupOutOfRange)
}

func TestGroupKeyString(t *testing.T) {
	assert.Equal(t, "FA/Left Arcuate", fmt.Sprint(features.GroupKey{Metric: "FA", TractID: "Left Arcuate"}))
}
