package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const longCSV = `subjectID,tractID,nodeID,metric,value
s2,Left CST,0,FA,0.4
s2,Left CST,1,FA,NaN
s1,Left CST,0,FA,0.5
s1,Left CST,1,FA,0.6
`

const wideCSV = `subjectID,tractID,nodeID,FA,MD
s1,Left CST,0,0.5,1
s1,Left CST,1,0.6,2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// run executes the command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), err
}

func lines(s ...string) string { return strings.Join(s, "\n") + "\n" }

func TestBuildCommand(t *testing.T) {
	in := writeFile(t, "nodes.csv", longCSV)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults",
			args: []string{"build", in},
			want: lines(
				"subjectID,FA/Left CST/0,FA/Left CST/1,bias",
				"s1,0.5,0.6,1",
				"s2,0.4,0.4,1",
			),
		},
		{
			name: "no bias",
			args: []string{"build", in, "--no-bias"},
			want: lines(
				"subjectID,FA/Left CST/0,FA/Left CST/1",
				"s1,0.5,0.6",
				"s2,0.4,0.4",
			),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildCommand_OutputFileAndWide(t *testing.T) {
	in := writeFile(t, "nodes.csv", wideCSV)
	out := filepath.Join(t.TempDir(), "features.csv")

	stdout, err := run(t, "build", in, "--format", "wide", "-o", out, "-v")
	require.NoError(t, err)
	require.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	want := lines(
		"subjectID,FA/Left CST/0,FA/Left CST/1,MD/Left CST/0,MD/Left CST/1,bias",
		"s1,0.5,0.6,1,2,1",
	)
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupsAndLabelsCommands(t *testing.T) {
	in := writeFile(t, "nodes.csv", wideCSV)

	got, err := run(t, "groups", in, "--format", "wide")
	require.NoError(t, err)
	if diff := cmp.Diff(lines(
		"0\tFA/Left CST\t0-1",
		"1\tMD/Left CST\t2-3",
		"-\tbias\t4",
	), got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}

	got, err = run(t, "labels", in, "--format", "wide")
	require.NoError(t, err)
	if diff := cmp.Diff(lines(
		"0\tFA/Left CST/0\tCST,FA,Left CST,0",
		"1\tFA/Left CST/1\tCST,FA,Left CST,1",
		"2\tMD/Left CST/0\tCST,Left CST,MD,0",
		"3\tMD/Left CST/1\tCST,Left CST,MD,1",
	), got); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	got, err = run(t, "labels", in, "--format", "wide", "--symmetry=false")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "0\tFA/Left CST/0\tFA,Left CST,0\n"), got)
}

func TestConfigFileAndOverride(t *testing.T) {
	in := writeFile(t, "nodes.csv", wideCSV)
	cfg := writeFile(t, "afq.yaml", "format: wide\nadd_bias: false\n")

	got, err := run(t, "build", in, "-c", cfg)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "subjectID,FA/Left CST/0,FA/Left CST/1,MD/Left CST/0,MD/Left CST/1\n"), got)

	got, err = run(t, "build", in, "-c", cfg, "--no-bias=false")
	require.NoError(t, err)
	require.Contains(t, got, ",bias\n")
}

func TestCommandErrors(t *testing.T) {
	in := writeFile(t, "nodes.csv", wideCSV)

	_, err := run(t, "build", in) // wide file read as long
	require.Error(t, err)

	_, err = run(t, "build", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	_, err = run(t, "build", in, "--format", "tall")
	require.Error(t, err)

	_, err = run(t, "build")
	require.Error(t, err)
}
