// SPDX-License-Identifier: MIT

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Canonical CSV header names.
const (
	ColSubject = "subjectID"
	ColTract   = "tractID"
	ColNode    = "nodeID"
	ColMetric  = "metric"
	ColValue   = "value"
)

// Format selects a CSV layout.
type Format int

const (
	// Long has one row per (subject, tract, node, metric) with a value column.
	Long Format = iota

	// Wide has one row per (subject, tract, node) and one column per metric,
	// the layout AFQ writes to nodes.csv.
	Wide
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case Long:
		return "long"
	case Wide:
		return "wide"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "long" or "wide" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "":
		return Long, nil
	case "wide":
		return Wide, nil
	default:
		return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrMalformedValue)
	}
}

// Read parses r in the given layout.
func Read(r io.Reader, f Format) (*Table, error) {
	switch f {
	case Long:
		return ReadLong(r)
	case Wide:
		return ReadWide(r)
	default:
		return nil, fmt.Errorf("Read: %s: %w", f, ErrMalformedValue)
	}
}

// ReadLong parses a long-form CSV with the columns subjectID, tractID, nodeID,
// metric and value, in any order. Extra columns are ignored. Empty, "NA" and
// "NaN" values are missing measurements.
func ReadLong(r io.Reader) (*Table, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header, ColSubject, ColTract, ColNode, ColMetric, ColValue)
	if err != nil {
		return nil, fmt.Errorf("ReadLong: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after the header
		node, err := parseNode(row[idx[ColNode]])
		if err != nil {
			return nil, fmt.Errorf("ReadLong: line %d: %w", line, err)
		}
		v, err := parseValue(row[idx[ColValue]])
		if err != nil {
			return nil, fmt.Errorf("ReadLong: line %d: %w", line, err)
		}
		records = append(records, Record{
			SubjectID: row[idx[ColSubject]],
			TractID:   row[idx[ColTract]],
			NodeID:    node,
			Metric:    row[idx[ColMetric]],
			Value:     v,
		})
	}

	return New(records)
}

// ReadWide parses a wide CSV: subjectID, tractID and nodeID identify the row
// and every other named column is a metric. Each cell becomes one long-form
// record. Columns with an empty header (a written index) are skipped.
func ReadWide(r io.Reader) (*Table, error) {
	header, rows, err := readAll(r)
	if err != nil {
		return nil, err
	}
	idx, err := columnIndex(header, ColSubject, ColTract, ColNode)
	if err != nil {
		return nil, fmt.Errorf("ReadWide: %w", err)
	}

	metricCols := make([]int, 0, len(header))
	for j, name := range header {
		if name == "" || name == ColSubject || name == ColTract || name == ColNode {
			continue
		}
		metricCols = append(metricCols, j)
	}

	records := make([]Record, 0, len(rows)*len(metricCols))
	for i, row := range rows {
		line := i + 2
		node, err := parseNode(row[idx[ColNode]])
		if err != nil {
			return nil, fmt.Errorf("ReadWide: line %d: %w", line, err)
		}
		for _, j := range metricCols {
			v, err := parseValue(row[j])
			if err != nil {
				return nil, fmt.Errorf("ReadWide: line %d column %q: %w", line, header[j], err)
			}
			records = append(records, Record{
				SubjectID: row[idx[ColSubject]],
				TractID:   row[idx[ColTract]],
				NodeID:    node,
				Metric:    header[j],
				Value:     v,
			})
		}
	}

	return New(records)
}

// readAll reads the header and all data rows.
func readAll(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyTable
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for j := range header {
		header[j] = strings.TrimSpace(header[j])
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}

	return header, rows, nil
}

// columnIndex locates the required columns in header.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(required))
	for j, name := range header {
		idx[name] = j
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
		}
	}

	return idx, nil
}

func parseNode(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("node id %q: %w", s, ErrMalformedValue)
	}

	return n, nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "", "NA", "N/A", "NAN":
		return Missing, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q: %w", s, ErrMalformedValue)
	}

	return v, nil
}
