// SPDX-License-Identifier: MIT
// Package table: sentinel errors.
//
// Callers branch with errors.Is; implementations attach context with
// fmt.Errorf("<Op>: ...: %w", ErrX) at the detection site.

package table

import "errors"

var (
	// ErrEmptyTable is returned when a table would hold no records.
	ErrEmptyTable = errors.New("table: no records")

	// ErrEmptyField indicates a record with an empty subject, tract or metric.
	ErrEmptyField = errors.New("table: empty identifier field")

	// ErrDuplicateKey indicates two records sharing (subject, tract, node, metric).
	ErrDuplicateKey = errors.New("table: duplicate record key")

	// ErrMissingColumn indicates a CSV header lacking a required column.
	ErrMissingColumn = errors.New("table: missing required column")

	// ErrMalformedValue indicates a CSV cell that could not be parsed.
	ErrMalformedValue = errors.New("table: malformed value")

	// ErrLengthMismatch indicates a value slice not parallel to the records.
	ErrLengthMismatch = errors.New("table: length mismatch")
)
