// SPDX-License-Identifier: MIT

package features

import "errors"

var (
	// ErrEmptyTable is returned when Build gets a nil or empty table.
	ErrEmptyTable = errors.New("features: empty table")

	// ErrMissingData indicates a feature column with no valid value for any
	// subject, so its median is undefined.
	ErrMissingData = errors.New("features: column has no data for any subject")

	// ErrGroupOutOfRange indicates a group member outside [0, nCols).
	ErrGroupOutOfRange = errors.New("features: group index out of range")
)
