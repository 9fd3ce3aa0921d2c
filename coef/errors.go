// SPDX-License-Identifier: MIT

package coef

import "errors"

var (
	// ErrLengthMismatch indicates a coefficient vector not parallel to the columns.
	ErrLengthMismatch = errors.New("coef: coefficients do not match the columns")

	// ErrUnknownTract indicates a requested tract absent from the columns.
	ErrUnknownTract = errors.New("coef: tract not present in columns")
)
