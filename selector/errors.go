// SPDX-License-Identifier: MIT

package selector

import "errors"

var (
	// ErrShape indicates an array whose rank is not 1 or 2, or an Array
	// implementation the package cannot index.
	ErrShape = errors.New("selector: x must be a one- or two-dimensional array")

	// ErrLabelSetsMismatch indicates label sets not parallel to the columns of x.
	ErrLabelSetsMismatch = errors.New("selector: label sets do not match the columns")

	// ErrGroupsMismatch indicates a group-id array not parallel to the columns of x.
	ErrGroupsMismatch = errors.New("selector: group ids do not match the columns")

	// ErrInvalidConfig indicates a wrapper configuration that cannot be applied.
	ErrInvalidConfig = errors.New("selector: invalid configuration")
)
