// SPDX-License-Identifier: MIT

package nodewise

import "fmt"

// Policy selects how missing values outside the valid node range are filled.
//
//   - Interior   : repeat the nearest valid endpoint value.
//   - Extrapolate: extend the nearest valid segment linearly.
//
// Both policies interpolate linearly inside the valid range.
type Policy int

const (
	// Interior interpolates inside the valid range and holds endpoints outside it.
	Interior Policy = iota

	// Extrapolate interpolates inside the valid range and extrapolates outside it.
	Extrapolate
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Interior:
		return "interior"
	case Extrapolate:
		return "extrapolate"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Options configures Interpolate.
//
// Fields:
//   - Policy: Interior or Extrapolate.
type Options struct {
	Policy Policy
}

// DefaultOptions returns the Interior policy.
func DefaultOptions() Options {
	return Options{Policy: Interior}
}
