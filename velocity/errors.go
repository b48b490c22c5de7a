// SPDX-License-Identifier: MIT

package velocity

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates a spatial dimension outside 1..3.
	ErrBadDimension = errors.New("velocity: dimension must be 1, 2 or 3")

	// ErrNegativeNum indicates a negative velocity number.
	ErrNegativeNum = errors.New("velocity: number must be non-negative")

	// ErrComponentCount indicates that the number of components does not
	// match the requested dimension.
	ErrComponentCount = errors.New("velocity: component count does not match dimension")

	// ErrAxisOutOfRange indicates a symmetry or component axis that is not
	// below the dimension of the velocity.
	ErrAxisOutOfRange = errors.New("velocity: axis out of range")

	// ErrOutOfRange indicates a number above MaxIndex, or components whose
	// number would be above MaxIndex.
	ErrOutOfRange = errors.New("velocity: number out of range")
)

// velocityErrorf prefixes err with the method name, keeping the sentinel
// reachable through errors.Is.
func velocityErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
