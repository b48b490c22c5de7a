// SPDX-License-Identifier: MIT

package stencil

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lbmstencil/velocity"
)

var (
	// ErrUnknownDimension indicates that the spatial dimension can be taken
	// neither from an explicit dim nor from a box description.
	ErrUnknownDimension = errors.New("stencil: the spatial dimension cannot be determined")

	// ErrBadDimension indicates an explicit dim outside 1..3.
	// It is the same sentinel as velocity.ErrBadDimension.
	ErrBadDimension = velocity.ErrBadDimension

	// ErrNegativeNum indicates a negative velocity number in a stencil.
	ErrNegativeNum = velocity.ErrNegativeNum

	// ErrAxisOutOfRange indicates a component axis >= dim.
	ErrAxisOutOfRange = velocity.ErrAxisOutOfRange

	// ErrIndexTooLarge indicates a velocity number above MaxIndex.
	// It is the same sentinel as velocity.ErrOutOfRange.
	ErrIndexTooLarge = velocity.ErrOutOfRange

	// ErrDuplicateVelocity indicates a velocity number listed twice in the
	// same elementary stencil.
	ErrDuplicateVelocity = errors.New("stencil: duplicate velocity in elementary stencil")

	// ErrSentinelCollision indicates that the configured sentinel could be a
	// real position, making absent and present entries indistinguishable.
	ErrSentinelCollision = errors.New("stencil: sentinel collides with a valid position")

	// ErrStencilIndex indicates an elementary stencil index out of range.
	ErrStencilIndex = errors.New("stencil: elementary stencil index out of range")
)

// stencilErrorf wraps err with method context; errors.Is still matches the sentinel.
func stencilErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
