// SPDX-License-Identifier: MIT

package velocity

// Origin selects the point reflection in Symmetric.
const Origin = -1

// Symmetric returns the mirror image of v.
//
//   - axis == Origin: every component is negated (reflection through the origin).
//   - axis in [0, Dim()): the component along axis keeps its sign and every
//     other component is negated (reflection across that axis).
//
// Returns ErrAxisOutOfRange for any other axis, and ErrOutOfRange when the
// mirror image is numbered above MaxIndex (only possible in the last,
// partially numbered shell). Symmetric is an involution:
// applying it twice with the same axis gives back v.
func (v *Velocity) Symmetric(axis int) (*Velocity, error) {
	if axis < Origin || axis >= v.dim {
		return nil, velocityErrorf("Symmetric", ErrAxisOutOfRange)
	}
	c := v.c
	for a := 0; a < v.dim; a++ {
		if a != axis {
			c[a] = -c[a]
		}
	}

	num, err := encodeChecked(v.dim, c)
	if err != nil {
		return nil, velocityErrorf("Symmetric", err)
	}

	return &Velocity{dim: v.dim, num: num, c: c}, nil
}
