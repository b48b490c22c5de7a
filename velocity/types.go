// SPDX-License-Identifier: MIT

package velocity

import (
	"math"
	"strconv"
	"strings"
)

// Spatial dimensions supported by the numbering.
const (
	MinDim = 1
	MaxDim = 3
)

// MaxIndex is the largest velocity number the codec handles. Numbers fit
// in a uint32, which keeps every intermediate product inside an int64.
const MaxIndex = math.MaxUint32

// Velocity is one discrete velocity of a lattice: its dimension, its number
// in the numbering convention and its integer components.
// A Velocity is immutable once built, so a single *Velocity may be shared
// freely between stencils.
type Velocity struct {
	dim int
	num int
	c   [MaxDim]int // components beyond dim are zero
}

// New builds the velocity with the given number in dimension dim.
// Returns ErrBadDimension, ErrNegativeNum or ErrOutOfRange (num > MaxIndex)
// on invalid input.
// Complexity: O(1) in 1D/2D, O(k²) in 3D for shell k.
func New(dim, num int) (*Velocity, error) {
	c, err := decode(dim, num)
	if err != nil {
		return nil, velocityErrorf("New", err)
	}

	return &Velocity{dim: dim, num: num, c: c}, nil
}

// FromComponents builds the velocity with the given components; the
// dimension is the number of components (1, 2 or 3).
//
//	v, _ := FromComponents(1, 1) // num 5 in 2D
//
// Returns ErrBadDimension for zero or more than three components and
// ErrOutOfRange when the number would be above MaxIndex.
func FromComponents(comps ...int) (*Velocity, error) {
	dim := len(comps)
	if dim < MinDim || dim > MaxDim {
		return nil, velocityErrorf("FromComponents", ErrBadDimension)
	}
	var c [MaxDim]int
	copy(c[:], comps)
	num, err := encodeChecked(dim, c)
	if err != nil {
		return nil, velocityErrorf("FromComponents", err)
	}

	return &Velocity{dim: dim, num: num, c: c}, nil
}

// Dim returns the spatial dimension.
func (v *Velocity) Dim() int { return v.dim }

// Num returns the number of the velocity.
func (v *Velocity) Num() int { return v.num }

// VX returns the x component.
func (v *Velocity) VX() int { return v.c[0] }

// VY returns the y component, 0 when Dim() < 2.
func (v *Velocity) VY() int { return v.c[1] }

// VZ returns the z component, 0 when Dim() < 3.
func (v *Velocity) VZ() int { return v.c[2] }

// Component returns the component along axis (0=x, 1=y, 2=z).
// Returns ErrAxisOutOfRange when axis is not in [0, Dim()).
func (v *Velocity) Component(axis int) (int, error) {
	if axis < 0 || axis >= v.dim {
		return 0, velocityErrorf("Component", ErrAxisOutOfRange)
	}

	return v.c[axis], nil
}

// Components returns a copy of the Dim() components.
func (v *Velocity) Components() []int {
	out := make([]int, v.dim)
	copy(out, v.c[:v.dim])

	return out
}

// Equal reports whether v and w are the same velocity in the same dimension.
func (v *Velocity) Equal(w *Velocity) bool {
	if v == nil || w == nil {
		return v == w
	}

	return v.dim == w.dim && v.num == w.num && v.c == w.c
}

// String renders the velocity as "(num: vx, vy, vz)", e.g. "(5: 1, 1)".
func (v *Velocity) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(v.num))
	sb.WriteString(": ")
	for axis := 0; axis < v.dim; axis++ {
		if axis > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v.c[axis]))
	}
	sb.WriteByte(')')

	return sb.String()
}
