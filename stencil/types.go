// SPDX-License-Identifier: MIT

package stencil

import (
	"github.com/katalvlaran/lbmstencil/velocity"
)

// MaxIndex is the largest velocity number a Set accepts.
const MaxIndex = velocity.MaxIndex

// Set is the assembled collection of elementary stencils. It is immutable
// once built; every accessor returns copies, while the *velocity.Velocity
// values themselves are shared (they are immutable too).
type Set struct {
	dim      int
	sentinel int

	// unique is sorted by number; stencils[k][i] points into it.
	unique   []*velocity.Velocity
	stencils [][]*velocity.Velocity
	// offsets[k] is the start of stencil k in a flat concatenation.
	offsets []int

	vmax, vmin []int // len dim, nil when unique is empty

	tables      [][]int // tables[k][num] = position in stencils[k] or sentinel
	uniqueTable []int   // uniqueTable[num] = position in unique or sentinel
}

// View is the read-only projection of elementary stencil k of a Set.
// Obtain one from Set.View or Set.Views; the zero View is not bound to a
// Set and every method but Index panics.
type View struct {
	set *Set
	k   int
}
