// SPDX-License-Identifier: MIT

package stencil

import (
	"fmt"
	"strings"
)

// String renders a summary of the set: dimension, extrema and, for every
// elementary stencil, its size and velocities.
//
//	Stencil informations
//		 * spatial dimension: 1
//		 * maximal velocity in each direction: [1]
//		 * minimal velocity in each direction: [-1]
//		 * Informations for each elementary stencil:
//			stencil 0
//			 - number of velocities:  3
//			 - velocities: (0: 0), (1: 1), (2: -1),
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteString("Stencil informations\n")
	fmt.Fprintf(&sb, "\t * spatial dimension: %d\n", s.dim)
	fmt.Fprintf(&sb, "\t * maximal velocity in each direction: %v\n", s.vmax)
	fmt.Fprintf(&sb, "\t * minimal velocity in each direction: %v\n", s.vmin)
	sb.WriteString("\t * Informations for each elementary stencil:\n")
	for k, vs := range s.stencils {
		fmt.Fprintf(&sb, "\t\tstencil %d\n", k)
		fmt.Fprintf(&sb, "\t\t - number of velocities: %2d\n", len(vs))
		sb.WriteString("\t\t - velocities: ")
		for _, v := range vs {
			sb.WriteString(v.String())
			sb.WriteString(", ")
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
