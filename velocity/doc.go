// SPDX-License-Identifier: MIT

// Package velocity numbers the discrete velocities of a Lattice-Boltzmann
// scheme: a bijection between a dense index ("num") and an integer velocity
// vector in 1, 2 or 3 spatial dimensions.
//
// What:
//
//   - Velocity is an immutable (dim, num, components) value built from one
//     side of the bijection; the other side is computed.
//   - Encode / Decode are the pure codec pair behind it.
//   - Shell enumerates one "onion shell" of the numbering.
//   - Symmetric reflects a velocity through the origin or across an axis.
//
// The numbering (fixed convention, not configurable):
//
//	1D:  0, 1, -1, 2, -2, 3, -3, ...
//
//	2D:  shells of side 2n+1 around the origin; in shell n the four axis
//	     points (n,0) (0,n) (-n,0) (0,-n) come first, then the corners
//	     (n,n) (-n,n) (-n,-n) (n,-n), then the edge points (n,l) (l,n) ...
//	     for l = 1..n-1, eight per l.
//
//	         6  2  5
//	         3  0  1
//	         7  4  8
//
//	3D:  shells k = max(|vx|,|vy|,|vz|); inside a shell the magnitude
//	     triples k >= i >= j are visited in order, each through its distinct
//	     permutations (lexicographic) and then all sign choices, positive first.
//	     0..18 is D3Q19, 0..26 is D3Q27.
//
// Complexity:
//
//   - 1D, 2D: O(1) both ways.
//   - 3D:     O(k²) both ways (one shell walked, earlier shells skipped in
//     closed form since shell k starts at (2k-1)³).
//
// Errors:
//
//   - ErrBadDimension:   dim outside 1..3.
//   - ErrNegativeNum:    num < 0.
//   - ErrComponentCount: number of components does not match dim.
//   - ErrAxisOutOfRange: symmetry axis >= dim.
//   - ErrOutOfRange:     num > MaxIndex, or components numbered above it.
package velocity
