// SPDX-License-Identifier: MIT

// Package stencil assembles one or more elementary velocity stencils of a
// Lattice-Boltzmann scheme into a deduplicated, randomly addressable set.
//
// What:
//
//   - Config is the validated configuration mapping: dim (or a box to infer
//     it from) and, per elementary stencil k = 0, 1, ..., its velocity numbers.
//   - Set decodes every number once (see package velocity), keeps the union
//     as a pool sorted by number and lets each elementary stencil reference the
//     shared *velocity.Velocity values, so a velocity used by two stencils
//     exists once in memory.
//   - Index tables map a velocity number to its position in a stencil (or in
//     the pool) in O(1); absent numbers hold the sentinel (DefaultSentinel).
//   - View is the read-only projection of one elementary stencil.
//
// Why:
//
//   - Solvers gather/scatter between the global numbering and per-scheme
//     dense arrays; the tables are that mapping.
//
// Example (D2Q9 with a D2Q5 sharing its velocities):
//
//	set, _ := stencil.Build(2, [][]int{
//		{0, 1, 2, 3, 4, 5, 6, 7, 8},
//		{0, 2, 4, 5, 1},
//	})
//	set.Len()           // 9 unique velocities
//	set.IndexTable(1)   // [0 4 1 1000 2 3]
//
// Complexity:
//
//   - Build: O(N log N + Σ decode) for N indices over all stencils; 3D decode
//     walks one shell per velocity.
//   - Lookups through index tables: O(1).
//
// Errors:
//
//   - ErrUnknownDimension:  neither dim nor a usable box is given.
//   - ErrBadDimension:      dim outside 1..3.
//   - ErrNegativeNum:       a negative velocity number.
//   - ErrIndexTooLarge:     a velocity number above MaxIndex.
//   - ErrDuplicateVelocity: a number repeated inside one elementary stencil.
//   - ErrSentinelCollision: the sentinel is a valid position.
//   - ErrStencilIndex:      elementary stencil index out of range.
//   - ErrAxisOutOfRange:    axis >= dim.
//
// Zero elementary stencils is legal: the set is empty, extrema are nil and
// every table is empty.
package stencil
