// SPDX-License-Identifier: MIT

// Package lbmstencil numbers the discrete velocities of Lattice-Boltzmann
// schemes and assembles velocity stencils.
//
// What is in here?
//
//	velocity/: the numbering convention: num <-> (vx[, vy[, vz]]) in 1D, 2D
//	            and 3D, shells, permutations, symmetries
//	stencil/ : configuration mapping, deduplicated stencil sets, per-scheme
//	            views, num -> position index tables
//	logging/ : minimal Logger interface over log/slog
//	examples/: runnable demonstrations
//
// Quick example:
//
//	set, _ := stencil.Build(2, [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8}})
//	view, _ := set.View(0)
//	view.VX() // [0 1 0 -1 0 1 -1 -1 1]
//	view.VY() // [0 0 1 0 -1 1 1 -1 -1]
//
//	go get github.com/katalvlaran/lbmstencil
package lbmstencil
