// SPDX-License-Identifier: MIT

package stencil

import (
	"slices"

	"github.com/katalvlaran/lbmstencil/velocity"
)

// Dim returns the spatial dimension shared by every elementary stencil.
func (s *Set) Dim() int { return s.dim }

// NumStencils returns the number of elementary stencils.
func (s *Set) NumStencils() int { return len(s.stencils) }

// Len returns the number of unique velocities.
func (s *Set) Len() int { return len(s.unique) }

// Sentinel returns the value stored in index-table slots of absent velocities.
func (s *Set) Sentinel() int { return s.sentinel }

// Unique returns the pooled velocities sorted by number.
func (s *Set) Unique() []*velocity.Velocity { return slices.Clone(s.unique) }

// UniqueNum returns the numbers of the pooled velocities, ascending.
func (s *Set) UniqueNum() []int { return nums(s.unique) }

// UVX returns the x components of the pooled velocities.
func (s *Set) UVX() []int { return component(s.unique, 0) }

// UVY returns the y components of the pooled velocities, nil when Dim() < 2.
func (s *Set) UVY() []int { return s.uniqueComponent(1) }

// UVZ returns the z components of the pooled velocities, nil when Dim() < 3.
func (s *Set) UVZ() []int { return s.uniqueComponent(2) }

func (s *Set) uniqueComponent(axis int) []int {
	if axis >= s.dim {
		return nil
	}

	return component(s.unique, axis)
}

// VMax returns the per-axis maximum component over the pool (len Dim()),
// nil when the set is empty.
func (s *Set) VMax() []int { return slices.Clone(s.vmax) }

// VMin returns the per-axis minimum component over the pool (len Dim()),
// nil when the set is empty.
func (s *Set) VMin() []int { return slices.Clone(s.vmin) }

// Offsets returns the start of each elementary stencil in a flat
// concatenation of all stencils, plus the total length at the end.
func (s *Set) Offsets() []int { return slices.Clone(s.offsets) }

// NV returns the number of velocities of elementary stencil k.
func (s *Set) NV(k int) (int, error) {
	if err := s.checkStencil(k); err != nil {
		return 0, stencilErrorf("NV", err)
	}

	return len(s.stencils[k]), nil
}

// Velocities returns the velocities of elementary stencil k in the order
// they were configured. Entries are the pooled *velocity.Velocity values.
func (s *Set) Velocities(k int) ([]*velocity.Velocity, error) {
	if err := s.checkStencil(k); err != nil {
		return nil, stencilErrorf("Velocities", err)
	}

	return slices.Clone(s.stencils[k]), nil
}

// ComponentOf returns the components along axis of elementary stencil k.
// Returns ErrStencilIndex or ErrAxisOutOfRange.
func (s *Set) ComponentOf(k, axis int) ([]int, error) {
	if err := s.checkStencil(k); err != nil {
		return nil, stencilErrorf("ComponentOf", err)
	}
	if axis < 0 || axis >= s.dim {
		return nil, stencilErrorf("ComponentOf", ErrAxisOutOfRange)
	}

	return component(s.stencils[k], axis), nil
}

// IndexTable returns the table of elementary stencil k: entry num is the
// position of velocity num in Velocities(k), or Sentinel() when absent.
// Its length is the largest number of the stencil plus one.
// Callers must check for the sentinel before using an entry; View.Position
// does both in one call.
func (s *Set) IndexTable(k int) ([]int, error) {
	if err := s.checkStencil(k); err != nil {
		return nil, stencilErrorf("IndexTable", err)
	}

	return slices.Clone(s.tables[k]), nil
}

// UniqueIndexTable is IndexTable for the pool.
func (s *Set) UniqueIndexTable() []int { return slices.Clone(s.uniqueTable) }

// UniquePosition returns the position of velocity num in Unique().
func (s *Set) UniquePosition(num int) (int, bool) {
	return lookup(s.uniqueTable, num, s.sentinel)
}

// View returns the read-only view of elementary stencil k.
func (s *Set) View(k int) (View, error) {
	if err := s.checkStencil(k); err != nil {
		return View{}, stencilErrorf("View", err)
	}

	return View{set: s, k: k}, nil
}

// Views returns one View per elementary stencil, in order.
func (s *Set) Views() []View {
	out := make([]View, len(s.stencils))
	for k := range out {
		out[k] = View{set: s, k: k}
	}

	return out
}

func (s *Set) checkStencil(k int) error {
	if k < 0 || k >= len(s.stencils) {
		return ErrStencilIndex
	}

	return nil
}

func lookup(table []int, num, sentinel int) (int, bool) {
	if num < 0 || num >= len(table) || table[num] == sentinel {
		return 0, false
	}

	return table[num], true
}

func nums(vs []*velocity.Velocity) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.Num()
	}

	return out
}

// component assumes axis < dim.
func component(vs []*velocity.Velocity, axis int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i], _ = v.Component(axis)
	}

	return out
}
