// SPDX-License-Identifier: MIT

package stencil

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/lbmstencil/velocity"
)

// New builds the Set described by cfg: the dimension comes from
// cfg.Dimension and the elementary stencils from cfg.Velocities.
// Configuration errors abort the build; no partial Set is returned.
// With the default sentinel more than 1000 unique velocities fail with
// ErrSentinelCollision; pass WithSentinel(-1) for larger sets.
func New(cfg Config, opts ...Option) (*Set, error) {
	bc := newBuildConfig(opts...)
	dim, err := cfg.Dimension()
	if err != nil {
		bc.logger.Error("stencil: the spatial dimension cannot be determined", "error", err)
		return nil, stencilErrorf("New", err)
	}
	stencils := cfg.Velocities()
	if cfg.NumberOfSchemes != 0 && cfg.NumberOfSchemes != len(stencils) {
		bc.logger.Warn("stencil: number_of_schemes disagrees with the elementary stencils found",
			"number_of_schemes", cfg.NumberOfSchemes, "found", len(stencils))
	}
	set, err := build(dim, stencils, bc)
	if err != nil {
		return nil, stencilErrorf("New", err)
	}

	return set, nil
}

// Build builds the Set of the elementary stencils given as velocity numbers
// in dimension dim. Each stencil keeps the order it is given in; numbers
// must be distinct inside a stencil and may be shared between stencils.
// As with New, more than DefaultSentinel unique velocities need
// WithSentinel(-1) or another sentinel that cannot be a position.
//
//	set, err := Build(3, [][]int{seq(19), seq(27)}) // D3Q19 + D3Q27
//
// Complexity: O(N log N) plus one decode per unique velocity.
func Build(dim int, stencils [][]int, opts ...Option) (*Set, error) {
	if dim < velocity.MinDim || dim > velocity.MaxDim {
		return nil, stencilErrorf("Build", ErrBadDimension)
	}
	set, err := build(dim, stencils, newBuildConfig(opts...))
	if err != nil {
		return nil, stencilErrorf("Build", err)
	}

	return set, nil
}

// build runs the assembly steps in order:
//  1. validate each stencil and union the numbers in a bitmap;
//  2. decode the pool once, ascending by number;
//  3. point every stencil entry at its pooled velocity (binary search);
//  4. extrema, offsets and index tables.
func build(dim int, stencils [][]int, bc buildConfig) (*Set, error) {
	pool := roaring.New()
	for _, nums := range stencils {
		bm, err := stencilBitmap(nums)
		if err != nil {
			return nil, err
		}
		pool.Or(bm)
	}
	if bc.sentinel >= 0 && uint64(bc.sentinel) < pool.GetCardinality() {
		return nil, ErrSentinelCollision
	}

	s := &Set{
		dim:      dim,
		sentinel: bc.sentinel,
		unique:   make([]*velocity.Velocity, 0, pool.GetCardinality()),
		stencils: make([][]*velocity.Velocity, len(stencils)),
		offsets:  make([]int, 1, len(stencils)+1),
	}
	it := pool.Iterator()
	for it.HasNext() {
		v, err := velocity.New(dim, int(it.Next()))
		if err != nil {
			return nil, err
		}
		s.unique = append(s.unique, v)
	}

	for k, nums := range stencils {
		vs := make([]*velocity.Velocity, len(nums))
		for i, num := range nums {
			pos, _ := slices.BinarySearchFunc(s.unique, num, func(v *velocity.Velocity, n int) int {
				return v.Num() - n
			})
			vs[i] = s.unique[pos]
		}
		s.stencils[k] = vs
		s.offsets = append(s.offsets, s.offsets[k]+len(vs))
	}

	s.vmax, s.vmin = extrema(s.unique)
	s.tables = make([][]int, len(s.stencils))
	for k, vs := range s.stencils {
		s.tables[k] = indexTable(vs, s.sentinel)
	}
	s.uniqueTable = indexTable(s.unique, s.sentinel)

	bc.logger.Debug("stencil: set assembled",
		"dim", dim, "stencils", len(s.stencils), "unique", len(s.unique))

	return s, nil
}

// stencilBitmap validates the numbers of one elementary stencil and returns
// them as a bitmap.
func stencilBitmap(nums []int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, num := range nums {
		if num < 0 {
			return nil, ErrNegativeNum
		}
		if uint64(num) > MaxIndex {
			return nil, ErrIndexTooLarge
		}
		if !bm.CheckedAdd(uint32(num)) {
			return nil, ErrDuplicateVelocity
		}
	}

	return bm, nil
}

// extrema returns the per-axis maximum and minimum components, nil for an
// empty pool.
func extrema(vs []*velocity.Velocity) (vmax, vmin []int) {
	if len(vs) == 0 {
		return nil, nil
	}
	vmax = vs[0].Components()
	vmin = vs[0].Components()
	for _, v := range vs[1:] {
		for axis, c := range v.Components() {
			vmax[axis] = max(vmax[axis], c)
			vmin[axis] = min(vmin[axis], c)
		}
	}

	return vmax, vmin
}

// indexTable maps each number of vs to its position in vs; the table spans
// 0..max(num) and every other slot holds sentinel.
func indexTable(vs []*velocity.Velocity, sentinel int) []int {
	if len(vs) == 0 {
		return []int{}
	}
	top := 0
	for _, v := range vs {
		top = max(top, v.Num())
	}
	table := make([]int, top+1)
	for i := range table {
		table[i] = sentinel
	}
	for pos, v := range vs {
		table[v.Num()] = pos
	}

	return table
}
