// SPDX-License-Identifier: MIT

package stencil

import (
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lbmstencil/velocity"
)

// View methods other than Index read the Set and panic on the zero View.

// Index returns the elementary stencil index k of the view.
func (v View) Index() int { return v.k }

// Len returns the number of velocities of the stencil.
func (v View) Len() int { return len(v.set.stencils[v.k]) }

// Num returns the velocity numbers in configured order.
func (v View) Num() []int { return nums(v.set.stencils[v.k]) }

// VX returns the x components.
func (v View) VX() []int { return component(v.set.stencils[v.k], 0) }

// VY returns the y components, nil when the set is 1D.
func (v View) VY() []int { return v.axis(1) }

// VZ returns the z components, nil unless the set is 3D.
func (v View) VZ() []int { return v.axis(2) }

func (v View) axis(axis int) []int {
	if axis >= v.set.dim {
		return nil
	}

	return component(v.set.stencils[v.k], axis)
}

// Velocities returns the shared velocities of the stencil.
func (v View) Velocities() []*velocity.Velocity { return slices.Clone(v.set.stencils[v.k]) }

// IndexTable returns the num -> position table of the stencil.
func (v View) IndexTable() []int { return slices.Clone(v.set.tables[v.k]) }

// Position returns the position of velocity num in the stencil and whether
// the stencil holds it.
func (v View) Position(num int) (int, bool) {
	return lookup(v.set.tables[v.k], num, v.set.sentinel)
}

// Dense returns the velocities as a Len() x Dim matrix, one row per
// velocity in configured order; nil for an empty stencil.
func (v View) Dense() *mat.Dense { return dense(v.set.dim, v.set.stencils[v.k]) }

// UniqueDense is Dense for the pool.
func (s *Set) UniqueDense() *mat.Dense { return dense(s.dim, s.unique) }

func dense(dim int, vs []*velocity.Velocity) *mat.Dense {
	if len(vs) == 0 {
		return nil
	}
	data := make([]float64, 0, len(vs)*dim)
	for _, v := range vs {
		for _, c := range v.Components() {
			data = append(data, float64(c))
		}
	}

	return mat.NewDense(len(vs), dim, data)
}
