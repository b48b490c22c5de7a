// SPDX-License-Identifier: MIT

package velocity

import "slices"

// NextPermutation rearranges a into its lexicographic successor and reports
// true, or, when a is already the last permutation, restores ascending order
// and reports false. Equal values are never swapped, so starting from sorted
// input each distinct permutation is produced exactly once.
// Complexity: O(len(a)).
func NextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		slices.Reverse(a)
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	slices.Reverse(a[i+1:])

	return true
}

// Permutations returns the distinct permutations of a in lexicographic
// order, starting from sorted a. The input is not modified.
//
//	Permutations([]int{0, 0, 1}) // [[0 0 1] [0 1 0] [1 0 0]]
func Permutations(a []int) [][]int {
	cur := slices.Clone(a)
	slices.Sort(cur)
	out := [][]int{slices.Clone(cur)}
	for NextPermutation(cur) {
		out = append(out, slices.Clone(cur))
	}

	return out
}
