// SPDX-License-Identifier: MIT

package velocity

import "math"

// signChoices lists the signs a coordinate of magnitude m may take, positive
// first. A zero coordinate has a single choice.
var (
	signsZero    = []int{1}
	signsNonZero = []int{1, -1}
)

func signChoices(m int) []int {
	if m == 0 {
		return signsZero
	}

	return signsNonZero
}

// shellStart3D is the number of the first velocity of shell k: every vector
// with max-norm below k precedes it, (2k-1)³ of them.
func shellStart3D(k int) int {
	if k == 0 {
		return 0
	}
	s := 2*k - 1

	return s * s * s
}

// walkShell3D visits the velocities of shell k in numbering order until
// visit returns false. It reports whether the walk was stopped.
//
// Order: magnitude triples k >= i >= j, i and j ascending; for each triple
// its distinct permutations (lexicographic from sorted); for each
// permutation every sign choice, x outermost and positive first.
func walkShell3D(k int, visit func(c [MaxDim]int) bool) bool {
	var perm [MaxDim]int
	for i := 0; i <= k; i++ {
		for j := 0; j <= i; j++ {
			perm = [MaxDim]int{j, i, k}
			for {
				for _, sx := range signChoices(perm[0]) {
					for _, sy := range signChoices(perm[1]) {
						for _, sz := range signChoices(perm[2]) {
							if !visit([MaxDim]int{sx * perm[0], sy * perm[1], sz * perm[2]}) {
								return true
							}
						}
					}
				}
				if !NextPermutation(perm[:]) {
					break
				}
			}
		}
	}

	return false
}

func encode3D(c [MaxDim]int) int {
	k := max(abs(c[0]), abs(c[1]), abs(c[2]))
	num := shellStart3D(k)
	walkShell3D(k, func(w [MaxDim]int) bool {
		if w == c {
			return false
		}
		num++

		return true
	})

	return num
}

func decode3D(num int) [MaxDim]int {
	k := (icbrt(num) + 1) / 2
	count := shellStart3D(k)
	var out [MaxDim]int
	walkShell3D(k, func(w [MaxDim]int) bool {
		if count == num {
			out = w
			return false
		}
		count++

		return true
	})

	return out
}

// icbrt returns floor(cbrt(n)) for n >= 0.
func icbrt(n int) int {
	r := int(math.Cbrt(float64(n)))
	for r > 0 && r*r*r > n {
		r--
	}
	for (r+1)*(r+1)*(r+1) <= n {
		r++
	}

	return r
}
