// SPDX-License-Identifier: MIT

package velocity

import "math"

// r2Impossible marks sign combinations that no integer velocity can produce
// (e.g. vx < 0 with |vx| = |vy| = 0).
const r2Impossible = 1000

// r2 is the position correction of a 2D velocity inside its shell, indexed
// by sign(vx)+1, sign(vy)+1, sign(|vx|-|vy|)+1.
var r2 = [3][3][3]int{
	{{5, 6, 4}, {r2Impossible, r2Impossible, 2}, {2, 5, 3}},
	{{3, r2Impossible, r2Impossible}, {r2Impossible, -1, r2Impossible}, {1, r2Impossible, r2Impossible}},
	{{6, 7, 7}, {r2Impossible, r2Impossible, 0}, {1, 4, 0}},
}

// Shell-relative unit patterns of the 2D numbering. In shell n the axis and
// corner patterns are scaled by n; the edge pattern picks (n, l) per slot.
var (
	axis2D   = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	corner2D = [4][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	// edge2D[s] = (sx, sy, swap): component (sx*n, sy*l), or (sx*l, sy*n) when swap.
	edge2D = [8]struct {
		sx, sy int
		swap   bool
	}{
		{1, 1, false}, {1, 1, true}, {-1, 1, true}, {-1, 1, false},
		{-1, -1, false}, {-1, -1, true}, {1, -1, true}, {1, -1, false},
	}
)

// encode2D: (2·max-1)² skips the inner shells, 8·min·|sign(|vx|-|vy|)|
// selects the edge block and r2 the slot inside the block.
func encode2D(vx, vy int) int {
	avx, avy := abs(vx), abs(vy)
	t3 := sign(avx - avy)
	p := 2*max(avx, avy) - 1
	q := 8 * min(avx, avy) * abs(t3)

	return p*p + q + r2[sign(vx)+1][sign(vy)+1][t3+1]
}

func decode2D(num int) (vx, vy int) {
	if num == 0 {
		return 0, 0
	}
	n := (isqrt(num) + 1) / 2
	p := num - (2*n-1)*(2*n-1)
	switch {
	case p < 4:
		return n * axis2D[p][0], n * axis2D[p][1]
	case p < 8:
		return n * corner2D[p-4][0], n * corner2D[p-4][1]
	default:
		l := p / 8
		e := edge2D[p%8]
		if e.swap {
			return e.sx * l, e.sy * n
		}

		return e.sx * n, e.sy * l
	}
}

// isqrt returns floor(sqrt(n)) for 0 <= n <= MaxIndex.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
