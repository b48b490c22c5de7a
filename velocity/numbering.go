// SPDX-License-Identifier: MIT

package velocity

// Encode returns the number of the velocity with the given components in
// dimension dim. len(comps) must equal dim, and the number must not be
// above MaxIndex (ErrOutOfRange).
// Complexity: O(1) in 1D/2D, O(k²) in 3D for shell k = max|comp|.
func Encode(dim int, comps ...int) (int, error) {
	if err := checkDim(dim); err != nil {
		return 0, velocityErrorf("Encode", err)
	}
	if len(comps) != dim {
		return 0, velocityErrorf("Encode", ErrComponentCount)
	}
	var c [MaxDim]int
	copy(c[:], comps)
	num, err := encodeChecked(dim, c)
	if err != nil {
		return 0, velocityErrorf("Encode", err)
	}

	return num, nil
}

// Decode returns the dim components of the velocity numbered num,
// 0 <= num <= MaxIndex.
// Complexity: O(1) in 1D/2D, O(k²) in 3D for the shell k holding num.
func Decode(dim, num int) ([]int, error) {
	c, err := decode(dim, num)
	if err != nil {
		return nil, velocityErrorf("Decode", err)
	}

	return append([]int(nil), c[:dim]...), nil
}

func checkDim(dim int) error {
	if dim < MinDim || dim > MaxDim {
		return ErrBadDimension
	}

	return nil
}

// maxShell[dim] is the outermost shell whose first number is <= MaxIndex:
// 2k-1, (2k-1)² and (2k-1)³ respectively. That shell is only partly
// numbered below the bound.
var maxShell = [MaxDim + 1]int{1: 1 << 31, 2: 1 << 15, 3: 813}

// encodeChecked is encode guarded against numbers above MaxIndex. The shell
// test comes first so that encode never sees a component it could overflow on.
func encodeChecked(dim int, c [MaxDim]int) (int, error) {
	m := maxShell[dim]
	for axis := 0; axis < dim; axis++ {
		if c[axis] < -m || c[axis] > m {
			return 0, ErrOutOfRange
		}
	}
	num := encode(dim, c)
	if uint64(num) > MaxIndex {
		return 0, ErrOutOfRange
	}

	return num, nil
}

// encode assumes a valid dim and components within maxShell.
func encode(dim int, c [MaxDim]int) int {
	switch dim {
	case 1:
		return encode1D(c[0])
	case 2:
		return encode2D(c[0], c[1])
	default:
		return encode3D(c)
	}
}

func decode(dim, num int) ([MaxDim]int, error) {
	var c [MaxDim]int
	if err := checkDim(dim); err != nil {
		return c, err
	}
	if num < 0 {
		return c, ErrNegativeNum
	}
	if uint64(num) > MaxIndex {
		return c, ErrOutOfRange
	}
	switch dim {
	case 1:
		c[0] = decode1D(num)
	case 2:
		c[0], c[1] = decode2D(num)
	default:
		c = decode3D(num)
	}

	return c, nil
}

// encode1D: 0 -> 0, k -> 2k-1, -k -> 2k.
func encode1D(vx int) int {
	n := 2 * abs(vx)
	if vx > 0 {
		n--
	}

	return n
}

func decode1D(num int) int {
	n := num + 1

	return (1 - 2*(n%2)) * (n / 2)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
