// SPDX-License-Identifier: MIT

package velocity

// ShellSize returns the number of velocities in shell k of dimension dim:
// 1 for k == 0, otherwise 2, 8k or (2k+1)³-(2k-1)³ in 1D, 2D, 3D.
// Returns ErrBadDimension, ErrNegativeNum for k < 0, or ErrOutOfRange when
// shell k starts above MaxIndex.
func ShellSize(dim, k int) (int, error) {
	if err := checkShell(dim, k); err != nil {
		return 0, velocityErrorf("ShellSize", err)
	}

	return shellSize(dim, k), nil
}

// ShellStart returns the number of the first velocity of shell k.
func ShellStart(dim, k int) (int, error) {
	if err := checkShell(dim, k); err != nil {
		return 0, velocityErrorf("ShellStart", err)
	}

	return shellStart(dim, k), nil
}

// Shell returns the velocities of shell k (max-norm exactly k) in numbering
// order. Shell 0 is the rest velocity alone.
//
//	vs, _ := Shell(2, 1) // (1: 1, 0) (2: 0, 1) ... (8: 1, -1)
//
// The outermost shell is only partly numbered below MaxIndex, so Shell
// returns ErrOutOfRange for it as well.
// Complexity: O(ShellSize(dim, k)).
func Shell(dim, k int) ([]*Velocity, error) {
	size, err := ShellSize(dim, k)
	if err != nil {
		return nil, velocityErrorf("Shell", err)
	}
	if k == maxShell[dim] {
		return nil, velocityErrorf("Shell", ErrOutOfRange)
	}
	out := make([]*Velocity, 0, size)
	num := shellStart(dim, k)
	if dim == 3 {
		walkShell3D(k, func(c [MaxDim]int) bool {
			out = append(out, &Velocity{dim: dim, num: num, c: c})
			num++

			return true
		})

		return out, nil
	}
	for i := 0; i < size; i++ {
		c, _ := decode(dim, num+i) // dim and num validated above
		out = append(out, &Velocity{dim: dim, num: num + i, c: c})
	}

	return out, nil
}

func checkShell(dim, k int) error {
	if err := checkDim(dim); err != nil {
		return err
	}
	if k < 0 {
		return ErrNegativeNum
	}
	if k > maxShell[dim] {
		return ErrOutOfRange
	}

	return nil
}

func shellStart(dim, k int) int {
	if k == 0 {
		return 0
	}
	switch dim {
	case 1:
		return 2*k - 1
	case 2:
		return (2*k - 1) * (2*k - 1)
	default:
		return shellStart3D(k)
	}
}

func shellSize(dim, k int) int {
	if k == 0 {
		return 1
	}
	switch dim {
	case 1:
		return 2
	case 2:
		return 8 * k
	default:
		return shellStart3D(k+1) - shellStart3D(k)
	}
}
