package velocity_test

import (
	"testing"

	"github.com/katalvlaran/lbmstencil/velocity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Accessors checks both constructors agree and expose the same fields.
func TestNew_Accessors(t *testing.T) {
	v, err := velocity.New(3, 21)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Dim())
	assert.Equal(t, 21, v.Num())
	assert.Equal(t, []int{1, -1, 1}, v.Components())
	assert.Equal(t, 1, v.VX())
	assert.Equal(t, -1, v.VY())
	assert.Equal(t, 1, v.VZ())

	w, err := velocity.FromComponents(1, -1, 1)
	require.NoError(t, err)
	assert.True(t, v.Equal(w))
	assert.Equal(t, 3, w.Dim())
}

// TestComponents_IsCopy ensures callers cannot mutate a shared velocity.
func TestComponents_IsCopy(t *testing.T) {
	v, err := velocity.FromComponents(2, -1)
	require.NoError(t, err)
	c := v.Components()
	c[0] = 99
	assert.Equal(t, 2, v.VX())
}

// TestComponent_Axis covers in-range and out-of-range axes.
func TestComponent_Axis(t *testing.T) {
	v, err := velocity.FromComponents(-3, 4)
	require.NoError(t, err)

	y, err := v.Component(1)
	require.NoError(t, err)
	assert.Equal(t, 4, y)
	assert.Equal(t, 0, v.VZ(), "absent axis reads as zero")

	_, err = v.Component(2)
	assert.ErrorIs(t, err, velocity.ErrAxisOutOfRange)
	_, err = v.Component(-1)
	assert.ErrorIs(t, err, velocity.ErrAxisOutOfRange)
}

// TestString matches the "(num: vx, vy)" rendering.
func TestString(t *testing.T) {
	cases := []struct {
		dim, num int
		want     string
	}{
		{1, 2, "(2: -1)"},
		{2, 5, "(5: 1, 1)"},
		{2, 0, "(0: 0, 0)"},
		{3, 19, "(19: 1, 1, 1)"},
	}
	for _, tc := range cases {
		v, err := velocity.New(tc.dim, tc.num)
		require.NoError(t, err)
		assert.Equal(t, tc.want, v.String())
	}
}

// TestEqual_DimensionMatters distinguishes the same number in two dimensions.
func TestEqual_DimensionMatters(t *testing.T) {
	a, err := velocity.New(1, 1)
	require.NoError(t, err)
	b, err := velocity.New(2, 1)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))

	var nilV *velocity.Velocity
	assert.False(t, a.Equal(nilV))
	assert.True(t, nilV.Equal(nil))
}

// TestShell checks shell sizes and that shells are contiguous in numbering.
func TestShell(t *testing.T) {
	for dim := 1; dim <= 3; dim++ {
		next := 0
		for k := 0; k <= 4; k++ {
			vs, err := velocity.Shell(dim, k)
			require.NoError(t, err)
			size, err := velocity.ShellSize(dim, k)
			require.NoError(t, err)
			require.Len(t, vs, size)
			for _, v := range vs {
				require.Equal(t, next, v.Num(), "dim=%d k=%d", dim, k)
				c, err := velocity.Decode(dim, v.Num())
				require.NoError(t, err)
				require.Equal(t, c, v.Components())
				next++
			}
		}
	}

	size, err := velocity.ShellSize(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 26, size)
	size, err = velocity.ShellSize(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 24, size)

	_, err = velocity.Shell(2, -1)
	assert.ErrorIs(t, err, velocity.ErrNegativeNum)
	_, err = velocity.ShellStart(7, 1)
	assert.ErrorIs(t, err, velocity.ErrBadDimension)
}
