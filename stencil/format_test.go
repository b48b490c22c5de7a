package stencil_test

import (
	"testing"

	"github.com/katalvlaran/lbmstencil/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_String(t *testing.T) {
	set, err := stencil.Build(1, [][]int{seq(3)})
	require.NoError(t, err)

	want := "Stencil informations\n" +
		"\t * spatial dimension: 1\n" +
		"\t * maximal velocity in each direction: [1]\n" +
		"\t * minimal velocity in each direction: [-1]\n" +
		"\t * Informations for each elementary stencil:\n" +
		"\t\tstencil 0\n" +
		"\t\t - number of velocities:  3\n" +
		"\t\t - velocities: (0: 0), (1: 1), (2: -1), \n"
	assert.Equal(t, want, set.String())
}

func TestSet_StringTwoD(t *testing.T) {
	set, err := stencil.Build(2, [][]int{{0, 2, 4, 5, 1}})
	require.NoError(t, err)
	s := set.String()
	assert.Contains(t, s, "maximal velocity in each direction: [1 1]")
	assert.Contains(t, s, "(5: 1, 1), (1: 1, 0), \n")
}

func TestSet_Fingerprint(t *testing.T) {
	a, err := stencil.Build(2, [][]int{seq(9), {0, 2, 4}})
	require.NoError(t, err)
	b, err := stencil.Build(2, [][]int{seq(9), {0, 2, 4}})
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	reordered, err := stencil.Build(2, [][]int{seq(9), {4, 2, 0}})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), reordered.Fingerprint())

	otherDim, err := stencil.Build(3, [][]int{seq(9), {0, 2, 4}})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), otherDim.Fingerprint())

	split, err := stencil.Build(2, [][]int{seq(9), {0}, {2, 4}})
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), split.Fingerprint())

	noSentinel, err := stencil.Build(2, [][]int{seq(9), {0, 2, 4}}, stencil.WithSentinel(-1))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), noSentinel.Fingerprint())
	explicit, err := stencil.Build(2, [][]int{seq(9), {0, 2, 4}}, stencil.WithSentinel(stencil.DefaultSentinel))
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), explicit.Fingerprint())
}
