package stencil_test

import (
	"testing"

	"github.com/katalvlaran/lbmstencil/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig_Dimension covers explicit and inferred dimensions.
func TestConfig_Dimension(t *testing.T) {
	unit := []float64{0, 1}
	cases := []struct {
		name string
		cfg  stencil.Config
		want int
		err  error
	}{
		{"Explicit", stencil.Config{Dim: 3}, 3, nil},
		{"ExplicitWinsOverBox", stencil.Config{Dim: 1, Box: &stencil.Box{X: unit, Y: unit}}, 1, nil},
		{"BoxX", stencil.Config{Box: &stencil.Box{X: unit}}, 1, nil},
		{"BoxXY", stencil.Config{Box: &stencil.Box{X: unit, Y: unit}}, 2, nil},
		{"BoxXYZ", stencil.Config{Box: &stencil.Box{X: unit, Y: unit, Z: unit}}, 3, nil},
		{"BoxXZ", stencil.Config{Box: &stencil.Box{X: unit, Z: unit}}, 2, nil},
		{"Nothing", stencil.Config{}, 0, stencil.ErrUnknownDimension},
		{"BoxWithoutX", stencil.Config{Box: &stencil.Box{Y: unit}}, 0, stencil.ErrUnknownDimension},
		{"BadExplicit", stencil.Config{Dim: 5}, 0, stencil.ErrBadDimension},
		{"NegativeExplicit", stencil.Config{Dim: -1}, 0, stencil.ErrBadDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dim, err := tc.cfg.Dimension()
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, dim)
		})
	}
}

// TestParseConfig decodes the mixed mapping with integer stencil keys.
func TestParseConfig(t *testing.T) {
	data := []byte(`
box:
  x: [0, 1]
  y: [0, 1]
  z: [0, 1]
  label: [0, 1, 2, 3, 4, 5]
number_of_schemes: 3
0:
  velocities: [0, 1, 2, 3, 4, 5, 6]
1:
  velocities: [5, 39, 2]
2: {velocities: [0]}
comment: ignored
`)
	cfg, err := stencil.ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Dim)
	assert.Equal(t, 3, cfg.NumberOfSchemes)
	require.NotNil(t, cfg.Box)
	assert.Equal(t, []float64{0, 1}, cfg.Box.Z)

	dim, err := cfg.Dimension()
	require.NoError(t, err)
	assert.Equal(t, 3, dim)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5, 6}, {5, 39, 2}, {0}}, cfg.Velocities())

	set, err := stencil.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, set.NumStencils())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 39}, set.UniqueNum())
}

// TestParseConfig_Errors rejects malformed documents.
func TestParseConfig_Errors(t *testing.T) {
	_, err := stencil.ParseConfig([]byte(`[1, 2, 3]`))
	assert.Error(t, err)
	_, err = stencil.ParseConfig([]byte("dim: two\n"))
	assert.Error(t, err)
	_, err = stencil.ParseConfig([]byte("0: {velocities: [a, b]}\n"))
	assert.Error(t, err)
}

// TestConfig_VelocitiesStopsAtGap counts stencils until the first missing key.
func TestConfig_VelocitiesStopsAtGap(t *testing.T) {
	cfg := stencil.Config{Schemes: map[int]stencil.Scheme{
		1: {Velocities: []int{1}},
	}}
	assert.Empty(t, cfg.Velocities())
}
