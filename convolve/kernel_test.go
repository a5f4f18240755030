// SPDX-License-Identifier: MIT

package convolve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/convolve"
	"github.com/katalvlaran/scalespace/pixel"
)

func TestGaussian_NormalizedSymmetricPeaked(t *testing.T) {
	t.Parallel()
	k, err := convolve.Gaussian(7, 5, 1, 2, 0.75, true)
	require.NoError(t, err)
	require.InDelta(t, 1.0, k.Sum(), 1e-6)

	centre := k.AtFast(2, 3)
	require.Equal(t, float64(centre), k.Max())
	for r := 0; r < 5; r++ {
		for c := 0; c < 7; c++ {
			require.Equal(t, k.AtFast(r, c), k.AtFast(4-r, 6-c), "point symmetry at (%d,%d)", r, c)
		}
	}
	// Wider column variance: one step sideways loses less than one step down.
	require.Greater(t, k.AtFast(2, 4), k.AtFast(3, 3))
}

func TestGaussian_UnnormalizedScaleAndEvenCentre(t *testing.T) {
	t.Parallel()
	k, err := convolve.Gaussian(3, 3, 2, 1, 1, false)
	require.NoError(t, err)
	require.Equal(t, float32(2), k.AtFast(1, 1))

	even, err := convolve.Gaussian(2, 2, 1, 1, 1, false)
	require.NoError(t, err)
	v := even.AtFast(0, 0)
	require.Equal(t, [][]float32{{v, v}, {v, v}}, rows(even))
}

func TestGaussian_Rejects(t *testing.T) {
	t.Parallel()
	_, err := convolve.Gaussian(0, 3, 1, 1, 1, true)
	require.ErrorIs(t, err, pixel.ErrInvalidDimensions)
	_, err = convolve.Gaussian(3, 3, 1, 0, 1, true)
	require.ErrorIs(t, err, pixel.ErrBadArgument)
	_, err = convolve.Gaussian(3, 3, 1, 1, -2, true)
	require.ErrorIs(t, err, pixel.ErrBadArgument)
}
