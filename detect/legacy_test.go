// SPDX-License-Identifier: MIT

package detect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/detect"
	"github.com/katalvlaran/scalespace/pixel"
)

var legacySrc = [][]float32{
	{0, 1, 0},
	{9, 5, 2},
	{0, 3, 0},
}

func TestPeakMask_IgnoresLeftNeighbour(t *testing.T) {
	t.Parallel()
	src := fromRows(t, legacySrc)
	dst := mustBuffer(t, 3, 3)
	require.NoError(t, detect.PeakMask(dst, src, 0))
	require.Equal(t, [][]float32{{0, 0, 0}, {0, detect.PeakValue, 0}, {0, 0, 0}}, rowsOf(dst))

	require.NoError(t, detect.PeakMask(dst, src, 3))
	require.Zero(t, dst.AtFast(1, 1))
}

func TestPeakMask_EachCountedNeighbourBlocks(t *testing.T) {
	t.Parallel()
	// Raise one of right (1,2), down (2,1), up (0,1) above the centre.
	for _, at := range [][2]int{{1, 2}, {2, 1}, {0, 1}} {
		src := fromRows(t, legacySrc)
		require.NoError(t, src.Set(at[0], at[1], 6))
		dst := mustBuffer(t, 3, 3)
		require.NoError(t, detect.PeakMask(dst, src, 0))
		require.Zero(t, dst.AtFast(1, 1), "neighbour %v", at)
	}

	// A NaN centre never peaks.
	src := fromRows(t, legacySrc)
	require.NoError(t, src.Set(1, 1, float32(math.NaN())))
	dst := mustBuffer(t, 3, 3)
	require.NoError(t, detect.PeakMask(dst, src, 0))
	require.Zero(t, dst.AtFast(1, 1))
}

func TestCenterSurround_CountsUpTwice(t *testing.T) {
	t.Parallel()
	dst := mustBuffer(t, 3, 3)
	require.NoError(t, detect.CenterSurround(dst, fromRows(t, legacySrc)))
	// 5 - ¼(2 + 3 + 1 + 1)
	require.Equal(t, float32(3.25), dst.AtFast(1, 1))
	requireBorderZero(t, dst)
}

func TestSurroundPeaks_Composition(t *testing.T) {
	t.Parallel()
	grey := mustBuffer(t, 8, 6)
	require.NoError(t, pixel.RandomNormal(grey, 0, 1))

	got, err := detect.SurroundPeaks(grey, 0.1)
	require.NoError(t, err)

	want := mustBuffer(t, 8, 6)
	surround := mustBuffer(t, 8, 6)
	require.NoError(t, detect.CenterSurround(surround, grey))
	require.NoError(t, pixel.Abs(surround, surround))
	require.NoError(t, detect.PeakMask(want, surround, 0.1))
	require.Equal(t, rowsOf(want), rowsOf(got))
}

func TestLegacy_Errors(t *testing.T) {
	t.Parallel()
	b := mustBuffer(t, 3, 3)
	require.ErrorIs(t, detect.PeakMask(b, b, 0), pixel.ErrAliased)
	require.ErrorIs(t, detect.CenterSurround(mustBuffer(t, 2, 3), b), pixel.ErrDimensionMismatch)
	_, err := detect.SurroundPeaks(nil, 0)
	require.ErrorIs(t, err, pixel.ErrNilBuffer)
}

func rowsOf(b *pixel.Buffer) [][]float32 {
	out := make([][]float32, b.Height())
	for r := range out {
		out[r] = make([]float32, b.Width())
		for c := range out[r] {
			out[r][c] = b.AtFast(r, c)
		}
	}

	return out
}
