// SPDX-License-Identifier: MIT

package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/pixel"
)

func TestRectifiedPair(t *testing.T) {
	t.Parallel()
	src := fromRows(t, [][]float32{{-2, 3, 0}})
	pos, neg := mustBuffer(t, 3, 1), mustBuffer(t, 3, 1)
	require.NoError(t, pixel.RectifiedPair(pos, neg, src))
	requireRows(t, [][]float32{{0, 6, 0}}, pos)
	requireRows(t, [][]float32{{4, 0, 0}}, neg)

	require.ErrorIs(t, pixel.RectifiedPair(pos, pos, src), pixel.ErrAliased)
}

func TestCore_KeepsOutsideBand(t *testing.T) {
	t.Parallel()
	dst := mustBuffer(t, 4, 1)
	kept, err := pixel.Core(dst, fromRows(t, [][]float32{{1, 5, 9, 2}}), 2, 8)
	require.NoError(t, err)
	require.Equal(t, 2, kept)
	requireRows(t, [][]float32{{1, 0, 9, 0}}, dst)
}

func TestScreen_PredicateSeesColRowValue(t *testing.T) {
	t.Parallel()
	src := fromRows(t, [][]float32{{1, 2}, {3, 4}})
	keep := pixel.ScreenerFunc(func(col, row int, v float32) bool {
		return col == 1 || (row == 1 && v > 3)
	})
	kept, err := pixel.Screen(src, src, keep, 0)
	require.NoError(t, err)
	require.Equal(t, 2, kept)
	requireRows(t, [][]float32{{0, 2}, {0, 4}}, src)

	_, err = pixel.Screen(src, src, nil, 0)
	require.ErrorIs(t, err, pixel.ErrBadArgument)
}

func TestInsertAndSub(t *testing.T) {
	t.Parallel()
	dst := mustBuffer(t, 4, 3)
	patch := fromRows(t, [][]float32{{1, 2}, {3, 4}})
	require.NoError(t, pixel.Insert(dst, patch, 1, 2))
	requireRows(t, [][]float32{{0, 0, 0, 0}, {0, 0, 1, 2}, {0, 0, 3, 4}}, dst)
	require.ErrorIs(t, pixel.Insert(dst, patch, 2, 2), pixel.ErrOutOfRange)
	require.ErrorIs(t, pixel.Insert(dst, dst, 0, 0), pixel.ErrAliased)

	sub, err := dst.Sub(1, 1, 2, 3)
	require.NoError(t, err)
	requireRows(t, [][]float32{{0, 1, 2}, {0, 3, 4}}, sub)
	_, err = dst.Sub(2, 0, 2, 1)
	require.ErrorIs(t, err, pixel.ErrOutOfRange)
	_, err = dst.Sub(0, 0, 0, 1)
	require.ErrorIs(t, err, pixel.ErrInvalidDimensions)
}

func TestIntegral_SummedAreaTable(t *testing.T) {
	t.Parallel()
	src := strided(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	dst := mustBuffer(t, 3, 4)
	require.NoError(t, pixel.Integral(dst, src))
	requireRows(t, [][]float32{
		{0, 0, 0},
		{0, 1, 3},
		{0, 4, 10},
		{0, 9, 21},
	}, dst)

	require.ErrorIs(t, pixel.Integral(mustBuffer(t, 2, 3), src), pixel.ErrDimensionMismatch)
}
