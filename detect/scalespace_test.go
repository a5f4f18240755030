// SPDX-License-Identifier: MIT

package detect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/detect"
	"github.com/katalvlaran/scalespace/pixel"
)

func TestBuildScaleSpace_Shape(t *testing.T) {
	t.Parallel()
	cfg := detect.NewConfig(detect.WithBlurSteps(4))
	grey := mustBuffer(t, 13, 9)
	require.NoError(t, pixel.RandomUniform(grey, 0, 1))

	ss, err := detect.BuildScaleSpace(cfg, grey)
	require.NoError(t, err)
	require.Len(t, ss.DoG, 4)
	require.Equal(t, cfg.ScaleStep(), ss.ScaleStep)
	require.Len(t, ss.Variances, 4)
	for n, v := range ss.Variances {
		require.InDelta(t, math.Pow(ss.ScaleStep, float64(2*(n+1))), v, 1e-12, "level %d", n)
	}
	for _, d := range ss.DoG {
		require.True(t, pixel.Compatible(grey, d))
		require.False(t, pixel.Aliased(grey, d))
	}
}

func TestBuildScaleSpace_ConstantImageHasFlatDoG(t *testing.T) {
	t.Parallel()
	grey := mustBuffer(t, 10, 10)
	grey.Fill(0.75)
	ss, err := detect.BuildScaleSpace(detect.DefaultConfig(), grey)
	require.NoError(t, err)
	for i, d := range ss.DoG {
		lo, hi := d.Range()
		require.InDelta(t, 0, lo, 1e-5, "level %d", i)
		require.InDelta(t, 0, hi, 1e-5, "level %d", i)
	}
}

func TestBuildScaleSpace_Errors(t *testing.T) {
	t.Parallel()
	_, err := detect.BuildScaleSpace(detect.DefaultConfig(), nil)
	require.ErrorIs(t, err, pixel.ErrNilBuffer)

	cfg := detect.DefaultConfig()
	cfg.BlurSteps = 1
	_, err = detect.BuildScaleSpace(cfg, mustBuffer(t, 4, 4))
	require.ErrorIs(t, err, detect.ErrBadConfig)
}

func TestExtrema_HandBuiltStack(t *testing.T) {
	t.Parallel()
	below := mustBuffer(t, 5, 5)
	below.Fill(1)
	mid := mustBuffer(t, 5, 5)
	mid.SetFast(2, 2, 3)
	above := below.Clone()

	ss := &detect.ScaleSpace{ScaleStep: 2, DoG: []*pixel.Buffer{below, mid, above}}
	masks, err := ss.Extrema(detect.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, masks, 1)

	m := masks[0]
	require.Equal(t, 1, m.Level)
	require.Equal(t, 4.0, m.Size)
	require.Equal(t, [][2]int{{2, 2}}, setBits(m.Positive))
	// Zero samples tie every neighbour in the negated stack except the peak.
	require.Len(t, setBits(m.Negative), 8)
	require.Zero(t, m.Negative.AtFast(2, 2))
}

func TestExtrema_FudgeScalesNeighbourLevels(t *testing.T) {
	t.Parallel()
	below := mustBuffer(t, 3, 3)
	below.Fill(2)
	mid := mustBuffer(t, 3, 3)
	mid.SetFast(1, 1, 3)
	above := mustBuffer(t, 3, 3)

	ss := &detect.ScaleSpace{ScaleStep: 2, DoG: []*pixel.Buffer{below, mid, above}}
	masks, err := ss.Extrema(detect.NewConfig(detect.WithFudge(1.4)))
	require.NoError(t, err)
	require.Equal(t, [][2]int{{1, 1}}, setBits(masks[0].Positive))

	masks, err = ss.Extrema(detect.NewConfig(detect.WithFudge(1.6)))
	require.NoError(t, err)
	require.Empty(t, setBits(masks[0].Positive))
}

func TestExtrema_Errors(t *testing.T) {
	t.Parallel()
	ss := &detect.ScaleSpace{ScaleStep: 2, DoG: []*pixel.Buffer{mustBuffer(t, 3, 3), mustBuffer(t, 3, 3)}}
	_, err := ss.Extrema(detect.DefaultConfig())
	require.ErrorIs(t, err, pixel.ErrBadArgument)

	ss.DoG = append(ss.DoG, mustBuffer(t, 4, 3))
	_, err = ss.Extrema(detect.DefaultConfig())
	require.ErrorIs(t, err, pixel.ErrDimensionMismatch)
}
