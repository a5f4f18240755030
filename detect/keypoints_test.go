// SPDX-License-Identifier: MIT

package detect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalespace/detect"
	"github.com/katalvlaran/scalespace/pixel"
)

func TestCollect_MapsToInputCoordinates(t *testing.T) {
	t.Parallel()
	mask := mustBuffer(t, 4, 4)
	mask.SetFast(2, 1, 1)
	mask.SetFast(3, 3, 1)
	response := mustBuffer(t, 4, 4)
	response.SetFast(2, 1, 0.25)
	response.SetFast(3, 3, float32(math.NaN()))

	base := detect.Keypoint{Size: 8, Octave: 1, Level: 2, Polarity: detect.Negative}
	kps := detect.Collect_TestOnly(nil, mask, response, base, 8, 12)
	require.Equal(t, []detect.Keypoint{{
		Row: 6, Col: 2, Size: 8, Octave: 1, Level: 2, Polarity: detect.Negative, Response: 0.25,
	}}, kps)

	row, col, size := kps[0].Box()
	require.Equal(t, [3]float64{2, -2, 8}, [3]float64{row, col, size})
}

func TestKeypoints_ConstantImageAboveFloorIsEmpty(t *testing.T) {
	t.Parallel()
	grey := mustBuffer(t, 24, 20)
	grey.Fill(0.5)
	kps, err := detect.Keypoints(detect.NewConfig(detect.WithFloor(1e-3)), grey)
	require.NoError(t, err)
	require.Empty(t, kps)
}

func TestKeypoints_BrightBlob(t *testing.T) {
	t.Parallel()
	const n, centre = 32, 16
	grey := mustBuffer(t, n, n)
	grey.Apply(func(r, c int, _ float32) float32 {
		dr, dc := float64(r-centre), float64(c-centre)
		return float32(math.Exp(-(dr*dr + dc*dc) / 8))
	})

	cfg := detect.NewConfig(detect.WithFloor(1e-4), detect.WithLevels(2))
	kps, err := detect.Keypoints(cfg, grey)
	require.NoError(t, err)

	again, err := detect.Keypoints(cfg, grey)
	require.NoError(t, err)
	require.Equal(t, kps, again)

	prevOctave := 0
	for _, kp := range kps {
		require.GreaterOrEqual(t, kp.Octave, prevOctave)
		prevOctave = kp.Octave
		require.GreaterOrEqual(t, kp.Row, 0.0)
		require.Less(t, kp.Row, float64(n))
		require.GreaterOrEqual(t, kp.Col, 0.0)
		require.Less(t, kp.Col, float64(n))
		require.GreaterOrEqual(t, kp.Response*float64(kp.Polarity), cfg.Floor)
		if kp.Polarity == detect.Positive {
			require.InDelta(t, centre, kp.Row, 2.5*math.Pow(2, float64(kp.Octave)))
			require.InDelta(t, centre, kp.Col, 2.5*math.Pow(2, float64(kp.Octave)))
		}
	}
}

func TestKeypoints_TinyImageStopsEarly(t *testing.T) {
	t.Parallel()
	kps, err := detect.Keypoints(detect.DefaultConfig(), mustBuffer(t, 2, 5))
	require.NoError(t, err)
	require.Empty(t, kps)

	kps, err = detect.HarrisKeypoints(detect.DefaultConfig(), mustBuffer(t, 5, 2))
	require.NoError(t, err)
	require.Empty(t, kps)
}

func TestHarrisKeypoints_FiniteAndInside(t *testing.T) {
	t.Parallel()
	grey := mustBuffer(t, 20, 16)
	require.NoError(t, pixel.RandomUniform(grey, 0, 1))
	kps, err := detect.HarrisKeypoints(detect.NewConfig(detect.WithLevels(2)), grey)
	require.NoError(t, err)
	for _, kp := range kps {
		require.False(t, math.IsNaN(kp.Response) || math.IsInf(kp.Response, 0))
		require.Equal(t, detect.Positive, kp.Polarity)
		require.Zero(t, kp.Level)
		require.Equal(t, 4*math.Pow(2, float64(kp.Octave)), kp.Size)
		require.GreaterOrEqual(t, kp.Row, 1.0)
		require.Less(t, kp.Row, 16.0)
	}
}

func TestKeypoints_Errors(t *testing.T) {
	t.Parallel()
	_, err := detect.Keypoints(detect.DefaultConfig(), nil)
	require.ErrorIs(t, err, pixel.ErrNilBuffer)

	cfg := detect.DefaultConfig()
	cfg.Levels = 0
	_, err = detect.HarrisKeypoints(cfg, mustBuffer(t, 8, 8))
	require.ErrorIs(t, err, detect.ErrBadConfig)
}
